// Copyright (C) 2026 Stakemath Developers.
// This file is part of go-stakemath
//
// go-stakemath is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-stakemath is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-stakemath.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"github.com/stakemath/go-stakemath/data/stake"
)

// scenario is a synthetic rate-limit case expanded from a single 64-bit
// seed. The expansion keeps stake amounts small (16-bit-ish) so that the
// interesting behavior is in the division, not in saturation.
type scenario struct {
	epoch Epoch

	accountActivating   uint64
	accountDeactivating uint64
	entry               stake.StakeHistoryEntry

	activationRateEpoch   stake.Epoch
	deactivationRateEpoch stake.Epoch
}

// Epoch aliases stake.Epoch for brevity in this package.
type Epoch = stake.Epoch

// expandSeed deterministically derives a scenario from seed.
func expandSeed(seed uint64) scenario {
	accountStake := (seed & 0xffff) + 1
	clusterShare := ((seed >> 16) & 0xffff) + 1
	effective := clusterShare * 2
	if effective < 1 {
		effective = 1
	}

	return scenario{
		epoch:               Epoch(seed),
		accountActivating:   accountStake,
		accountDeactivating: accountStake/2 + 1,
		entry: stake.StakeHistoryEntry{
			Activating:   clusterShare,
			Deactivating: clusterShare/2 + 1,
			Effective:    effective,
		},
		activationRateEpoch:   Epoch(seed / 3),
		deactivationRateEpoch: Epoch(seed / 5),
	}
}

// checkValue runs both allowances of the scenario through one backend and
// folds them into a single comparable word.
func checkValue(c stake.Calculator, s scenario) uint64 {
	activation := c.RateLimitedStakeChange(
		s.epoch, s.accountActivating, s.entry.Activating, s.entry.Effective, &s.activationRateEpoch)
	deactivation := c.RateLimitedStakeChange(
		s.epoch, s.accountDeactivating, s.entry.Deactivating, s.entry.Effective, &s.deactivationRateEpoch)
	return activation ^ deactivation
}

// mismatch records one backend disagreeing with the reference backend.
type mismatch struct {
	name      string
	got, want uint64
}

// crossCheckSeed runs every backend on the seed's scenario. It returns the
// reference (streaming) check value and any disagreements.
func crossCheckSeed(seed uint64) (uint64, []mismatch) {
	s := expandSeed(seed)
	backends := stake.Backends()

	want := checkValue(backends[0], s)
	var mismatches []mismatch
	for _, c := range backends[1:] {
		if got := checkValue(c, s); got != want {
			mismatches = append(mismatches, mismatch{name: c.Name(), got: got, want: want})
		}
	}
	return want, mismatches
}
