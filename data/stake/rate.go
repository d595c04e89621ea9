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

// Package stake computes per-epoch rate limits on stake activation and
// deactivation. The limit for an account is
//
//	floor(accountPortion * clusterEffective * rateBps / (clusterPortion * 10_000))
//
// clamped to accountPortion. The production implementation is the streaming
// engine in streammath, which evaluates the formula with native 64-bit
// operations only; this package also carries wide-arithmetic backends that
// satisfy the same contract, used to cross-check the engine.
package stake

import (
	"github.com/stakemath/go-stakemath/data/stake/streammath"
)

// Epoch is a discrete protocol time period. The rate schedule depends only
// on the epoch a call is evaluated at, relative to an activation threshold.
type Epoch uint64

// BasisPointsPerUnit is the denominator of the warmup/cooldown rate.
const BasisPointsPerUnit = streammath.BasisPointsPerUnit

// Warmup/cooldown rates in basis points. The original rate applies to
// epochs before the tower rate's activation epoch (or forever, when no
// activation epoch is set).
const (
	OriginalWarmupCooldownRateBps uint64 = 2_500
	TowerWarmupCooldownRateBps    uint64 = 900
)

// WarmupCooldownRateBps returns the rate in effect at epoch given the
// optional activation epoch of the tower rate.
func WarmupCooldownRateBps(epoch Epoch, newRateActivationEpoch *Epoch) uint64 {
	if newRateActivationEpoch == nil || epoch < *newRateActivationEpoch {
		return OriginalWarmupCooldownRateBps
	}
	return TowerWarmupCooldownRateBps
}
