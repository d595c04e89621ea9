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

package stake

import (
	"github.com/stakemath/go-stakemath/data/basics"
)

// StakeHistoryEntry holds the cluster-wide stake totals recorded for one
// epoch: how much stake was effective, and how much was still activating or
// deactivating. Rate limits for epoch N are computed against the entry
// recorded for epoch N-1.
type StakeHistoryEntry struct {
	Activating   uint64
	Deactivating uint64
	Effective    uint64
}

// Accumulate returns the field-wise sum of e and other, tracking overflow.
// Cluster totals are sums over every account's pending stake, so they are
// accumulated with the same overflow discipline as any other ledger total.
func (e StakeHistoryEntry) Accumulate(other StakeHistoryEntry, ot *basics.OverflowTracker) StakeHistoryEntry {
	return StakeHistoryEntry{
		Activating:   ot.Add(e.Activating, other.Activating),
		Deactivating: ot.Add(e.Deactivating, other.Deactivating),
		Effective:    ot.Add(e.Effective, other.Effective),
	}
}

// ActivationAllowance returns how much of accountActivating may become
// effective this epoch, rate-limited against the previous epoch's
// cluster-wide activating total.
func ActivationAllowance(epoch Epoch, accountActivating uint64, prev StakeHistoryEntry, newRateActivationEpoch *Epoch) uint64 {
	return RateLimitedStakeChange(epoch, accountActivating, prev.Activating, prev.Effective, newRateActivationEpoch)
}

// DeactivationAllowance returns how much of accountDeactivating may stop
// being effective this epoch, rate-limited against the previous epoch's
// cluster-wide deactivating total.
func DeactivationAllowance(epoch Epoch, accountDeactivating uint64, prev StakeHistoryEntry, newRateActivationEpoch *Epoch) uint64 {
	return RateLimitedStakeChange(epoch, accountDeactivating, prev.Deactivating, prev.Effective, newRateActivationEpoch)
}
