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

// NativeCalculator evaluates the formula with the machine's wide multiply
// and divide (basics.Mul2div2, built on bits.Mul64/Div64). The fastest
// backend, but unusable where those instructions don't exist.
type NativeCalculator struct{}

// Name implements Calculator.
func (NativeCalculator) Name() string { return "native" }

// RateLimitedStakeChange implements Calculator.
func (NativeCalculator) RateLimitedStakeChange(epoch Epoch, accountPortion, clusterPortion, clusterEffective uint64, newRateActivationEpoch *Epoch) uint64 {
	if accountPortion == 0 || clusterPortion == 0 || clusterEffective == 0 {
		return 0
	}

	rateBps := WarmupCooldownRateBps(epoch, newRateActivationEpoch)
	delta, overflowed := basics.Mul2div2(accountPortion, clusterEffective, rateBps, clusterPortion, BasisPointsPerUnit)
	if overflowed || delta > accountPortion {
		return accountPortion
	}
	return delta
}
