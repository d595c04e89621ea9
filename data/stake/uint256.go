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
	"github.com/holiman/uint256"
)

// Uint256Calculator evaluates the formula in 256-bit fixed-width integers.
// The three-factor numerator is below 2^192 (two u64 factors and a rate
// below 2^14) and the divisor below 2^78, so nothing can wrap. Unlike the
// bigint backend, the calculation performs no memory allocations.
type Uint256Calculator struct{}

// Name implements Calculator.
func (Uint256Calculator) Name() string { return "uint256" }

// RateLimitedStakeChange implements Calculator.
func (Uint256Calculator) RateLimitedStakeChange(epoch Epoch, accountPortion, clusterPortion, clusterEffective uint64, newRateActivationEpoch *Epoch) uint64 {
	if accountPortion == 0 || clusterPortion == 0 || clusterEffective == 0 {
		return 0
	}

	rateBps := WarmupCooldownRateBps(epoch, newRateActivationEpoch)

	var num, den, tmp uint256.Int
	num.SetUint64(accountPortion)
	tmp.SetUint64(clusterEffective)
	num.Mul(&num, &tmp)
	tmp.SetUint64(rateBps)
	num.Mul(&num, &tmp)

	den.SetUint64(clusterPortion)
	tmp.SetUint64(BasisPointsPerUnit)
	den.Mul(&den, &tmp)

	num.Div(&num, &den)
	if !num.IsUint64() {
		return accountPortion
	}
	if delta := num.Uint64(); delta < accountPortion {
		return delta
	}
	return accountPortion
}
