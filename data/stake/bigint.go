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
	"math/big"
)

var bigBasisPoints = big.NewInt(BasisPointsPerUnit)

// BigIntCalculator evaluates the formula with heap-backed arbitrary
// precision integers. Slowest backend; its value is that math/big is an
// entirely independent implementation to cross-check against.
type BigIntCalculator struct{}

// Name implements Calculator.
func (BigIntCalculator) Name() string { return "bigint" }

// RateLimitedStakeChange implements Calculator.
func (BigIntCalculator) RateLimitedStakeChange(epoch Epoch, accountPortion, clusterPortion, clusterEffective uint64, newRateActivationEpoch *Epoch) uint64 {
	if accountPortion == 0 || clusterPortion == 0 || clusterEffective == 0 {
		return 0
	}

	rateBps := WarmupCooldownRateBps(epoch, newRateActivationEpoch)

	num := new(big.Int).SetUint64(accountPortion)
	num.Mul(num, new(big.Int).SetUint64(clusterEffective))
	num.Mul(num, new(big.Int).SetUint64(rateBps))

	den := new(big.Int).SetUint64(clusterPortion)
	den.Mul(den, bigBasisPoints)

	num.Div(num, den)
	if !num.IsUint64() {
		return accountPortion
	}
	if delta := num.Uint64(); delta < accountPortion {
		return delta
	}
	return accountPortion
}
