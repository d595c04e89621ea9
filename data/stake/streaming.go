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
	"github.com/stakemath/go-stakemath/data/stake/streammath"
)

// RateLimitedStakeChange returns the portion of accountPortion allowed to
// change state this epoch, clamped to accountPortion. A zero accountPortion,
// clusterPortion or clusterEffective short-circuits to 0.
//
// The three-factor numerator needs ~192 bits; dividing it natively is not an
// option in the restricted VM this code targets, so the product is divided
// in two passes that each stay within 64 bits of state:
//
//  1. q1, rem = divmod(accountPortion * clusterEffective, clusterPortion*10_000)
//  2. result  = q1*rateBps + floor(rem*rateBps / (clusterPortion*10_000))
//
// The first pass caps q1 at accountPortion/rateBps: any larger q1 already
// guarantees the clamped answer, so the division may abort early and
// saturate.
func RateLimitedStakeChange(epoch Epoch, accountPortion, clusterPortion, clusterEffective uint64, newRateActivationEpoch *Epoch) uint64 {
	if accountPortion == 0 || clusterPortion == 0 || clusterEffective == 0 {
		return 0
	}

	rateBps := WarmupCooldownRateBps(epoch, newRateActivationEpoch)
	qCap := accountPortion / rateBps

	q1, remHi, remLo, ok := streammath.MulDivCapped(accountPortion, clusterEffective, clusterPortion, qCap)
	if !ok {
		// q1*rateBps alone would exceed accountPortion
		return accountPortion
	}

	total := streammath.MulCap(q1, rateBps, accountPortion)
	if total >= accountPortion {
		return accountPortion
	}

	correction := streammath.RemainderMulDiv(remHi, remLo, rateBps, clusterPortion)
	if correction >= accountPortion-total {
		return accountPortion
	}
	return total + correction
}

// StreamingCalculator is the production backend: the streammath engine,
// restricted to native 64-bit operations.
type StreamingCalculator struct{}

// Name implements Calculator.
func (StreamingCalculator) Name() string { return "streaming" }

// RateLimitedStakeChange implements Calculator.
func (StreamingCalculator) RateLimitedStakeChange(epoch Epoch, accountPortion, clusterPortion, clusterEffective uint64, newRateActivationEpoch *Epoch) uint64 {
	return RateLimitedStakeChange(epoch, accountPortion, clusterPortion, clusterEffective, newRateActivationEpoch)
}
