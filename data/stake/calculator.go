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

// Calculator evaluates the rate-limited stake change formula. Every backend
// returns bit-identical results for all inputs; they differ only in how the
// ~192-bit intermediate product is represented. The streaming backend is
// the one fit for the restricted VM; the others exist to cross-check it.
type Calculator interface {
	Name() string
	RateLimitedStakeChange(epoch Epoch, accountPortion, clusterPortion, clusterEffective uint64, newRateActivationEpoch *Epoch) uint64
}

// Backends returns every calculator backend, the streaming engine first.
func Backends() []Calculator {
	return []Calculator{
		StreamingCalculator{},
		NativeCalculator{},
		BigIntCalculator{},
		Uint256Calculator{},
	}
}
