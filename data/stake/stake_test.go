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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/stakemath/go-stakemath/data/basics"
	"github.com/stakemath/go-stakemath/test/partitiontest"
)

func epochPtr(e Epoch) *Epoch {
	return &e
}

func TestWarmupCooldownRateBps(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	require.Equal(t, OriginalWarmupCooldownRateBps, WarmupCooldownRateBps(0, nil))
	require.Equal(t, OriginalWarmupCooldownRateBps, WarmupCooldownRateBps(math.MaxUint64, nil))
	require.Equal(t, OriginalWarmupCooldownRateBps, WarmupCooldownRateBps(99, epochPtr(100)))
	require.Equal(t, TowerWarmupCooldownRateBps, WarmupCooldownRateBps(100, epochPtr(100)))
	require.Equal(t, TowerWarmupCooldownRateBps, WarmupCooldownRateBps(101, epochPtr(100)))
	require.Equal(t, TowerWarmupCooldownRateBps, WarmupCooldownRateBps(0, epochPtr(0)))
}

func TestRateLimitedStakeChangeZeroGuards(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	for _, c := range Backends() {
		require.Zero(t, c.RateLimitedStakeChange(1, 0, 5, 5, nil), c.Name())
		require.Zero(t, c.RateLimitedStakeChange(1, 5, 0, 5, nil), c.Name())
		require.Zero(t, c.RateLimitedStakeChange(1, 5, 5, 0, nil), c.Name())
		require.Zero(t, c.RateLimitedStakeChange(1, 0, 0, 0, nil), c.Name())
	}
}

func TestRateLimitedStakeChangeExamples(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	for _, c := range Backends() {
		// floor(100_000 * 100_000 * 2_500 / (50_000 * 10_000)) = 50_000,
		// under the account portion, so no clamp.
		require.Equal(t, uint64(50_000),
			c.RateLimitedStakeChange(1, 100_000, 50_000, 100_000, nil), c.Name())

		// same inputs at the tower rate: floor(... * 900 / ...) = 18_000
		require.Equal(t, uint64(18_000),
			c.RateLimitedStakeChange(1, 100_000, 50_000, 100_000, epochPtr(1)), c.Name())

		// enormous effective stake must saturate to the account portion,
		// not overflow or panic
		require.Equal(t, uint64(1),
			c.RateLimitedStakeChange(1, 1, 1, math.MaxUint64, nil), c.Name())

		// tiny account in a huge cluster rounds down to zero
		require.Zero(t,
			c.RateLimitedStakeChange(1, 1, math.MaxUint64, 1, nil), c.Name())
	}
}

func TestRateLimitedStakeChangeClamp(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		epoch := Epoch(rapid.Uint64().Draw(rt, "epoch"))
		account := rapid.Uint64().Draw(rt, "account")
		cluster := rapid.Uint64().Draw(rt, "cluster")
		effective := rapid.Uint64().Draw(rt, "effective")

		var activation *Epoch
		if rapid.Bool().Draw(rt, "hasActivation") {
			activation = epochPtr(Epoch(rapid.Uint64().Draw(rt, "activation")))
		}

		for _, c := range Backends() {
			got := c.RateLimitedStakeChange(epoch, account, cluster, effective, activation)
			if got > account {
				rt.Fatalf("%s: result %d exceeds account portion %d", c.Name(), got, account)
			}
			if (account == 0 || cluster == 0 || effective == 0) && got != 0 {
				rt.Fatalf("%s: zero portion must yield 0, got %d", c.Name(), got)
			}
		}
	})
}

func TestBackendsAgree(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	backends := Backends()
	reference := backends[0]

	rapid.Check(t, func(rt *rapid.T) {
		epoch := Epoch(rapid.Uint64().Draw(rt, "epoch"))
		account := rapid.Uint64().Draw(rt, "account")
		cluster := rapid.Uint64Range(1, math.MaxUint64).Draw(rt, "cluster")
		effective := rapid.Uint64Range(1, math.MaxUint64).Draw(rt, "effective")

		var activation *Epoch
		if rapid.Bool().Draw(rt, "hasActivation") {
			activation = epochPtr(Epoch(rapid.Uint64().Draw(rt, "activation")))
		}

		want := reference.RateLimitedStakeChange(epoch, account, cluster, effective, activation)
		for _, c := range backends[1:] {
			got := c.RateLimitedStakeChange(epoch, account, cluster, effective, activation)
			if got != want {
				rt.Fatalf("%s disagrees with %s on (%d, %d, %d, %d): %d != %d",
					c.Name(), reference.Name(), epoch, account, cluster, effective, got, want)
			}
		}
	})
}

func TestAllowanceSelectors(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	prev := StakeHistoryEntry{
		Activating:   50_000,
		Deactivating: 20_000,
		Effective:    100_000,
	}

	// activation is limited against the activating total...
	require.Equal(t, RateLimitedStakeChange(7, 10_000, 50_000, 100_000, nil),
		ActivationAllowance(7, 10_000, prev, nil))
	// ...deactivation against the deactivating total
	require.Equal(t, RateLimitedStakeChange(7, 10_000, 20_000, 100_000, nil),
		DeactivationAllowance(7, 10_000, prev, nil))

	// and the two genuinely differ on this entry
	require.NotEqual(t, ActivationAllowance(7, 10_000, prev, nil),
		DeactivationAllowance(7, 10_000, prev, nil))
}

func TestStakeHistoryAccumulate(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	var ot basics.OverflowTracker
	a := StakeHistoryEntry{Activating: 1, Deactivating: 2, Effective: 3}
	b := StakeHistoryEntry{Activating: 10, Deactivating: 20, Effective: 30}

	sum := a.Accumulate(b, &ot)
	require.False(t, ot.Overflowed)
	require.Equal(t, StakeHistoryEntry{Activating: 11, Deactivating: 22, Effective: 33}, sum)

	huge := StakeHistoryEntry{Effective: math.MaxUint64}
	huge.Accumulate(b, &ot)
	require.True(t, ot.Overflowed)
}

func BenchmarkBackends(b *testing.B) {
	for _, c := range Backends() {
		b.Run(c.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				u64 := uint64(i + 1)
				c.RateLimitedStakeChange(Epoch(u64), u64, u64, math.MaxUint64/3, nil)
			}
		})
	}
}
