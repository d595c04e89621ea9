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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stakemath/go-stakemath/data/stake"
)

var checkSeed uint64

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Show every backend's result for a single seed",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := expandSeed(checkSeed)
		log.WithFields(logrus.Fields{
			"seed":                checkSeed,
			"epoch":               uint64(s.epoch),
			"accountActivating":   s.accountActivating,
			"accountDeactivating": s.accountDeactivating,
			"clusterActivating":   s.entry.Activating,
			"clusterDeactivating": s.entry.Deactivating,
			"clusterEffective":    s.entry.Effective,
		}).Info("expanded scenario")

		for _, c := range stake.Backends() {
			activation := c.RateLimitedStakeChange(
				s.epoch, s.accountActivating, s.entry.Activating, s.entry.Effective, &s.activationRateEpoch)
			deactivation := c.RateLimitedStakeChange(
				s.epoch, s.accountDeactivating, s.entry.Deactivating, s.entry.Effective, &s.deactivationRateEpoch)
			log.WithFields(logrus.Fields{
				"backend":      c.Name(),
				"activation":   activation,
				"deactivation": deactivation,
				"check":        activation ^ deactivation,
			}).Info("backend result")
		}
	},
}

func init() {
	checkCmd.Flags().Uint64Var(&checkSeed, "seed", 0, "Seed to expand and evaluate")
}
