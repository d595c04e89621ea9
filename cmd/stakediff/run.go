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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	runStart uint64
	runCount uint64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Cross-check all backends over a range of seeds",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		failures := 0
		var digest uint64

		for i := uint64(0); i < runCount; i++ {
			seed := runStart + i
			want, mismatches := crossCheckSeed(seed)
			digest ^= want

			for _, m := range mismatches {
				failures++
				log.WithFields(logrus.Fields{
					"seed":    seed,
					"backend": m.name,
					"got":     m.got,
					"want":    m.want,
				}).Error("backend disagrees with streaming engine")
			}
		}

		log.WithFields(logrus.Fields{
			"start":  runStart,
			"count":  runCount,
			"digest": digest,
		}).Info("cross-check complete")

		if failures > 0 {
			log.WithField("failures", failures).Error("backends disagree")
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().Uint64Var(&runStart, "start", 0, "First seed to check")
	runCmd.Flags().Uint64Var(&runCount, "count", 1_000_000, "Number of consecutive seeds to check")
}
