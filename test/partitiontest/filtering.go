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

package partitiontest

import (
	"hash/fnv"
	"os"
	"strconv"
	"testing"
)

// PartitionTest skips the calling test unless it is assigned to the
// current CI partition. Partitioning is controlled by the PARTITION_TOTAL
// and PARTITION_ID environment variables; with neither set, every test runs.
func PartitionTest(t *testing.T) {
	total, err := strconv.Atoi(os.Getenv("PARTITION_TOTAL"))
	if err != nil || total <= 0 {
		return
	}
	id, err := strconv.Atoi(os.Getenv("PARTITION_ID"))
	if err != nil {
		return
	}

	h := fnv.New64a()
	h.Write([]byte(t.Name()))
	assigned := h.Sum64() % uint64(total)
	if assigned != uint64(id) {
		t.Skipf("skipping due to partitioning, assigned to partition %d", assigned)
	}
}
