// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mlst

import (
	"strings"

	farm "github.com/dgryski/go-farm"
)

// IdenticalProfiles groups the samples of m whose rows are identical,
// treating MissingAllele like any other value. Only groups with at least two
// samples are returned. Groups are ordered by their first sample and list
// samples in matrix order.
func IdenticalProfiles(m *AlleleMatrix) [][]string {
	// Rows are bucketed by fingerprint and then compared exactly, so hash
	// collisions cannot merge distinct profiles.
	type group struct {
		first   int // row index of the first member
		members []string
	}
	buckets := map[uint64][]*group{}
	var (
		groups []*group
		buf    []byte
	)
	for i, s := range m.Samples() {
		row := m.Row(i)
		buf = appendProfileKey(buf[:0], row)
		fp := farm.Fingerprint64(buf)
		var g *group
		for _, cand := range buckets[fp] {
			if equalRows(m.Row(cand.first), row) {
				g = cand
				break
			}
		}
		if g == nil {
			g = &group{first: i}
			buckets[fp] = append(buckets[fp], g)
			groups = append(groups, g)
		}
		g.members = append(g.members, s)
	}
	var result [][]string
	for _, g := range groups {
		if len(g.members) > 1 {
			result = append(result, g.members)
		}
	}
	return result
}

// appendProfileKey appends the tab-joined calls to buf.
func appendProfileKey(buf []byte, row []string) []byte {
	for k, allele := range row {
		if k > 0 {
			buf = append(buf, '\t')
		}
		buf = append(buf, allele...)
	}
	return buf
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}

// formatGroup renders a group of sample names for logging.
func formatGroup(samples []string) string {
	return strings.Join(samples, ", ")
}
