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

// Package mlst builds allele matrices and pairwise allelic distance matrices
// from per-sample MLST/cgMLST typing reports. The distance matrix is meant to
// be fed to a minimum-spanning-tree tool such as GrapeTree.
package mlst

import (
	"strconv"
	"strings"
)

const (
	// MissingAllele is the allele value of a locus without a confident call,
	// both in typing reports and in the allele matrix.
	MissingAllele = "-"
	// MultiHitAllele marks a locus with multiple or ambiguous hits in a typing
	// report. It is converted to MissingAllele in the allele matrix.
	MultiHitAllele = "?"
)

// IsPerfect reports whether rec is a perfect hit: a concrete allele call with
// exactly 100% identity over the full locus length.
//
// Identity must parse to exactly 100.0; an unparseable identity is simply not
// perfect. The HSP and locus lengths are compared as strings.
func IsPerfect(rec LocusRecord) bool {
	allele := strings.TrimSpace(rec.Allele)
	if allele == MissingAllele || allele == MultiHitAllele {
		return false
	}
	identity, err := strconv.ParseFloat(strings.TrimSpace(rec.Identity), 64)
	if err != nil || identity != 100.0 {
		return false
	}
	lenHSP, lenLocus, ok := splitLength(rec.Length)
	if !ok || lenHSP != lenLocus {
		return false
	}
	return true
}

// splitLength splits an "observed/expected" length field.
func splitLength(s string) (observed, expected string, ok bool) {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return "", "", false
	}
	observed, expected = s[:i], s[i+1:]
	if strings.IndexByte(expected, '/') >= 0 {
		return "", "", false
	}
	return observed, expected, true
}
