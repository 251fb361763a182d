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
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// Profile is the resolved allele profile of one sample: each locus seen in
// its typing report maps to either an allele identifier or MissingAllele.
type Profile struct {
	Sample  string
	// Loci lists the profile's loci in the order they first appear in the
	// typing report.
	Loci    []string
	Alleles map[string]string
}

// NewProfile resolves the records of a typing report. Perfect hits keep their
// allele, everything else becomes MissingAllele. When a locus appears more
// than once, the later record wins.
func NewProfile(rep Report) Profile {
	p := Profile{
		Sample:  rep.Sample,
		Alleles: make(map[string]string, len(rep.Records)),
	}
	for _, rec := range rep.Records {
		allele := MissingAllele
		if IsPerfect(rec) {
			allele = normalizeAllele(rec.Allele)
		}
		if _, ok := p.Alleles[rec.Locus]; !ok {
			p.Loci = append(p.Loci, rec.Locus)
		}
		p.Alleles[rec.Locus] = allele
	}
	return p
}

// NumCalled returns the number of loci with a concrete allele.
func (p Profile) NumCalled() int {
	n := 0
	for _, allele := range p.Alleles {
		if allele != MissingAllele {
			n++
		}
	}
	return n
}

// normalizeAllele returns the canonical textual form of an allele call.
func normalizeAllele(allele string) string {
	allele = strings.TrimSpace(allele)
	if allele == "" || allele == MultiHitAllele {
		return MissingAllele
	}
	return allele
}

// AlleleMatrix is a sample x locus table of allele calls. Rows and columns
// are ordered; every row has a call (possibly MissingAllele) for every
// locus. An AlleleMatrix is never modified after construction.
type AlleleMatrix struct {
	samples     []string
	loci        []string
	sampleIndex map[string]int
	locusIndex  map[string]int
	calls       [][]string // calls[sample][locus]
}

// newAlleleMatrix creates a matrix from its parts, taking ownership of the
// slices. It panics if the shape is inconsistent.
func newAlleleMatrix(samples, loci []string, calls [][]string) *AlleleMatrix {
	if len(calls) != len(samples) {
		log.Panicf("allele matrix: %d rows for %d samples", len(calls), len(samples))
	}
	m := &AlleleMatrix{
		samples:     samples,
		loci:        loci,
		sampleIndex: make(map[string]int, len(samples)),
		locusIndex:  make(map[string]int, len(loci)),
		calls:       calls,
	}
	for i, s := range samples {
		if len(calls[i]) != len(loci) {
			log.Panicf("allele matrix: sample %s has %d calls, want %d", s, len(calls[i]), len(loci))
		}
		m.sampleIndex[s] = i
	}
	for j, l := range loci {
		m.locusIndex[l] = j
	}
	return m
}

// BuildAlleleMatrix assembles the profiles into an allele matrix. Its columns
// are the union of all profile loci, in first-seen order; loci absent from a
// profile are filled with MissingAllele. Sample names must be unique.
func BuildAlleleMatrix(profiles []Profile) (*AlleleMatrix, error) {
	var loci []string
	samples := make([]string, 0, len(profiles))
	seenSample := make(map[string]struct{}, len(profiles))
	seenLocus := map[string]struct{}{}
	for _, p := range profiles {
		if _, ok := seenSample[p.Sample]; ok {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("duplicate sample name %q", p.Sample))
		}
		seenSample[p.Sample] = struct{}{}
		samples = append(samples, p.Sample)
		for _, l := range p.Loci {
			if _, ok := seenLocus[l]; !ok {
				seenLocus[l] = struct{}{}
				loci = append(loci, l)
			}
		}
	}
	calls := make([][]string, len(profiles))
	for i, p := range profiles {
		row := make([]string, len(loci))
		for j, l := range loci {
			allele, ok := p.Alleles[l]
			if !ok {
				allele = MissingAllele
			}
			row[j] = allele
		}
		calls[i] = row
	}
	return newAlleleMatrix(samples, loci, calls), nil
}

// Samples returns the row labels. The caller must not modify the result.
func (m *AlleleMatrix) Samples() []string { return m.samples }

// Loci returns the column labels. The caller must not modify the result.
func (m *AlleleMatrix) Loci() []string { return m.loci }

// NumSamples returns the number of rows.
func (m *AlleleMatrix) NumSamples() int { return len(m.samples) }

// NumLoci returns the number of columns.
func (m *AlleleMatrix) NumLoci() int { return len(m.loci) }

// Row returns the calls of the i'th sample. The caller must not modify the
// result.
func (m *AlleleMatrix) Row(i int) []string { return m.calls[i] }

// Call returns the call of the given sample at the given locus. ok is false
// if either label is not in the matrix.
func (m *AlleleMatrix) Call(sample, locus string) (allele string, ok bool) {
	i, ok := m.sampleIndex[sample]
	if !ok {
		return "", false
	}
	j, ok := m.locusIndex[locus]
	if !ok {
		return "", false
	}
	return m.calls[i][j], true
}
