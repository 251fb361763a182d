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
	"github.com/grailbio/base/log"
)

// FilterStats summarizes a FilterAlleleMatrix call.
type FilterStats struct {
	// LociCutoff is the number of called loci a sample must exceed to be
	// kept.
	LociCutoff      int
	// SamplesCutoff is the number of retained samples a locus must be called
	// in to be kept.
	SamplesCutoff   int
	// RetainedSamples and RetainedLoci are the dimensions of the filtered
	// matrix.
	RetainedSamples int
	RetainedLoci    int
}

// percentCutoff returns floor(perc * n / 100) for non-negative arguments.
func percentCutoff(perc, n int) int {
	return perc * n / 100
}

// FilterAlleleMatrix returns a copy of m restricted to samples with more
// than minPercLoci percent of the loci called, and then to loci called in
// more than minPercSamples percent of the remaining samples. Row and column
// order is preserved. m itself is not modified. The result may be empty.
func FilterAlleleMatrix(m *AlleleMatrix, minPercLoci, minPercSamples int) (*AlleleMatrix, FilterStats) {
	var stats FilterStats

	// Samples.
	stats.LociCutoff = percentCutoff(minPercLoci, m.NumLoci())
	log.Printf("removing datasets with <= %d (%d%%) loci detected", stats.LociCutoff, minPercLoci)
	var keptRows []int
	for i := range m.samples {
		nCalled := 0
		for _, allele := range m.calls[i] {
			if allele != MissingAllele {
				nCalled++
			}
		}
		if nCalled > stats.LociCutoff {
			keptRows = append(keptRows, i)
		} else {
			log.Debug.Printf("dropping dataset %s: %d loci detected", m.samples[i], nCalled)
		}
	}
	stats.RetainedSamples = len(keptRows)
	log.Printf("%d datasets passed filtering", stats.RetainedSamples)

	// Loci, counted over the retained samples only.
	stats.SamplesCutoff = percentCutoff(minPercSamples, len(keptRows))
	log.Printf("removing loci detected in <= %d (%d%%) datasets", stats.SamplesCutoff, minPercSamples)
	var keptCols []int
	for j := range m.loci {
		nCalled := 0
		for _, i := range keptRows {
			if m.calls[i][j] != MissingAllele {
				nCalled++
			}
		}
		if nCalled > stats.SamplesCutoff {
			keptCols = append(keptCols, j)
		}
	}
	stats.RetainedLoci = len(keptCols)
	log.Printf("%d loci passed filtering", stats.RetainedLoci)

	samples := make([]string, len(keptRows))
	calls := make([][]string, len(keptRows))
	for k, i := range keptRows {
		samples[k] = m.samples[i]
		row := make([]string, len(keptCols))
		for c, j := range keptCols {
			row[c] = m.calls[i][j]
		}
		calls[k] = row
	}
	loci := make([]string, len(keptCols))
	for c, j := range keptCols {
		loci[c] = m.loci[j]
	}
	return newAlleleMatrix(samples, loci, calls), stats
}
