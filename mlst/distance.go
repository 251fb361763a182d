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
	"runtime"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/mlst/util"
)

// ErrEmptyDistanceMatrix is returned by DistanceMatrix.Validate when all
// pairwise distances are zero. Its kind is errors.Invalid.
var ErrEmptyDistanceMatrix = errors.E(errors.Invalid, "empty distance matrix: all pairwise distances are zero")

// DistanceMatrix is a symmetric sample x sample matrix of allelic
// distances. The diagonal is zero.
type DistanceMatrix struct {
	samples []string
	m       util.Matrix
}

// AlleleDistance returns the number of loci at which a and b differ. A locus
// missing in both samples does not count; a locus missing in only one of
// them does. a and b must have the same length.
func AlleleDistance(a, b []string) int {
	if len(a) != len(b) {
		panic("AlleleDistance: profiles of different lengths")
	}
	dist := 0
	for k, allele := range a {
		if allele == MissingAllele && b[k] == MissingAllele {
			continue
		}
		if allele != b[k] {
			dist++
		}
	}
	return dist
}

// ComputeDistances computes the pairwise allelic distances between the
// samples of m. Each unordered pair is evaluated once. Rows are distributed
// over up to parallelism goroutines; 0 means runtime.NumCPU().
func ComputeDistances(m *AlleleMatrix, parallelism int) *DistanceMatrix {
	n := m.NumSamples()
	d := &DistanceMatrix{
		samples: m.Samples(),
		m:       util.NewMatrix(n, n),
	}
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > n {
		parallelism = n
	}
	if n == 0 {
		return d
	}
	// Job k owns rows k, k+parallelism, ...; row i writes cells (i, j) and
	// (j, i) for j > i only, so no two jobs write the same cell.
	_ = traverse.Each(parallelism, func(jobIdx int) error {
		for i := jobIdx; i < n; i += parallelism {
			rowA := m.Row(i)
			for j := i + 1; j < n; j++ {
				dist := AlleleDistance(rowA, m.Row(j))
				d.m.Set(i, j, dist)
				d.m.Set(j, i, dist)
			}
		}
		return nil
	})
	return d
}

// Samples returns the row and column labels.
func (d *DistanceMatrix) Samples() []string { return d.samples }

// At returns the distance between the i'th and j'th samples.
func (d *DistanceMatrix) At(i, j int) int { return d.m.At(i, j) }

// MaxDistance returns the largest distance from the i'th sample to any
// sample.
func (d *DistanceMatrix) MaxDistance(i int) int {
	maxDist := 0
	for _, v := range d.m.Row(i) {
		if v > maxDist {
			maxDist = v
		}
	}
	return maxDist
}

// Validate returns an error if no two samples are at a positive distance,
// i.e. the matrix carries no information for tree building. This includes
// matrices with fewer than two samples.
func (d *DistanceMatrix) Validate() error {
	for i := range d.samples {
		if d.MaxDistance(i) > 0 {
			return nil
		}
	}
	return ErrEmptyDistanceMatrix
}

// String returns a plain-text rendering of the distances, for debugging.
func (d *DistanceMatrix) String() string { return d.m.String() }
