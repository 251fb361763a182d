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
	"math/rand"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestAlleleDistance(t *testing.T) {
	tests := []struct {
		a, b []string
		want int
	}{
		{[]string{"1", "-", "2"}, []string{"1", "-", "3"}, 1},
		{[]string{"-", "-"}, []string{"-", "-"}, 0},
		{[]string{"1", "-"}, []string{"-", "1"}, 2},
		{[]string{"1", "2"}, []string{"1", "2"}, 0},
		{[]string{"10", "2"}, []string{"1", "2"}, 1},
		{nil, nil, 0},
	}
	for _, test := range tests {
		expect.EQ(t, AlleleDistance(test.a, test.b), test.want, "%v vs %v", test.a, test.b)
		expect.EQ(t, AlleleDistance(test.b, test.a), test.want, "%v vs %v", test.b, test.a)
	}
}

func TestComputeDistances(t *testing.T) {
	m := mustBuild(t,
		profileOf("A", "L1", "1", "L2", "-", "L3", "2"),
		profileOf("B", "L1", "1", "L2", "-", "L3", "3"),
		profileOf("C", "L1", "2", "L2", "5", "L3", "2"),
	)
	d := ComputeDistances(m, 1)
	expect.EQ(t, d.Samples(), []string{"A", "B", "C"})
	want := [][]int{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	for i := range want {
		for j := range want[i] {
			expect.EQ(t, d.At(i, j), want[i][j], "(%d, %d)", i, j)
		}
	}
	expect.EQ(t, d.MaxDistance(0), 2)
	expect.EQ(t, d.MaxDistance(2), 3)
	assert.NoError(t, d.Validate())
}

// randomMatrix returns an allele matrix with nSample samples and nLoci loci
// drawn from a small allele alphabet, including MissingAllele.
func randomMatrix(t *testing.T, r *rand.Rand, nSample, nLoci int) *AlleleMatrix {
	alleles := []string{MissingAllele, "1", "2", "3"}
	profiles := make([]Profile, nSample)
	for i := range profiles {
		var kv []string
		for j := 0; j < nLoci; j++ {
			kv = append(kv, fmt.Sprintf("L%d", j), alleles[r.Intn(len(alleles))])
		}
		profiles[i] = profileOf(fmt.Sprintf("s%d", i), kv...)
	}
	return mustBuild(t, profiles...)
}

func TestComputeDistancesSymmetricAndParallel(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	m := randomMatrix(t, r, 37, 50)
	seq := ComputeDistances(m, 1)
	for _, parallelism := range []int{0, 2, 7, 100} {
		par := ComputeDistances(m, parallelism)
		for i := 0; i < m.NumSamples(); i++ {
			expect.EQ(t, par.At(i, i), 0)
			for j := 0; j < m.NumSamples(); j++ {
				expect.EQ(t, par.At(i, j), par.At(j, i))
				expect.EQ(t, par.At(i, j), seq.At(i, j))
				if i != j {
					expect.EQ(t, par.At(i, j), AlleleDistance(m.Row(i), m.Row(j)))
				}
			}
		}
	}
}

func TestValidateDegenerate(t *testing.T) {
	tests := []struct {
		name     string
		profiles []Profile
	}{
		{"empty", nil},
		{"single", []Profile{profileOf("a", "L1", "1")}},
		{"identical", []Profile{
			profileOf("a", "L1", "1", "L2", "-"),
			profileOf("b", "L1", "1", "L2", "-"),
		}},
	}
	for _, test := range tests {
		d := ComputeDistances(mustBuild(t, test.profiles...), 0)
		err := d.Validate()
		expect.EQ(t, err, ErrEmptyDistanceMatrix, test.name)
		expect.True(t, errors.Is(errors.Invalid, err), test.name)
	}
}

func TestDegenerateAfterFiltering(t *testing.T) {
	// Three samples by four loci; the all-missing sample is dropped and the
	// remaining two are identical.
	m := mustBuild(t,
		profileOf("s1", "L1", "1", "L2", "2", "L3", "3", "L4", "4"),
		profileOf("s2", "L1", "1", "L2", "2", "L3", "3", "L4", "4"),
		profileOf("s3", "L1", "-", "L2", "-", "L3", "-", "L4", "-"),
	)
	f, _ := FilterAlleleMatrix(m, 90, 90)
	expect.EQ(t, f.Samples(), []string{"s1", "s2"})
	expect.EQ(t, ComputeDistances(f, 0).Validate(), ErrEmptyDistanceMatrix)
}
