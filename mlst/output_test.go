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
	"bytes"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestWriteAlleleMatrix(t *testing.T) {
	m := mustBuild(t,
		profileOf("a.tsv", "L1", "1", "L2", "-"),
		profileOf("b.tsv", "L2", "7"),
	)
	var buf bytes.Buffer
	assert.NoError(t, WriteAlleleMatrix(&buf, m))
	expect.EQ(t, buf.String(), "ID\tL1\tL2\na.tsv\t1\t-\nb.tsv\t-\t7\n")
}

func TestWriteDistanceMatrix(t *testing.T) {
	m := mustBuild(t,
		profileOf("a.tsv", "L1", "1", "L2", "-"),
		profileOf("b.tsv", "L1", "2", "L2", "7"),
	)
	var buf bytes.Buffer
	assert.NoError(t, WriteDistanceMatrix(&buf, ComputeDistances(m, 1)))
	expect.EQ(t, buf.String(), "ID\ta.tsv\tb.tsv\na.tsv\t0\t2\nb.tsv\t2\t0\n")
}

func TestWriteEmptyMatrices(t *testing.T) {
	m := mustBuild(t)
	var buf bytes.Buffer
	assert.NoError(t, WriteAlleleMatrix(&buf, m))
	expect.EQ(t, buf.String(), "ID\n")
	buf.Reset()
	assert.NoError(t, WriteDistanceMatrix(&buf, ComputeDistances(m, 1)))
	expect.EQ(t, buf.String(), "ID\n")
}
