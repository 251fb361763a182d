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
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/bgzf"
)

// idColumn is the header of the first column of both output tables.
const idColumn = "ID"

// WriteAlleleMatrix writes m as a TSV: a header row "ID" followed by the
// loci, then one row per sample.
func WriteAlleleMatrix(w io.Writer, m *AlleleMatrix) (err error) {
	tsvw := tsv.NewWriter(w)
	tsvw.WriteString(idColumn)
	for _, l := range m.Loci() {
		tsvw.WriteString(l)
	}
	if err = tsvw.EndLine(); err != nil {
		return
	}
	for i, s := range m.Samples() {
		tsvw.WriteString(s)
		for _, allele := range m.Row(i) {
			tsvw.WriteString(allele)
		}
		if err = tsvw.EndLine(); err != nil {
			return
		}
	}
	return tsvw.Flush()
}

// WriteDistanceMatrix writes d as a square TSV with the sample names as both
// the header row (after "ID") and the first column.
func WriteDistanceMatrix(w io.Writer, d *DistanceMatrix) (err error) {
	tsvw := tsv.NewWriter(w)
	tsvw.WriteString(idColumn)
	samples := d.Samples()
	for _, s := range samples {
		tsvw.WriteString(s)
	}
	if err = tsvw.EndLine(); err != nil {
		return
	}
	for i, s := range samples {
		tsvw.WriteString(s)
		for j := range samples {
			tsvw.WriteUint32(uint32(d.At(i, j)))
		}
		if err = tsvw.EndLine(); err != nil {
			return
		}
	}
	return tsvw.Flush()
}

// writeTable creates path and passes its writer to write. If path ends in
// ".gz", the output is BGZF-compressed with the given parallelism.
func writeTable(ctx context.Context, path string, parallelism int, write func(io.Writer) error) (err error) {
	var dst file.File
	if dst, err = file.Create(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, dst, &err)

	if !strings.HasSuffix(path, ".gz") {
		return write(dst.Writer(ctx))
	}
	bgzfWriter := bgzf.NewWriter(dst.Writer(ctx), parallelism)
	defer func() {
		if e := bgzfWriter.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return write(bgzfWriter)
}
