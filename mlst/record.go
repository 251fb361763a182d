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
	"bufio"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// LocusRecord represents a single row of a per-sample typing report, e.g.
//
//   Locus          Allele  % Identity  HSP/Locus length  Type
//   SC0831         1       100.00      129/129           DNA
//
// Identity and Length are kept in their textual form; IsPerfect interprets
// them. Columns not listed here (such as Type) are ignored.
type LocusRecord struct {
	Locus    string `tsv:"Locus"`
	Allele   string `tsv:"Allele"`
	Identity string `tsv:"% Identity"`
	Length   string `tsv:"HSP/Locus length"`
}

// Report is the list of typing records of one sample, in file order.
type Report struct {
	// Sample identifies the sample. ReadTypingReport sets it to the base name
	// of the report path.
	Sample  string
	Records []LocusRecord
}

// ParseTypingReport reads a tab-separated typing report with a header row
// from r.
func ParseTypingReport(sample string, r io.Reader) (Report, error) {
	tsvReader := tsv.NewReader(bufio.NewReaderSize(r, 64<<10))
	tsvReader.HasHeaderRow = true
	tsvReader.UseHeaderNames = true

	rep := Report{Sample: sample}
	for {
		var rec LocusRecord
		if err := tsvReader.Read(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return Report{}, errors.Wrapf(err, "parse typing report %s", sample)
		}
		rep.Records = append(rep.Records, rec)
	}
	return rep, nil
}

// ReadTypingReport reads the typing report at path, which may be any path
// supported by grailbio/base/file. Reports whose path ends in ".gz" are
// decompressed on the fly.
func ReadTypingReport(ctx context.Context, path string) (rep Report, err error) {
	log.Debug.Printf("parsing file: %s", path)
	in, err := file.Open(ctx, path)
	if err != nil {
		return Report{}, errors.Wrapf(err, "open %s", path)
	}
	defer file.CloseAndReport(ctx, in, &err)

	var r io.Reader = in.Reader(ctx)
	if strings.HasSuffix(path, ".gz") {
		gz, gzErr := gzip.NewReader(r)
		if gzErr != nil {
			return Report{}, errors.Wrapf(gzErr, "gunzip %s", path)
		}
		defer gz.Close() // nolint: errcheck
		r = gz
	}
	return ParseTypingReport(filepath.Base(path), r)
}

// ReadTypingReports reads the reports at the given paths, in order.
func ReadTypingReports(ctx context.Context, paths []string) ([]Report, error) {
	reports := make([]Report, 0, len(paths))
	for _, path := range paths {
		rep, err := ReadTypingReport(ctx, path)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
