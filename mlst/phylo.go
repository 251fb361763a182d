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
	"path/filepath"
	"runtime"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// Result holds the outputs of Run.
type Result struct {
	Alleles   *AlleleMatrix
	Distances *DistanceMatrix
	// Identical lists groups of samples with identical filtered profiles.
	Identical [][]string
	Stats     FilterStats
}

// BuildProfiles resolves each typing report into a profile.
func BuildProfiles(reports []Report) []Profile {
	profiles := make([]Profile, len(reports))
	for i, rep := range reports {
		profiles[i] = NewProfile(rep)
		log.Debug.Printf("%s: %d/%d perfect hits", rep.Sample, profiles[i].NumCalled(), len(profiles[i].Loci))
	}
	return profiles
}

// Run reads the typing reports at inputPaths, writes the filtered allele
// matrix to matrixPath and the pairwise distance matrix to distPath.
//
// The allele matrix is written before distances are computed. If all
// pairwise distances are zero, Run returns ErrEmptyDistanceMatrix and
// distPath is not created.
func Run(ctx context.Context, inputPaths []string, matrixPath, distPath string, opts *Opts) (Result, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if len(inputPaths) == 0 {
		return Result{}, errors.E(errors.Invalid, "no input typing reports")
	}
	parallelism := opts.Parallelism
	if parallelism == 0 {
		parallelism = runtime.NumCPU()
	}

	reports, err := ReadTypingReports(ctx, inputPaths)
	if err != nil {
		return Result{}, err
	}
	full, err := BuildAlleleMatrix(BuildProfiles(reports))
	if err != nil {
		return Result{}, err
	}
	log.Printf("allele matrix: %d datasets x %d loci", full.NumSamples(), full.NumLoci())

	var res Result
	res.Alleles, res.Stats = FilterAlleleMatrix(full, opts.MinPercLoci, opts.MinPercSamples)
	if err = writeTable(ctx, matrixPath, parallelism, func(w io.Writer) error {
		return WriteAlleleMatrix(w, res.Alleles)
	}); err != nil {
		return res, errors.E(err, "write allele matrix", matrixPath)
	}
	log.Printf("allele matrix exported to: %s", matrixPath)

	res.Identical = IdenticalProfiles(res.Alleles)
	for _, g := range res.Identical {
		log.Printf("datasets with identical profiles: %s", formatGroup(g))
	}

	res.Distances = ComputeDistances(res.Alleles, parallelism)
	if err = res.Distances.Validate(); err != nil {
		return res, err
	}
	if err = writeTable(ctx, distPath, parallelism, func(w io.Writer) error {
		return WriteDistanceMatrix(w, res.Distances)
	}); err != nil {
		return res, errors.E(err, "write distance matrix", distPath)
	}
	log.Printf("distance matrix exported to: %s", distPath)
	log.Printf("you can construct a phylogeny using: grapetree --profile %s --method MSTreeV2", filepath.Base(matrixPath))
	return res, nil
}
