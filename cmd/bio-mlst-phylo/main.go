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
package main

/*
bio-mlst-phylo computes allele and distance matrices from MLST typing
reports.
*/

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/mlst/mlst"
)

// pathList is a repeatable string flag.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

var inputTSVs pathList

var (
	outputMatrix   = flag.String("output-matrix", "", "Filtered allele matrix (TSV); required. Bgzipped if the path ends in .gz")
	outputDists    = flag.String("output-dists", "", "Pairwise distance matrix (TSV); required. Bgzipped if the path ends in .gz")
	minPercLoci    = flag.Int("min-perc-loci", mlst.DefaultOpts.MinPercLoci, "Minimum percentage of loci that should be present in a dataset")
	minPercSamples = flag.Int("min-perc-samples", mlst.DefaultOpts.MinPercSamples, "Minimum percentage of datasets where loci should be present")
	parallelism    = flag.Int("parallelism", mlst.DefaultOpts.Parallelism, "Maximum number of goroutines computing distances; 0 = runtime.NumCPU()")
)

func init() {
	flag.Var(&inputTSVs, "input-tsv", "Input typing report (TSV, optionally gzipped); may be repeated. Positional arguments are also treated as inputs")
}

func bioMLSTPhyloUsage() {
	fmt.Printf("Usage: %s [OPTIONS] [typing-report...]\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioMLSTPhyloUsage
	shutdown := grail.Init()
	defer shutdown()

	inputs := append([]string(nil), inputTSVs...)
	inputs = append(inputs, flag.Args()...)
	if len(inputs) == 0 {
		log.Fatalf("No input typing reports; pass -input-tsv or positional arguments")
	}
	if *outputMatrix == "" || *outputDists == "" {
		log.Fatalf("-output-matrix and -output-dists are required")
	}
	ctx := vcontext.Background()
	opts := mlst.Opts{
		MinPercLoci:    *minPercLoci,
		MinPercSamples: *minPercSamples,
		Parallelism:    *parallelism,
	}
	if _, err := mlst.Run(ctx, inputs, *outputMatrix, *outputDists, &opts); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
