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

/*
Given per-sample MLST or cgMLST typing reports, bio-mlst-phylo builds a
filtered sample x locus allele matrix and the matrix of pairwise allelic
distances between samples. The allele matrix can be passed directly to
GrapeTree to build a minimum spanning tree.

Each typing report is a TSV with the columns Locus, Allele, % Identity and
HSP/Locus length, e.g.

  Locus          Allele  % Identity  HSP/Locus length  Type
  SC0831         1       100.00      129/129           DNA
  SEN0401        10      100.00      978/978           DNA

Missing alleles are indicated with '-', multiple hits with '?'. Only perfect
hits (100% identity over the full locus length) are used. The report file
name identifies the sample.

Samples with too few loci called are dropped first (-min-perc-loci), then
loci called in too few of the remaining samples (-min-perc-samples).

Sample usage:
bio-mlst-phylo \
    -output-matrix alleles.tsv \
    -output-dists dists.tsv \
    sample1.tsv sample2.tsv sample3.tsv
*/
package main
