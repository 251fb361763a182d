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

	"github.com/grailbio/base/errors"
)

type Opts struct {
	// MinPercLoci is the minimum percentage of loci a sample must have
	// called to be kept.
	MinPercLoci    int
	// MinPercSamples is the minimum percentage of the retained samples a
	// locus must be called in to be kept.
	MinPercSamples int
	// Parallelism bounds the number of goroutines computing distances and
	// compressing output. 0 = runtime.NumCPU().
	Parallelism    int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	MinPercLoci:    90,
	MinPercSamples: 90,
	Parallelism:    0,
}

func (o *Opts) validate() error {
	if o.MinPercLoci < 0 || o.MinPercLoci > 100 {
		return errors.E(errors.Invalid, fmt.Sprintf("min-perc-loci must be in [0, 100], got %d", o.MinPercLoci))
	}
	if o.MinPercSamples < 0 || o.MinPercSamples > 100 {
		return errors.E(errors.Invalid, fmt.Sprintf("min-perc-samples must be in [0, 100], got %d", o.MinPercSamples))
	}
	if o.Parallelism < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("parallelism must be non-negative, got %d", o.Parallelism))
	}
	return nil
}
