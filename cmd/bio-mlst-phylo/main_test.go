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

import (
	"flag"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestPathList(t *testing.T) {
	var paths pathList
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&paths, "input-tsv", "")
	assert.NoError(t, fs.Parse([]string{"-input-tsv", "a.tsv", "-input-tsv=b.tsv.gz", "c.tsv"}))
	expect.EQ(t, []string(paths), []string{"a.tsv", "b.tsv.gz"})
	expect.EQ(t, paths.String(), "a.tsv,b.tsv.gz")
	expect.EQ(t, fs.Args(), []string{"c.tsv"})
}
