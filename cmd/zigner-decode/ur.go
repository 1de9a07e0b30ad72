// Copyright 2025 Zigner Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"os"

	zigner "github.com/zigner-io/gozigner"
)

type urFlags struct {
	flagset *flag.FlagSet
}

func newUrFlags() *urFlags {
	f := &urFlags{
		flagset: flag.NewFlagSet("ur", flag.ExitOnError),
	}
	return f
}

func decodeUr(f *globalFlags) {
	urFlags := newUrFlags()
	err := urFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(urFlags.flagset.Args()) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: zigner-decode ur <scanned payload>\n")
		os.Exit(1)
	}
	var opts []zigner.OptionFunc
	if logger := f.logger(); logger != nil {
		opts = append(opts, zigner.WithLogger(logger))
	}
	export, err := zigner.DecodeExport(urFlags.flagset.Arg(0), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to decode export: %s\n", err)
		os.Exit(1)
	}
	printJson(export)
}
