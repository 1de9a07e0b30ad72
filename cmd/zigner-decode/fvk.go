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

	"github.com/zigner-io/gozigner/qr"
)

type fvkFlags struct {
	flagset *flag.FlagSet
}

func newFvkFlags() *fvkFlags {
	f := &fvkFlags{
		flagset: flag.NewFlagSet("fvk", flag.ExitOnError),
	}
	return f
}

func decodeFvk(f *globalFlags) {
	fvkFlags := newFvkFlags()
	err := fvkFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(fvkFlags.flagset.Args()) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: zigner-decode fvk <hex frame>\n")
		os.Exit(1)
	}
	export, err := qr.ParseViewingKeyExport(fvkFlags.flagset.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse viewing key export: %s\n", err)
		os.Exit(1)
	}
	printJson(export)
}
