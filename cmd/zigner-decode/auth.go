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

type authFlags struct {
	flagset *flag.FlagSet
}

func newAuthFlags() *authFlags {
	f := &authFlags{
		flagset: flag.NewFlagSet("auth", flag.ExitOnError),
	}
	return f
}

func decodeAuth(f *globalFlags) {
	authFlags := newAuthFlags()
	err := authFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(authFlags.flagset.Args()) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: zigner-decode auth <hex frame>\n")
		os.Exit(1)
	}
	var opts []qr.OptionFunc
	if logger := f.logger(); logger != nil {
		opts = append(opts, qr.WithLogger(logger))
	}
	auth, err := qr.ParseAuthorizationResponse(authFlags.flagset.Arg(0), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse authorization response: %s\n", err)
		os.Exit(1)
	}
	printJson(auth)
}
