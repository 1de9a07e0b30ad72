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
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

type globalFlags struct {
	flagset *flag.FlagSet
	debug   bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.BoolVar(
		&f.debug,
		"debug",
		false,
		"enable debug logging to stderr",
	)
	return f
}

// logger returns the logger handed to the decoders. Debug diagnostics only
// appear with -debug; decoded records always go to stdout as JSON.
func (f *globalFlags) logger() *slog.Logger {
	if !f.debug {
		return nil
	}
	return slog.New(slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelDebug},
	))
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	if len(f.flagset.Args()) == 0 {
		fmt.Fprintf(
			os.Stderr,
			"You must specify a subcommand (ur, auth, fvk, or request)\n",
		)
		os.Exit(1)
	}
	switch f.flagset.Arg(0) {
	case "ur":
		decodeUr(f)
	case "auth":
		decodeAuth(f)
	case "fvk":
		decodeFvk(f)
	case "request":
		decodeRequest(f)
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n", f.flagset.Arg(0))
		os.Exit(1)
	}
}

func printJson(v any) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render JSON: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}
