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
	"github.com/zigner-io/gozigner/wire"
)

type requestFlags struct {
	flagset *flag.FlagSet
}

func newRequestFlags() *requestFlags {
	f := &requestFlags{
		flagset: flag.NewFlagSet("request", flag.ExitOnError),
	}
	return f
}

func decodeRequest(f *globalFlags) {
	requestFlags := newRequestFlags()
	err := requestFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(requestFlags.flagset.Args()) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: zigner-decode request <hex frame>\n")
		os.Exit(1)
	}
	request, err := qr.ParseSignRequest(requestFlags.flagset.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse sign request: %s\n", err)
		os.Exit(1)
	}
	printJson(struct {
		Chain            string   `json:"chain"`
		AssetNames       []string `json:"assetNames"`
		Plan             string   `json:"plan"`
		EffectHash       string   `json:"effectHash"`
		SpendRandomizers []string `json:"spendRandomizers"`
		VoteRandomizers  []string `json:"voteRandomizers"`
	}{
		Chain:            request.Chain.Name,
		AssetNames:       request.AssetNames,
		Plan:             wire.EncodeHex(request.Plan),
		EffectHash:       request.EffectHash.String(),
		SpendRandomizers: hexList(request.SpendRandomizers),
		VoteRandomizers:  hexList(request.VoteRandomizers),
	})
}

func hexList(items [][]byte) []string {
	rendered := make([]string, 0, len(items))
	for _, item := range items {
		rendered = append(rendered, wire.EncodeHex(item))
	}
	return rendered
}
