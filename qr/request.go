// Copyright 2024 Zigner Labs
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

package qr

import (
	"fmt"
	"math"

	"github.com/zigner-io/gozigner/tx"
	"github.com/zigner-io/gozigner/wire"
)

// EncodeSignRequest renders a transaction plan as the hex sign-request frame
// shown to the signer. The frame carries the serialized plan verbatim, the
// effect hash the wallet computed for it, and the spend and delegator vote
// randomizers in plan order so the firmware can re-randomize verification
// keys without decoding the plan itself. A frame larger than
// wire.MaxQRPayloadBytes is still returned, with a warning through the
// configured logger; the renderer decides whether to split it across
// multiple codes.
func EncodeSignRequest(
	plan *tx.Plan,
	effectHash []byte,
	opts ...OptionFunc,
) (string, error) {
	o := newOptions(opts)
	if len(effectHash) != tx.EffectHashSize {
		return "", &wire.ValidationError{
			What:     "effect hash length",
			Expected: tx.EffectHashSize,
			Got:      len(effectHash),
		}
	}
	spendRands, voteRands, err := plan.Randomizers()
	if err != nil {
		return "", err
	}
	if len(o.assetNames) > math.MaxUint8 {
		return "", &wire.ValidationError{
			What:     "asset name count",
			Expected: math.MaxUint8,
			Got:      len(o.assetNames),
		}
	}
	if len(spendRands) > math.MaxUint16 {
		return "", &wire.ValidationError{
			What:     "spend randomizer count",
			Expected: math.MaxUint16,
			Got:      len(spendRands),
		}
	}
	if len(voteRands) > math.MaxUint16 {
		return "", &wire.ValidationError{
			What:     "vote randomizer count",
			Expected: math.MaxUint16,
			Got:      len(voteRands),
		}
	}
	sizeHint := 3 + 1 + 4 + len(plan.Bytes) + tx.EffectHashSize +
		2 + len(spendRands)*tx.RandomizerSize +
		2 + len(voteRands)*tx.RandomizerSize
	for _, name := range o.assetNames {
		sizeHint += 1 + len(name)
	}
	builder := wire.NewBuilder(sizeHint)
	builder.AppendByte(FramePrelude)
	builder.AppendByte(wire.ChainPenumbra.Id)
	builder.AppendByte(MessageTypeSignRequest)
	builder.AppendByte(byte(len(o.assetNames)))
	for _, name := range o.assetNames {
		if err := builder.AppendPrefixedBytes8([]byte(name), "asset name"); err != nil {
			return "", err
		}
	}
	if err := builder.AppendPrefixedBytes32(plan.Bytes, "plan"); err != nil {
		return "", err
	}
	builder.AppendBytes(effectHash)
	builder.AppendUint16LE(uint16(len(spendRands)))
	for _, randomizer := range spendRands {
		builder.AppendBytes(randomizer)
	}
	builder.AppendUint16LE(uint16(len(voteRands)))
	for _, randomizer := range voteRands {
		builder.AppendBytes(randomizer)
	}
	if builder.Len() > wire.MaxQRPayloadBytes {
		o.logger.Warn(
			"sign request exceeds single QR capacity",
			"bytes", builder.Len(),
			"max", wire.MaxQRPayloadBytes,
		)
	}
	return builder.Hex(), nil
}

// SignRequest is the decoded view of a sign-request frame, as recovered by
// ParseSignRequest. The plan bytes stay opaque; the randomizer lists are in
// frame order.
type SignRequest struct {
	Chain            wire.Chain
	AssetNames       []string
	Plan             []byte
	EffectHash       tx.EffectHash
	SpendRandomizers [][]byte
	VoteRandomizers  [][]byte
}

// ParseSignRequest decodes a hex sign-request frame back into its parts.
// The wallet only ever encodes these, but round-trip tests and debugging
// scanned frames both need the inverse.
func ParseSignRequest(hexstr string) (*SignRequest, error) {
	data, err := wire.DecodeHex(hexstr, "sign request")
	if err != nil {
		return nil, err
	}
	r := wire.NewReader(data)
	prelude, err := r.ReadByte("sign request prelude")
	if err != nil {
		return nil, err
	}
	if prelude != FramePrelude {
		return nil, &wire.FormatError{
			What:   "sign request",
			Detail: fmt.Sprintf("unexpected prelude byte 0x%02x", prelude),
		}
	}
	chainId, err := r.ReadByte("sign request chain id")
	if err != nil {
		return nil, err
	}
	chain := wire.ChainById(chainId)
	if chain == wire.ChainInvalid {
		return nil, &wire.FormatError{
			What:   "sign request",
			Detail: fmt.Sprintf("unknown chain id 0x%02x", chainId),
		}
	}
	msgType, err := r.ReadByte("sign request message type")
	if err != nil {
		return nil, err
	}
	if msgType != MessageTypeSignRequest {
		return nil, &wire.FormatError{
			What: "sign request",
			Detail: fmt.Sprintf(
				"unexpected message type 0x%02x (wanted 0x%02x)",
				msgType,
				MessageTypeSignRequest,
			),
		}
	}
	nameCount, err := r.ReadByte("asset name count")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, nameCount)
	for i := 0; i < int(nameCount); i++ {
		nameBytes, err := r.ReadPrefixedBytes8("asset name")
		if err != nil {
			return nil, err
		}
		names = append(names, string(nameBytes))
	}
	planBytes, err := r.ReadPrefixedBytes32("plan")
	if err != nil {
		return nil, err
	}
	hashBytes, err := r.Take(tx.EffectHashSize, "effect hash")
	if err != nil {
		return nil, err
	}
	spendRands, err := readRandomizerList(r, "spend randomizer")
	if err != nil {
		return nil, err
	}
	voteRands, err := readRandomizerList(r, "vote randomizer")
	if err != nil {
		return nil, err
	}
	if err := r.ExpectEmpty("sign request"); err != nil {
		return nil, err
	}
	return &SignRequest{
		Chain:            chain,
		AssetNames:       names,
		Plan:             planBytes,
		EffectHash:       tx.NewEffectHash(hashBytes),
		SpendRandomizers: spendRands,
		VoteRandomizers:  voteRands,
	}, nil
}

func readRandomizerList(r *wire.Reader, what string) ([][]byte, error) {
	count, err := r.ReadUint16LE(what + " count")
	if err != nil {
		return nil, err
	}
	// Cap the preallocation; a hostile count fails on truncation inside the
	// loop
	randomizers := make([][]byte, 0, min(int(count), 64))
	for i := 0; i < int(count); i++ {
		randomizer, err := r.Take(tx.RandomizerSize, what)
		if err != nil {
			return nil, err
		}
		randomizers = append(randomizers, randomizer)
	}
	return randomizers, nil
}
