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
	"github.com/zigner-io/gozigner/tx"
	"github.com/zigner-io/gozigner/wire"
)

// ParseAuthorizationResponse decodes the hex frame the signer displays after
// approving a sign request: the effect hash it signed over, then the spend
// and delegator vote signatures in request order. Unlike the request family
// the response carries no prelude.
//
// Some firmware revisions append a third signature list for liquidity
// tournament votes. There is no destination for those signatures here, so a
// well-formed trailing list is length-checked, consumed, and dropped, with a
// Debug log noting the count. Anything else after the vote list is rejected.
func ParseAuthorizationResponse(
	hexstr string,
	opts ...OptionFunc,
) (*tx.AuthorizationData, error) {
	o := newOptions(opts)
	data, err := wire.DecodeHex(hexstr, "authorization response")
	if err != nil {
		return nil, err
	}
	r := wire.NewReader(data)
	hashBytes, err := r.Take(tx.EffectHashSize, "effect hash")
	if err != nil {
		return nil, err
	}
	spendAuths, err := readSignatureList(r, "spend signature")
	if err != nil {
		return nil, err
	}
	voteAuths, err := readSignatureList(r, "delegator vote signature")
	if err != nil {
		return nil, err
	}
	if !r.Empty() {
		if err := consumeTournamentBlock(r, o); err != nil {
			return nil, err
		}
	}
	return &tx.AuthorizationData{
		EffectHash:         tx.NewEffectHash(hashBytes),
		SpendAuths:         spendAuths,
		DelegatorVoteAuths: voteAuths,
	}, nil
}

func readSignatureList(r *wire.Reader, what string) ([]tx.Signature, error) {
	count, err := r.ReadUint16LE(what + " count")
	if err != nil {
		return nil, err
	}
	// Cap the preallocation; a hostile count fails on
	// truncation inside the loop
	signatures := make([]tx.Signature, 0, min(int(count), 64))
	for i := 0; i < int(count); i++ {
		sigBytes, err := r.Take(tx.SignatureSize, what)
		if err != nil {
			return nil, err
		}
		signatures = append(signatures, tx.NewSignature(sigBytes))
	}
	return signatures, nil
}

// consumeTournamentBlock eats a trailing liquidity tournament signature list.
// The tail must fit the list layout exactly; anything else is trailing
// garbage.
func consumeTournamentBlock(r *wire.Reader, o *options) error {
	count, err := r.ReadUint16LE("liquidity tournament signature count")
	if err != nil {
		return &wire.FormatError{
			What:   "authorization response",
			Detail: "trailing data after frame",
		}
	}
	if r.Remaining() != int(count)*tx.SignatureSize {
		return &wire.FormatError{
			What:   "authorization response",
			Detail: "trailing data after frame",
		}
	}
	if _, err := r.Take(r.Remaining(), "liquidity tournament signatures"); err != nil {
		return err
	}
	o.logger.Debug(
		"dropped liquidity tournament signatures from authorization response",
		"count", count,
	)
	return nil
}
