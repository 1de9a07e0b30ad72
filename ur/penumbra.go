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

package ur

import (
	"fmt"
	"log/slog"

	"github.com/zigner-io/gozigner/cbor"
	"github.com/zigner-io/gozigner/wire"
)

// Map keys for the penumbra-accounts schema
const (
	penumbraKeyWalletId = 1
	penumbraKeyAccounts = 2
)

// Map keys shared by penumbra and zcash account entries
const (
	accountKeyViewingKey = 1
	accountKeyIndex      = 2
	accountKeyLabel      = 3
)

// DecodePenumbraAccounts decodes a penumbra-accounts UR export into
// the wallet id and account list it carries. Unknown map keys are
// skipped so newer firmware can extend the schema without breaking
// older wallets.
func DecodePenumbraAccounts(s string, opts ...DecodeOptionFunc) (*PenumbraAccountGroup, error) {
	o := newDecodeOptions(opts)
	typeName, payload, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if typeName != wire.ChainPenumbra.UrType {
		return nil, wrongUrType(typeName, wire.ChainPenumbra.UrType)
	}
	r := cbor.NewReader(payload)
	if err := consumeSchemaTag(r, TagPenumbraAccounts, o.logger); err != nil {
		return nil, err
	}
	pairs, err := r.ReadMapHeader()
	if err != nil {
		return nil, err
	}
	group := &PenumbraAccountGroup{}
	var haveWalletId, haveAccounts bool
	for i := uint64(0); i < pairs; i++ {
		key, err := r.ReadUint()
		if err != nil {
			return nil, err
		}
		switch key {
		case penumbraKeyWalletId:
			raw, err := r.ReadBytes()
			if err != nil {
				return nil, err
			}
			if len(raw) != WalletIdSize {
				return nil, &wire.SchemaError{
					What: "penumbra-accounts",
					Detail: fmt.Sprintf(
						"wallet id must be %d bytes, got %d",
						WalletIdSize,
						len(raw),
					),
				}
			}
			copy(group.WalletId[:], raw)
			haveWalletId = true
		case penumbraKeyAccounts:
			count, err := r.ReadArrayHeader()
			if err != nil {
				return nil, err
			}
			// Cap the preallocation; a hostile count fails on
			// truncation inside the loop
			group.Accounts = make([]PenumbraAccount, 0, min(count, 64))
			for j := uint64(0); j < count; j++ {
				account, err := decodePenumbraAccount(r, o.logger)
				if err != nil {
					return nil, err
				}
				group.Accounts = append(group.Accounts, *account)
			}
			haveAccounts = true
		default:
			if err := r.SkipValue(); err != nil {
				return nil, err
			}
		}
	}
	if !haveWalletId {
		return nil, &wire.SchemaError{
			What:  "penumbra-accounts",
			Field: "wallet id",
		}
	}
	if !haveAccounts {
		return nil, &wire.SchemaError{
			What:  "penumbra-accounts",
			Field: "accounts",
		}
	}
	return group, nil
}

func decodePenumbraAccount(r *cbor.Reader, logger *slog.Logger) (*PenumbraAccount, error) {
	if err := consumeSchemaTag(r, TagPenumbraAccounts, logger); err != nil {
		return nil, err
	}
	pairs, err := r.ReadMapHeader()
	if err != nil {
		return nil, err
	}
	account := &PenumbraAccount{}
	var haveViewingKey, haveIndex bool
	for i := uint64(0); i < pairs; i++ {
		key, err := r.ReadUint()
		if err != nil {
			return nil, err
		}
		switch key {
		case accountKeyViewingKey:
			fvk, err := r.ReadText()
			if err != nil {
				return nil, err
			}
			account.FullViewingKey = fvk
			haveViewingKey = true
		case accountKeyIndex:
			index, err := r.ReadUint()
			if err != nil {
				return nil, err
			}
			// The reader's profile caps integers at 32 bits
			account.Index = uint32(index)
			haveIndex = true
		case accountKeyLabel:
			label, err := r.ReadText()
			if err != nil {
				return nil, err
			}
			account.Label = &label
		default:
			if err := r.SkipValue(); err != nil {
				return nil, err
			}
		}
	}
	if !haveViewingKey {
		return nil, &wire.SchemaError{
			What:  "penumbra-accounts",
			Field: "full viewing key",
		}
	}
	if !haveIndex {
		return nil, &wire.SchemaError{
			What:  "penumbra-accounts",
			Field: "index",
		}
	}
	return account, nil
}
