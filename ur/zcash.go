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
	"log/slog"

	"github.com/zigner-io/gozigner/cbor"
	"github.com/zigner-io/gozigner/wire"
)

// Map keys for the zcash-accounts schema
const (
	zcashKeyAccounts = 1
)

// DecodeZcashAccounts decodes a zcash-accounts UR export into its
// account list. The zcash export carries no wallet id; unified viewing
// keys are passed through as the firmware rendered them.
func DecodeZcashAccounts(s string, opts ...DecodeOptionFunc) ([]ZcashAccount, error) {
	o := newDecodeOptions(opts)
	typeName, payload, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if typeName != wire.ChainZcash.UrType {
		return nil, wrongUrType(typeName, wire.ChainZcash.UrType)
	}
	r := cbor.NewReader(payload)
	if err := consumeSchemaTag(r, TagZcashAccounts, o.logger); err != nil {
		return nil, err
	}
	pairs, err := r.ReadMapHeader()
	if err != nil {
		return nil, err
	}
	var accounts []ZcashAccount
	var haveAccounts bool
	for i := uint64(0); i < pairs; i++ {
		key, err := r.ReadUint()
		if err != nil {
			return nil, err
		}
		switch key {
		case zcashKeyAccounts:
			count, err := r.ReadArrayHeader()
			if err != nil {
				return nil, err
			}
			// Cap the preallocation; a hostile count fails on
			// truncation inside the loop
			accounts = make([]ZcashAccount, 0, min(count, 64))
			for j := uint64(0); j < count; j++ {
				account, err := decodeZcashAccount(r, o.logger)
				if err != nil {
					return nil, err
				}
				accounts = append(accounts, *account)
			}
			haveAccounts = true
		default:
			if err := r.SkipValue(); err != nil {
				return nil, err
			}
		}
	}
	if !haveAccounts {
		return nil, &wire.SchemaError{
			What:  "zcash-accounts",
			Field: "accounts",
		}
	}
	return accounts, nil
}

func decodeZcashAccount(r *cbor.Reader, logger *slog.Logger) (*ZcashAccount, error) {
	if err := consumeSchemaTag(r, TagZcashAccounts, logger); err != nil {
		return nil, err
	}
	pairs, err := r.ReadMapHeader()
	if err != nil {
		return nil, err
	}
	account := &ZcashAccount{}
	var haveViewingKey, haveIndex bool
	for i := uint64(0); i < pairs; i++ {
		key, err := r.ReadUint()
		if err != nil {
			return nil, err
		}
		switch key {
		case accountKeyViewingKey:
			ufvk, err := r.ReadText()
			if err != nil {
				return nil, err
			}
			account.UnifiedViewingKey = ufvk
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
			What:  "zcash-accounts",
			Field: "unified viewing key",
		}
	}
	if !haveIndex {
		return nil, &wire.SchemaError{
			What:  "zcash-accounts",
			Field: "index",
		}
	}
	return account, nil
}
