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

	"github.com/zigner-io/gozigner/ur"
	"github.com/zigner-io/gozigner/wire"
)

// ParseViewingKeyExport decodes the binary viewing key frame the firmware
// displayed before the UR exports existed. The layout is fixed: prelude,
// chain id, message type, a 4-byte little-endian account index, a
// length-prefixed label, the raw full viewing key, and the wallet id. The
// key and wallet id are rendered to their canonical bech32m strings on the
// way out; an empty label decodes as nil.
func ParseViewingKeyExport(hexstr string) (*ur.PenumbraKeyExport, error) {
	data, err := wire.DecodeHex(hexstr, "viewing key export")
	if err != nil {
		return nil, err
	}
	r := wire.NewReader(data)
	prelude, err := r.ReadByte("viewing key export prelude")
	if err != nil {
		return nil, err
	}
	if prelude != FramePrelude {
		return nil, &wire.FormatError{
			What:   "viewing key export",
			Detail: fmt.Sprintf("unexpected prelude byte 0x%02x", prelude),
		}
	}
	chainId, err := r.ReadByte("viewing key export chain id")
	if err != nil {
		return nil, err
	}
	chain := wire.ChainById(chainId)
	if chain == wire.ChainInvalid {
		return nil, &wire.FormatError{
			What:   "viewing key export",
			Detail: fmt.Sprintf("unknown chain id 0x%02x", chainId),
		}
	}
	if chain.ViewingKeyHrp == "" {
		return nil, &wire.FormatError{
			What:   "viewing key export",
			Detail: fmt.Sprintf("chain %s has no legacy viewing key format", chain.Name),
		}
	}
	msgType, err := r.ReadByte("viewing key export message type")
	if err != nil {
		return nil, err
	}
	if msgType != MessageTypeViewingKey {
		return nil, &wire.FormatError{
			What: "viewing key export",
			Detail: fmt.Sprintf(
				"unexpected message type 0x%02x (wanted 0x%02x)",
				msgType,
				MessageTypeViewingKey,
			),
		}
	}
	accountIndex, err := r.ReadUint32LE("account index")
	if err != nil {
		return nil, err
	}
	labelBytes, err := r.ReadPrefixedBytes8("label")
	if err != nil {
		return nil, err
	}
	var label *string
	if len(labelBytes) > 0 {
		labelStr := string(labelBytes)
		label = &labelStr
	}
	fvkBytes, err := r.Take(ur.ViewingKeySize, "full viewing key")
	if err != nil {
		return nil, err
	}
	walletIdBytes, err := r.Take(ur.WalletIdSize, "wallet id")
	if err != nil {
		return nil, err
	}
	if err := r.ExpectEmpty("viewing key export"); err != nil {
		return nil, err
	}
	export := &ur.PenumbraKeyExport{
		Chain:          chain,
		AccountIndex:   accountIndex,
		Label:          label,
		FullViewingKey: ur.EncodeFullViewingKey(fvkBytes),
	}
	copy(export.WalletId[:], walletIdBytes)
	return export, nil
}
