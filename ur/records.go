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

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/zigner-io/gozigner/wire"
)

// WalletIdSize is the raw byte length of a wallet id.
const WalletIdSize = 32

// ViewingKeySize is the raw byte length of a penumbra full viewing key.
const ViewingKeySize = 64

// WalletId is the 32-byte identifier shared by every account derived
// from one seed phrase.
type WalletId [WalletIdSize]byte

// String returns the bech32m-encoded version of the wallet id
func (w WalletId) String() string {
	return encodeBech32m(wire.ChainPenumbra.WalletIdHrp, w[:])
}

// MarshalText renders the wallet id in its bech32m form so records
// serialize readably.
func (w WalletId) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// Bytes returns the raw wallet id bytes.
func (w WalletId) Bytes() []byte {
	return w[:]
}

// EncodeFullViewingKey renders raw penumbra full viewing key bytes in
// their canonical bech32m form.
func EncodeFullViewingKey(raw []byte) string {
	return encodeBech32m(wire.ChainPenumbra.ViewingKeyHrp, raw)
}

func encodeBech32m(hrp string, data []byte) string {
	// Convert data to base32 and encode as bech32m
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("unexpected error converting data to base32: %s", err))
	}
	encoded, err := bech32.EncodeM(hrp, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32m: %s", err))
	}
	return encoded
}

// PenumbraAccount is one viewing key entry in a penumbra-accounts
// export.
type PenumbraAccount struct {
	FullViewingKey string  `json:"fullViewingKey"`
	Index          uint32  `json:"index"`
	Label          *string `json:"label"`
}

// PenumbraAccountGroup is the payload of a penumbra-accounts export:
// the wallet id plus every account the signer exposes.
type PenumbraAccountGroup struct {
	WalletId WalletId          `json:"walletId"`
	Accounts []PenumbraAccount `json:"accounts"`
}

// ZcashAccount is one unified viewing key entry in a zcash-accounts
// export.
type ZcashAccount struct {
	UnifiedViewingKey string  `json:"unifiedViewingKey"`
	Index             uint32  `json:"index"`
	Label             *string `json:"label"`
}

// BackupAccount describes one account in a seed backup manifest. All
// fields are optional on the wire; absent values stay at their zero
// value.
type BackupAccount struct {
	Path          string `json:"path"`
	GenesisHash   string `json:"genesisHash"`
	Network       string `json:"network"`
	Encryption    string `json:"encryption"`
	AddressPrefix *int   `json:"prefix"`
}

// SeedBackup is a decoded zigner-backup manifest.
type SeedBackup struct {
	Version  uint32          `json:"version"`
	Name     string          `json:"name"`
	Accounts []BackupAccount `json:"accounts"`
}

// PenumbraKeyExport is the record decoded from the legacy binary
// viewing-key frame that predates the UR exports.
type PenumbraKeyExport struct {
	Chain          wire.Chain `json:"chain"`
	AccountIndex   uint32     `json:"accountIndex"`
	Label          *string    `json:"label"`
	FullViewingKey string     `json:"fullViewingKey"`
	WalletId       WalletId   `json:"walletId"`
}
