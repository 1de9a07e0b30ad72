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

package wire

// Chain describes a chain the signer firmware can export keys and
// authorizations for. Id is the tag carried in binary frame preludes,
// UrType the UR type name used by the chain's account export, and the
// Hrp fields the bech32m human-readable parts for rendered key material.
type Chain struct {
	Id            uint8  `json:"id"`
	Name          string `json:"name"`
	UrType        string `json:"urType,omitempty"`
	ViewingKeyHrp string `json:"-"`
	WalletIdHrp   string `json:"-"`
}

// Chain definitions
var (
	ChainPenumbra = Chain{
		Id:            0x03,
		Name:          "penumbra",
		UrType:        "penumbra-accounts",
		ViewingKeyHrp: "penumbrafullviewingkey",
		WalletIdHrp:   "penumbrawalletid",
	}
	ChainZcash = Chain{
		Id:     0x04,
		Name:   "zcash",
		UrType: "zcash-accounts",
	}

	ChainInvalid = Chain{
		Id:   0,
		Name: "invalid",
	} // ChainInvalid is used as a return value for lookup functions when a chain isn't found
)

// List of valid chains for use in lookup functions
var chains = []Chain{
	ChainPenumbra,
	ChainZcash,
}

// ChainByName returns a predefined chain by name
func ChainByName(name string) Chain {
	for _, chain := range chains {
		if chain.Name == name {
			return chain
		}
	}
	return ChainInvalid
}

// ChainById returns a predefined chain by ID
func ChainById(id uint8) Chain {
	for _, chain := range chains {
		if chain.Id == id {
			return chain
		}
	}
	return ChainInvalid
}
