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

package tx

import (
	"encoding/hex"
	"encoding/json"
)

const (
	EffectHashSize = 64
	SignatureSize  = 64
)

// EffectHash is the commitment to a transaction's effects. It is produced
// by an external hasher and only ever carried and compared here.
type EffectHash [EffectHashSize]byte

func NewEffectHash(data []byte) EffectHash {
	e := EffectHash{}
	copy(e[:], data)
	return e
}

func (e EffectHash) String() string {
	return hex.EncodeToString(e[:])
}

func (e EffectHash) Bytes() []byte {
	return e[:]
}

func (e EffectHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// Signature is a decaf377-rdsa signature over an effect hash.
type Signature [SignatureSize]byte

func NewSignature(data []byte) Signature {
	s := Signature{}
	copy(s[:], data)
	return s
}

func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// AuthorizationData is the signer's answer to a signing request. Signature
// lists are ordered: the Nth spend signature authorizes the Nth spend action
// of the plan, and likewise for delegator votes.
type AuthorizationData struct {
	EffectHash         EffectHash  `json:"effectHash"`
	SpendAuths         []Signature `json:"spendAuths"`
	DelegatorVoteAuths []Signature `json:"delegatorVoteAuths"`
}
