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

// Package wire provides the primitive byte-level helpers shared by both
// pipelines of the air-gap protocol: a bounds-checked forward cursor and an
// append-only frame builder with little-endian integers, varints and
// length-prefixed fields, plus the typed error families every codec in this
// module returns. Nothing here allocates per-call state beyond the value
// being read, and nothing retries; a read either succeeds completely or
// fails with a typed error.
package wire

import "encoding/hex"

// MaxQRPayloadBytes is the practical upper bound for a single QR frame. A
// version-40 code with low error correction carries 2953 binary bytes; the
// scanner layer in the field reads reliably up to roughly this size. Frames
// above the bound still encode, the caller just gets a warning through its
// configured logger and may hand the payload to a multi-frame renderer.
const MaxQRPayloadBytes = 2900

// DecodeHex decodes a hex string, accepting both cases. A decode failure is
// reported as a FormatError naming the component that supplied the string.
func DecodeHex(s string, what string) ([]byte, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, &FormatError{What: what, Detail: "invalid hex: " + err.Error()}
	}
	return decoded, nil
}

// EncodeHex renders bytes as the lowercase hex used on every wire surface of
// this protocol.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}
