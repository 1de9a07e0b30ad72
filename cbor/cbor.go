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

// Package cbor implements the narrow CBOR profile used by signer
// export payloads: unsigned integers, byte strings, text strings,
// definite-length arrays and maps, and semantic tags. Negative
// integers, floats, simple values, 8-byte lengths, and
// indefinite-length items are outside the profile and decode to a
// SchemaError. The reader is deliberately not a general CBOR decoder;
// payloads from untrusted scans get exactly the grammar the schemas
// need and nothing more.
package cbor

// Major identifies a CBOR major type by its masked high bits.
type Major uint8

const (
	CBOR_MAJOR_UNSIGNED    Major = 0x00
	CBOR_MAJOR_NEGATIVE    Major = 0x20
	CBOR_MAJOR_BYTE_STRING Major = 0x40
	CBOR_MAJOR_TEXT_STRING Major = 0x60
	CBOR_MAJOR_ARRAY       Major = 0x80
	CBOR_MAJOR_MAP         Major = 0xa0
	CBOR_MAJOR_TAG         Major = 0xc0
	CBOR_MAJOR_SIMPLE      Major = 0xe0

	// Only the top 3 bits carry the major type
	CBOR_MAJOR_MASK uint8 = 0xe0
	// The bottom 5 bits carry the additional info
	CBOR_INFO_MASK uint8 = 0x1f

	// Max value able to be stored in the additional info bits directly
	CBOR_MAX_UINT_SIMPLE uint8 = 0x17
	CBOR_UINT8_FOLLOWS   uint8 = 0x18
	CBOR_UINT16_FOLLOWS  uint8 = 0x19
	CBOR_UINT32_FOLLOWS  uint8 = 0x1a
	CBOR_UINT64_FOLLOWS  uint8 = 0x1b
	CBOR_INDEFINITE      uint8 = 0x1f
)

func (m Major) String() string {
	switch m {
	case CBOR_MAJOR_UNSIGNED:
		return "unsigned"
	case CBOR_MAJOR_NEGATIVE:
		return "negative"
	case CBOR_MAJOR_BYTE_STRING:
		return "byte string"
	case CBOR_MAJOR_TEXT_STRING:
		return "text string"
	case CBOR_MAJOR_ARRAY:
		return "array"
	case CBOR_MAJOR_MAP:
		return "map"
	case CBOR_MAJOR_TAG:
		return "tag"
	case CBOR_MAJOR_SIMPLE:
		return "simple"
	}
	return "unknown"
}
