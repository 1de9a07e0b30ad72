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

// Package bytewords implements the Bytewords encoding carried inside
// UR payloads. Each byte is rendered as a four-letter English word and
// a CRC32 checksum over the payload is appended before encoding, so
// every decoded body is integrity-checked end to end.
package bytewords

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/zigner-io/gozigner/wire"
)

// checksumLen is the number of CRC32 bytes appended to every encoded
// payload.
const checksumLen = 4

// Style selects how an encoded body is rendered
type Style int

const (
	// StyleStandard renders one dash-separated four-letter word per byte
	StyleStandard Style = iota
	// StyleMinimal renders the first and last letter of each word with
	// no separator, which is the form UR bodies use
	StyleMinimal
)

func (s Style) String() string {
	switch s {
	case StyleStandard:
		return "standard"
	case StyleMinimal:
		return "minimal"
	}
	return "unknown"
}

// Decode converts an encoded body back into its payload bytes,
// verifying and stripping the trailing CRC32 checksum. The presence of
// a dash separator selects the standard form; otherwise the body is
// read as minimal. A valid body always carries at least five bytes
// (one payload byte plus the checksum), so the standard form always
// contains a dash and the dashless case is unambiguous. Word matching
// is case-insensitive.
func Decode(body string) ([]byte, error) {
	body = strings.ToLower(body)
	var raw []byte
	var err error
	if strings.Contains(body, "-") {
		raw, err = decodeStandard(body)
	} else {
		raw, err = decodeMinimal(body)
	}
	if err != nil {
		return nil, err
	}
	return checkChecksum(raw)
}

// Encode renders payload in the given style, appending the big-endian
// CRC32 checksum of the payload before encoding.
func Encode(payload []byte, style Style) string {
	var sum [checksumLen]byte
	binary.BigEndian.PutUint32(sum[:], crc32.ChecksumIEEE(payload))
	raw := make([]byte, 0, len(payload)+checksumLen)
	raw = append(raw, payload...)
	raw = append(raw, sum[:]...)
	var sb strings.Builder
	switch style {
	case StyleMinimal:
		sb.Grow(len(raw) * 2)
		for _, b := range raw {
			word := wordList[b]
			sb.WriteByte(word[0])
			sb.WriteByte(word[3])
		}
	default:
		sb.Grow(len(raw) * 5)
		for i, b := range raw {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteString(wordList[b])
		}
	}
	return sb.String()
}

func decodeStandard(body string) ([]byte, error) {
	parts := strings.Split(body, "-")
	raw := make([]byte, 0, len(parts))
	for _, word := range parts {
		b, ok := wordIndex[word]
		if !ok {
			return nil, &wire.FormatError{
				What:   "bytewords",
				Detail: fmt.Sprintf("unknown word %q", word),
			}
		}
		raw = append(raw, b)
	}
	return raw, nil
}

func decodeMinimal(body string) ([]byte, error) {
	if len(body)%2 != 0 {
		return nil, &wire.FormatError{
			What:   "bytewords",
			Detail: "minimal body has odd length",
		}
	}
	raw := make([]byte, 0, len(body)/2)
	for i := 0; i < len(body); i += 2 {
		b, ok := minimalIndex[body[i:i+2]]
		if !ok {
			return nil, &wire.FormatError{
				What:   "bytewords",
				Detail: fmt.Sprintf("unknown word %q", body[i:i+2]),
			}
		}
		raw = append(raw, b)
	}
	return raw, nil
}

func checkChecksum(raw []byte) ([]byte, error) {
	if len(raw) < checksumLen+1 {
		return nil, &wire.TruncatedError{
			What: "bytewords",
			Need: checksumLen + 1,
			Have: len(raw),
		}
	}
	payload := raw[:len(raw)-checksumLen]
	var want [checksumLen]byte
	binary.BigEndian.PutUint32(want[:], crc32.ChecksumIEEE(payload))
	got := raw[len(raw)-checksumLen:]
	if !bytes.Equal(want[:], got) {
		return nil, &wire.IntegrityError{
			What: "bytewords checksum",
			Want: want[:],
			Got:  got,
		}
	}
	return payload, nil
}
