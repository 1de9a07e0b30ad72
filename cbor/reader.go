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

package cbor

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/zigner-io/gozigner/wire"
)

// maxSkipDepth bounds SkipValue recursion so a hostile payload cannot
// blow the stack with deeply nested items.
const maxSkipDepth = 24

// Reader is a forward-only cursor over one CBOR payload. Each Read
// method consumes exactly one data item; PeekMajorType inspects the
// next item without consuming it. Reads past the end of the payload
// fail with a wire.TruncatedError, items outside the supported profile
// with a wire.SchemaError.
type Reader struct {
	r *wire.Reader
}

func NewReader(data []byte) *Reader {
	return &Reader{r: wire.NewReader(data)}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.r.Offset()
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return r.r.Remaining()
}

// Empty reports whether the cursor has consumed the whole payload.
func (r *Reader) Empty() bool {
	return r.r.Empty()
}

// PeekMajorType returns the major type of the next item without
// consuming it.
func (r *Reader) PeekMajorType() (Major, error) {
	b, err := r.r.Peek("cbor item")
	if err != nil {
		return 0, err
	}
	return Major(b & CBOR_MAJOR_MASK), nil
}

// ReadUint consumes an unsigned integer item.
func (r *Reader) ReadUint() (uint64, error) {
	return r.readExpected(CBOR_MAJOR_UNSIGNED, "cbor uint")
}

// ReadBytes consumes a byte string item. The returned slice aliases
// the payload buffer.
func (r *Reader) ReadBytes() ([]byte, error) {
	length, err := r.readExpected(CBOR_MAJOR_BYTE_STRING, "cbor bytes")
	if err != nil {
		return nil, err
	}
	return r.takeLength(length, "cbor bytes")
}

// ReadText consumes a text string item and validates it as UTF-8.
func (r *Reader) ReadText() (string, error) {
	length, err := r.readExpected(CBOR_MAJOR_TEXT_STRING, "cbor text")
	if err != nil {
		return "", err
	}
	data, err := r.takeLength(length, "cbor text")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &wire.SchemaError{
			What:   "cbor text",
			Detail: "text string is not valid UTF-8",
		}
	}
	return string(data), nil
}

// ReadArrayHeader consumes an array header and returns the declared
// element count. The caller reads exactly that many items.
func (r *Reader) ReadArrayHeader() (uint64, error) {
	return r.readExpected(CBOR_MAJOR_ARRAY, "cbor array")
}

// ReadMapHeader consumes a map header and returns the declared pair
// count. The caller reads exactly that many key/value item pairs.
func (r *Reader) ReadMapHeader() (uint64, error) {
	return r.readExpected(CBOR_MAJOR_MAP, "cbor map")
}

// ReadTag consumes a semantic tag header and returns the tag number.
// The tagged content is left for the caller to read next.
func (r *Reader) ReadTag() (uint64, error) {
	return r.readExpected(CBOR_MAJOR_TAG, "cbor tag")
}

// SkipValue consumes one item of any supported shape, including its
// nested content. Decoders use it to step over map entries they do not
// recognize so newer firmware can add fields without breaking older
// wallets.
func (r *Reader) SkipValue() error {
	return r.skipValue(0)
}

func (r *Reader) skipValue(depth int) error {
	if depth > maxSkipDepth {
		return &wire.SchemaError{
			What:   "cbor skip",
			Detail: "nesting too deep",
		}
	}
	major, value, err := r.readHead("cbor skip")
	if err != nil {
		return err
	}
	switch major {
	case CBOR_MAJOR_UNSIGNED:
		return nil
	case CBOR_MAJOR_BYTE_STRING, CBOR_MAJOR_TEXT_STRING:
		_, err := r.takeLength(value, "cbor skip")
		return err
	case CBOR_MAJOR_ARRAY:
		for i := uint64(0); i < value; i++ {
			if err := r.skipValue(depth + 1); err != nil {
				return err
			}
		}
		return nil
	case CBOR_MAJOR_MAP:
		for i := uint64(0); i < value*2; i++ {
			if err := r.skipValue(depth + 1); err != nil {
				return err
			}
		}
		return nil
	case CBOR_MAJOR_TAG:
		return r.skipValue(depth + 1)
	default:
		return &wire.SchemaError{
			What:   "cbor skip",
			Detail: fmt.Sprintf("unsupported major type %s", major),
		}
	}
}

// readHead consumes an item's initial byte plus any extended length
// bytes and returns the major type and the argument value (the integer
// itself for major 0, the length for strings, the count for
// containers, the tag number for tags).
func (r *Reader) readHead(what string) (Major, uint64, error) {
	b, err := r.r.ReadByte(what)
	if err != nil {
		return 0, 0, err
	}
	major := Major(b & CBOR_MAJOR_MASK)
	info := b & CBOR_INFO_MASK
	switch {
	case info <= CBOR_MAX_UINT_SIMPLE:
		return major, uint64(info), nil
	case info == CBOR_UINT8_FOLLOWS:
		v, err := r.r.ReadByte(what)
		if err != nil {
			return 0, 0, err
		}
		return major, uint64(v), nil
	case info == CBOR_UINT16_FOLLOWS:
		buf, err := r.r.Take(2, what)
		if err != nil {
			return 0, 0, err
		}
		return major, uint64(binary.BigEndian.Uint16(buf)), nil
	case info == CBOR_UINT32_FOLLOWS:
		buf, err := r.r.Take(4, what)
		if err != nil {
			return 0, 0, err
		}
		return major, uint64(binary.BigEndian.Uint32(buf)), nil
	case info == CBOR_UINT64_FOLLOWS:
		return 0, 0, &wire.SchemaError{
			What:   what,
			Detail: "8-byte integers are not supported",
		}
	case info == CBOR_INDEFINITE:
		return 0, 0, &wire.SchemaError{
			What:   what,
			Detail: "indefinite-length items are not supported",
		}
	default:
		return 0, 0, &wire.SchemaError{
			What:   what,
			Detail: fmt.Sprintf("reserved additional info %d", info),
		}
	}
}

func (r *Reader) readExpected(want Major, what string) (uint64, error) {
	major, value, err := r.readHead(what)
	if err != nil {
		return 0, err
	}
	if major != want {
		return 0, &wire.SchemaError{
			What: what,
			Detail: fmt.Sprintf(
				"unexpected major type %s (wanted %s)",
				major,
				want,
			),
		}
	}
	return value, nil
}

func (r *Reader) takeLength(length uint64, what string) ([]byte, error) {
	// Check before converting so a hostile length can't overflow int on
	// 32-bit platforms.
	if length > math.MaxInt32 {
		return nil, &wire.FormatError{
			What:   what,
			Detail: "declared length exceeds maximum int32 value",
		}
	}
	return r.r.Take(int(length), what)
}
