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

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// Builder accumulates a binary frame. Plain appends cannot fail; the
// length-prefixed appends return an error when the payload does not fit the
// prefix width, so an encoder can never emit a frame its own decoder would
// reject.
type Builder struct {
	buf []byte
}

// NewBuilder returns a Builder with the given capacity hint.
func NewBuilder(sizeHint int) *Builder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Builder{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the accumulated frame. The slice is owned by the Builder
// until the caller stops appending.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Len returns the current frame length.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Hex returns the accumulated frame as lowercase hex.
func (b *Builder) Hex() string {
	return hex.EncodeToString(b.buf)
}

// AppendByte appends a single byte.
func (b *Builder) AppendByte(v byte) {
	b.buf = append(b.buf, v)
}

// AppendBytes appends raw bytes with no length prefix.
func (b *Builder) AppendBytes(data []byte) {
	b.buf = append(b.buf, data...)
}

// AppendUint16LE appends a little-endian 16-bit integer.
func (b *Builder) AppendUint16LE(v uint16) {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
}

// AppendUint32LE appends a little-endian 32-bit integer.
func (b *Builder) AppendUint32LE(v uint32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
}

// AppendUvarint appends a base-128 varint (protobuf encoding).
func (b *Builder) AppendUvarint(v uint64) {
	b.buf = binary.AppendUvarint(b.buf, v)
}

// AppendPrefixedBytes8 appends a single length byte followed by the payload.
func (b *Builder) AppendPrefixedBytes8(data []byte, what string) error {
	if len(data) > math.MaxUint8 {
		return &ValidationError{
			What:     what,
			Expected: math.MaxUint8,
			Got:      len(data),
		}
	}
	b.buf = append(b.buf, byte(len(data)))
	b.buf = append(b.buf, data...)
	return nil
}

// AppendPrefixedBytes32 appends a little-endian 32-bit length followed by the
// payload.
func (b *Builder) AppendPrefixedBytes32(data []byte, what string) error {
	if uint64(len(data)) > math.MaxUint32 {
		return &ValidationError{
			What:   what,
			Detail: fmt.Sprintf("length %d exceeds 32-bit prefix", len(data)),
		}
	}
	b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(len(data)))
	b.buf = append(b.buf, data...)
	return nil
}
