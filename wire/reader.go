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
	"math"
)

// Reader is a forward-only cursor over a single byte buffer. The offset never
// passes the end of the buffer: a read that would is reported as a
// TruncatedError and leaves the offset where it was. Returned slices alias
// the input buffer; callers that retain them past the decode copy them out.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total buffer length.
func (r *Reader) Len() int {
	return len(r.data)
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Empty reports whether the cursor has consumed the whole buffer.
func (r *Reader) Empty() bool {
	return r.pos >= len(r.data)
}

// Take consumes and returns the next n bytes. The what argument names the
// field being read so truncation errors identify it.
func (r *Reader) Take(n int, what string) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, &TruncatedError{What: what, Need: n, Have: r.Remaining()}
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// Peek returns the next byte without consuming it.
func (r *Reader) Peek(what string) (byte, error) {
	if r.Empty() {
		return 0, &TruncatedError{What: what, Need: 1, Have: 0}
	}
	return r.data[r.pos], nil
}

// ReadByte consumes a single byte.
func (r *Reader) ReadByte(what string) (byte, error) {
	b, err := r.Take(1, what)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16LE consumes a little-endian 16-bit integer.
func (r *Reader) ReadUint16LE(what string) (uint16, error) {
	b, err := r.Take(2, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32LE consumes a little-endian 32-bit integer.
func (r *Reader) ReadUint32LE(what string) (uint32, error) {
	b, err := r.Take(4, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUvarint consumes a base-128 varint (protobuf encoding). Values that do
// not fit 64 bits are a FormatError rather than a silent wrap.
func (r *Reader) ReadUvarint(what string) (uint64, error) {
	var value uint64
	var shift uint
	for {
		b, err := r.ReadByte(what)
		if err != nil {
			return 0, err
		}
		if shift == 63 && b > 1 {
			return 0, &FormatError{What: what, Detail: "varint overflows 64 bits"}
		}
		value |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, nil
		}
		shift += 7
		if shift > 63 {
			return 0, &FormatError{What: what, Detail: "varint overflows 64 bits"}
		}
	}
}

// ReadPrefixedBytes8 consumes a field laid out as a single length byte
// followed by that many bytes.
func (r *Reader) ReadPrefixedBytes8(what string) ([]byte, error) {
	n, err := r.ReadByte(what)
	if err != nil {
		return nil, err
	}
	return r.Take(int(n), what)
}

// ReadPrefixedBytes32 consumes a field laid out as a little-endian 32-bit
// length followed by that many bytes.
func (r *Reader) ReadPrefixedBytes32(what string) ([]byte, error) {
	n, err := r.ReadUint32LE(what)
	if err != nil {
		return nil, err
	}
	// Check before converting so a hostile length can't overflow int on
	// 32-bit platforms.
	if n > math.MaxInt32 {
		return nil, &FormatError{What: what, Detail: "declared length exceeds maximum int32 value"}
	}
	return r.Take(int(n), what)
}

// ExpectEmpty fails with a FormatError when unread bytes remain. Decoders for
// fixed layouts call this last so trailing garbage is rejected rather than
// silently ignored.
func (r *Reader) ExpectEmpty(what string) error {
	if !r.Empty() {
		return &FormatError{
			What:   what,
			Detail: "trailing data after frame",
		}
	}
	return nil
}
