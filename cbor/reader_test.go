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

package cbor_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	_cbor "github.com/fxamacker/cbor/v2"
	"github.com/zigner-io/gozigner/cbor"
	"github.com/zigner-io/gozigner/wire"
)

type uintTestDefinition struct {
	CborHex string
	Value   uint64
}

var uintTests = []uintTestDefinition{
	// Inline values
	{CborHex: "00", Value: 0},
	{CborHex: "0a", Value: 10},
	{CborHex: "17", Value: 23},
	// One extra byte
	{CborHex: "1818", Value: 24},
	{CborHex: "1864", Value: 100},
	// Two extra bytes
	{CborHex: "1903e8", Value: 1000},
	// Four extra bytes
	{CborHex: "1a000f4240", Value: 1000000},
	{CborHex: "1affffffff", Value: 4294967295},
}

func TestReadUint(t *testing.T) {
	for _, test := range uintTests {
		data, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		r := cbor.NewReader(data)
		value, err := r.ReadUint()
		if err != nil {
			t.Fatalf("failed to read uint from %s: %s", test.CborHex, err)
		}
		if value != test.Value {
			t.Fatalf(
				"uint did not match\n  got: %d\n  wanted: %d",
				value,
				test.Value,
			)
		}
		if !r.Empty() {
			t.Fatalf("expected empty reader, %d bytes remain", r.Remaining())
		}
	}
}

func TestReadBytes(t *testing.T) {
	tests := []struct {
		CborHex  string
		ValueHex string
	}{
		// Empty byte string
		{CborHex: "40", ValueHex: ""},
		// Short byte string
		{CborHex: "4401020304", ValueHex: "01020304"},
		// 32-byte string with one-byte length
		{
			CborHex:  "5820000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			ValueHex: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		},
	}
	for _, test := range tests {
		data, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		expected, err := hex.DecodeString(test.ValueHex)
		if err != nil {
			t.Fatalf("failed to decode value hex: %s", err)
		}
		value, err := cbor.NewReader(data).ReadBytes()
		if err != nil {
			t.Fatalf("failed to read bytes from %s: %s", test.CborHex, err)
		}
		if !bytes.Equal(value, expected) {
			t.Fatalf(
				"bytes did not match\n  got: %x\n  wanted: %x",
				value,
				expected,
			)
		}
	}
}

func TestReadText(t *testing.T) {
	tests := []struct {
		CborHex string
		Value   string
	}{
		// Empty text
		{CborHex: "60", Value: ""},
		// Single character
		{CborHex: "6161", Value: "a"},
		// Text with one-byte length
		{
			CborHex: "781c6162636465666768696a6b6c6d6e6f707172737475767778797a3031",
			Value:   "abcdefghijklmnopqrstuvwxyz01",
		},
	}
	for _, test := range tests {
		data, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		value, err := cbor.NewReader(data).ReadText()
		if err != nil {
			t.Fatalf("failed to read text from %s: %s", test.CborHex, err)
		}
		if value != test.Value {
			t.Fatalf(
				"text did not match\n  got: %q\n  wanted: %q",
				value,
				test.Value,
			)
		}
	}
}

func TestReadTextInvalidUtf8(t *testing.T) {
	data, _ := hex.DecodeString("61ff")
	_, err := cbor.NewReader(data).ReadText()
	if err == nil {
		t.Fatal("expected error, got none")
	}
	var schemaErr *wire.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T: %s", err, err)
	}
}

func TestReadHeaders(t *testing.T) {
	tests := []struct {
		CborHex string
		Read    func(r *cbor.Reader) (uint64, error)
		Value   uint64
	}{
		// Empty array
		{CborHex: "80", Read: (*cbor.Reader).ReadArrayHeader, Value: 0},
		// [1, 2, 3]
		{CborHex: "83010203", Read: (*cbor.Reader).ReadArrayHeader, Value: 3},
		// [0, 1, ... 24, 25]
		{
			CborHex: "981a000102030405060708090a0b0c0d0e0f101112131415161718181819",
			Read:    (*cbor.Reader).ReadArrayHeader,
			Value:   26,
		},
		// Empty map
		{CborHex: "a0", Read: (*cbor.Reader).ReadMapHeader, Value: 0},
		// {1: 2, 3: 4}
		{CborHex: "a201020304", Read: (*cbor.Reader).ReadMapHeader, Value: 2},
		// Tag 1
		{CborHex: "c101", Read: (*cbor.Reader).ReadTag, Value: 1},
		// Registered penumbra-accounts tag
		{CborHex: "d99f60a0", Read: (*cbor.Reader).ReadTag, Value: 40800},
	}
	for _, test := range tests {
		data, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		value, err := test.Read(cbor.NewReader(data))
		if err != nil {
			t.Fatalf("failed to read header from %s: %s", test.CborHex, err)
		}
		if value != test.Value {
			t.Fatalf(
				"header value did not match\n  got: %d\n  wanted: %d",
				value,
				test.Value,
			)
		}
	}
}

func TestPeekMajorType(t *testing.T) {
	data, _ := hex.DecodeString("d99f60a0")
	r := cbor.NewReader(data)
	major, err := r.PeekMajorType()
	if err != nil {
		t.Fatalf("failed to peek: %s", err)
	}
	if major != cbor.CBOR_MAJOR_TAG {
		t.Fatalf("expected tag major type, got %s", major)
	}
	if r.Offset() != 0 {
		t.Fatalf("peek moved the offset to %d", r.Offset())
	}
	if _, err := r.ReadTag(); err != nil {
		t.Fatalf("failed to read tag after peek: %s", err)
	}
	major, err = r.PeekMajorType()
	if err != nil {
		t.Fatalf("failed to peek after tag: %s", err)
	}
	if major != cbor.CBOR_MAJOR_MAP {
		t.Fatalf("expected map major type, got %s", major)
	}
}

type rejectTestDefinition struct {
	CborHex string
	Read    func(r *cbor.Reader) error
}

func readUintErr(r *cbor.Reader) error {
	_, err := r.ReadUint()
	return err
}

func readArrayErr(r *cbor.Reader) error {
	_, err := r.ReadArrayHeader()
	return err
}

func readBytesErr(r *cbor.Reader) error {
	_, err := r.ReadBytes()
	return err
}

var rejectTests = []rejectTestDefinition{
	// Negative integer -1
	{CborHex: "20", Read: readUintErr},
	// Simple value true
	{CborHex: "f5", Read: (*cbor.Reader).SkipValue},
	// 8-byte integer
	{CborHex: "1b0000000000000001", Read: readUintErr},
	// Indefinite-length byte string
	{CborHex: "5f41004100ff", Read: readBytesErr},
	// Indefinite-length array
	{CborHex: "9f01ff", Read: readArrayErr},
	// Reserved additional info 28
	{CborHex: "1c", Read: readUintErr},
	// Expected uint, found text
	{CborHex: "6161", Read: readUintErr},
	// Expected array, found map
	{CborHex: "a0", Read: readArrayErr},
}

func TestSchemaRejections(t *testing.T) {
	for _, test := range rejectTests {
		data, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		err = test.Read(cbor.NewReader(data))
		if err == nil {
			t.Fatalf("expected error reading %s, got none", test.CborHex)
		}
		var schemaErr *wire.SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf(
				"expected SchemaError reading %s, got %T: %s",
				test.CborHex,
				err,
				err,
			)
		}
	}
}

var truncationTests = []rejectTestDefinition{
	// Empty input
	{CborHex: "", Read: readUintErr},
	// Length byte missing
	{CborHex: "18", Read: readUintErr},
	// Two-byte length cut short
	{CborHex: "1901", Read: readUintErr},
	// Four-byte length cut short
	{CborHex: "1a0000", Read: readUintErr},
	// Byte string declares 4, carries 3
	{CborHex: "44010203", Read: readBytesErr},
	// Array contents cut short while skipping
	{CborHex: "830102", Read: (*cbor.Reader).SkipValue},
}

func TestTruncation(t *testing.T) {
	for _, test := range truncationTests {
		data, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		err = test.Read(cbor.NewReader(data))
		if err == nil {
			t.Fatalf("expected error reading %s, got none", test.CborHex)
		}
		var truncErr *wire.TruncatedError
		if !errors.As(err, &truncErr) {
			t.Fatalf(
				"expected TruncatedError reading %s, got %T: %s",
				test.CborHex,
				err,
				err,
			)
		}
	}
}

var skipTests = []string{
	// Single uint
	"00",
	// Byte string
	"4401020304",
	// Text string
	"63666f6f",
	// Flat array
	"83010203",
	// Map
	"a201020304",
	// Nested arrays
	"8281028103",
	// Tagged map
	"d99f60a10102",
}

func TestSkipValue(t *testing.T) {
	for _, cborHex := range skipTests {
		data, err := hex.DecodeString(cborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		r := cbor.NewReader(data)
		if err := r.SkipValue(); err != nil {
			t.Fatalf("failed to skip %s: %s", cborHex, err)
		}
		if !r.Empty() {
			t.Fatalf(
				"skip of %s left %d bytes unread",
				cborHex,
				r.Remaining(),
			)
		}
	}
}

func TestSkipValueLeavesSiblings(t *testing.T) {
	// [1, 2] followed by uint 7
	data, _ := hex.DecodeString("82010207")
	r := cbor.NewReader(data)
	if err := r.SkipValue(); err != nil {
		t.Fatalf("failed to skip: %s", err)
	}
	value, err := r.ReadUint()
	if err != nil {
		t.Fatalf("failed to read sibling: %s", err)
	}
	if value != 7 {
		t.Fatalf("expected sibling 7, got %d", value)
	}
}

func TestSkipValueDepthLimit(t *testing.T) {
	// 30 nested single-element arrays
	data := bytes.Repeat([]byte{0x81}, 30)
	data = append(data, 0x00)
	err := cbor.NewReader(data).SkipValue()
	if err == nil {
		t.Fatal("expected error, got none")
	}
	var schemaErr *wire.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T: %s", err, err)
	}
	// 10 nested arrays stay within the limit
	data = bytes.Repeat([]byte{0x81}, 10)
	data = append(data, 0x00)
	if err := cbor.NewReader(data).SkipValue(); err != nil {
		t.Fatalf("failed to skip shallow nesting: %s", err)
	}
}

// TestCrossValidation walks a payload with the minimal reader and
// checks that a full CBOR implementation sees the same structure.
func TestCrossValidation(t *testing.T) {
	cborHex := "d99f60a2015820abababababababababababababababababababababababababababababababab0281a3016366766b020503656c6162656c"
	data, err := hex.DecodeString(cborHex)
	if err != nil {
		t.Fatalf("failed to decode CBOR hex: %s", err)
	}

	var generic any
	if err := _cbor.Unmarshal(data, &generic); err != nil {
		t.Fatalf("reference decoder rejected fixture: %s", err)
	}
	expected := _cbor.Tag{
		Number: 40800,
		Content: map[any]any{
			uint64(1): bytes.Repeat([]byte{0xab}, 32),
			uint64(2): []any{
				map[any]any{
					uint64(1): "fvk",
					uint64(2): uint64(5),
					uint64(3): "label",
				},
			},
		},
	}
	if !reflect.DeepEqual(generic, expected) {
		t.Fatalf(
			"reference decode did not match\n  got: %#v\n  wanted: %#v",
			generic,
			expected,
		)
	}

	r := cbor.NewReader(data)
	tagNum, err := r.ReadTag()
	if err != nil {
		t.Fatalf("failed to read tag: %s", err)
	}
	if tagNum != 40800 {
		t.Fatalf("expected tag 40800, got %d", tagNum)
	}
	pairs, err := r.ReadMapHeader()
	if err != nil {
		t.Fatalf("failed to read map header: %s", err)
	}
	if pairs != 2 {
		t.Fatalf("expected 2 pairs, got %d", pairs)
	}
	key, err := r.ReadUint()
	if err != nil || key != 1 {
		t.Fatalf("expected key 1, got %d (%v)", key, err)
	}
	walletId, err := r.ReadBytes()
	if err != nil {
		t.Fatalf("failed to read wallet id: %s", err)
	}
	if !bytes.Equal(walletId, bytes.Repeat([]byte{0xab}, 32)) {
		t.Fatalf("wallet id did not match: %x", walletId)
	}
	key, err = r.ReadUint()
	if err != nil || key != 2 {
		t.Fatalf("expected key 2, got %d (%v)", key, err)
	}
	count, err := r.ReadArrayHeader()
	if err != nil || count != 1 {
		t.Fatalf("expected 1 account, got %d (%v)", count, err)
	}
	pairs, err = r.ReadMapHeader()
	if err != nil || pairs != 3 {
		t.Fatalf("expected 3 pairs, got %d (%v)", pairs, err)
	}
	for _, expected := range []struct {
		Key  uint64
		Read func() error
	}{
		{Key: 1, Read: func() error {
			value, err := r.ReadText()
			if err == nil && value != "fvk" {
				t.Fatalf("expected fvk, got %q", value)
			}
			return err
		}},
		{Key: 2, Read: func() error {
			value, err := r.ReadUint()
			if err == nil && value != 5 {
				t.Fatalf("expected index 5, got %d", value)
			}
			return err
		}},
		{Key: 3, Read: func() error {
			value, err := r.ReadText()
			if err == nil && value != "label" {
				t.Fatalf("expected label, got %q", value)
			}
			return err
		}},
	} {
		key, err := r.ReadUint()
		if err != nil {
			t.Fatalf("failed to read key: %s", err)
		}
		if key != expected.Key {
			t.Fatalf("expected key %d, got %d", expected.Key, key)
		}
		if err := expected.Read(); err != nil {
			t.Fatalf("failed to read value for key %d: %s", key, err)
		}
	}
	if !r.Empty() {
		t.Fatalf("expected empty reader, %d bytes remain", r.Remaining())
	}
}

func FuzzSkipValue(f *testing.F) {
	// Seed corpus with valid CBOR samples
	f.Add([]byte{0x00})                         // integer 0
	f.Add([]byte{0x18, 0x64})                   // integer 100
	f.Add([]byte{0x19, 0x27, 0x10})             // integer 10000
	f.Add([]byte{0x1a, 0x00, 0x01, 0x86, 0xa0}) // integer 100000
	f.Add([]byte{0x40})                         // empty bytestring
	f.Add([]byte{0x44, 0x01, 0x02, 0x03, 0x04}) // bytestring
	f.Add([]byte{0x60})                         // empty text string
	f.Add([]byte{0x65, 0x68, 0x65, 0x6c, 0x6c, 0x6f}) // "hello"
	f.Add([]byte{0x80})                               // empty array
	f.Add([]byte{0xa0})                               // empty map
	f.Add([]byte{0x83, 0x01, 0x02, 0x03})             // [1, 2, 3]
	f.Add([]byte{0xd9, 0x9f, 0x60, 0xa0})             // tagged empty map
	f.Add([]byte{0xf5})                               // true (rejected)
	f.Add([]byte{0x9f, 0x01, 0xff})                   // indefinite (rejected)

	f.Fuzz(func(t *testing.T, data []byte) {
		_ = cbor.NewReader(data).SkipValue()
		// Should not panic - that's the test
	})
}
