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

package qr_test

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zigner-io/gozigner/internal/test"
	"github.com/zigner-io/gozigner/qr"
	"github.com/zigner-io/gozigner/wire"
)

// Smallest well-formed export: account 0, no label, zero key material
var viewingKeyZeroFixture = "530301" + "00000000" + "00" +
	strings.Repeat("00", 64) + strings.Repeat("00", 32)

// Account 5 labeled "main", 0xab key bytes, 0xcd wallet id bytes
var viewingKeyLabeledFixture = "530301" + "05000000" + "04" + "6d61696e" +
	strings.Repeat("ab", 64) + strings.Repeat("cd", 32)

func TestParseViewingKeyExportZero(t *testing.T) {
	export, err := qr.ParseViewingKeyExport(viewingKeyZeroFixture)
	require.NoError(t, err, "failed to parse viewing key export")
	assert.Equal(t, wire.ChainPenumbra, export.Chain)
	assert.Equal(t, uint32(0), export.AccountIndex)
	assert.Nil(t, export.Label, "a zero-length label must decode as nil")
	assert.Equal(
		t,
		"penumbrafullviewingkey1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqquyf7f7",
		export.FullViewingKey,
	)
	assert.Equal(
		t,
		"penumbrawalletid1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq324t3c",
		export.WalletId.String(),
	)
}

func TestParseViewingKeyExportLabeled(t *testing.T) {
	export, err := qr.ParseViewingKeyExport(viewingKeyLabeledFixture)
	require.NoError(t, err, "failed to parse viewing key export")
	assert.Equal(t, wire.ChainPenumbra, export.Chain)
	assert.Equal(t, uint32(5), export.AccountIndex)
	require.NotNil(t, export.Label)
	assert.Equal(t, "main", *export.Label)
	assert.Equal(
		t,
		"penumbrafullviewingkey14w46h2at4w46h2at4w46h2at4w46h2at4w46h2at4w46h2at4w46h2at4w46h2at4w46h2at4w46h2at4w46h2at4w46h2at4w46h2clcpys7",
		export.FullViewingKey,
	)
	assert.Equal(
		t,
		"penumbrawalletid1ehxumnwdehxumnwdehxumnwdehxumnwdehxumnwdehxumnwdehxs9j34hp",
		export.WalletId.String(),
	)
}

var viewingKeyFormatErrorTests = []struct {
	name        string
	payloadHex  string
	expectedErr string
}{
	{
		name:        "wrong prelude",
		payloadHex:  "52" + viewingKeyZeroFixture[2:],
		expectedErr: "viewing key export: unexpected prelude byte 0x52",
	},
	{
		name:        "unknown chain id",
		payloadHex:  "5307" + viewingKeyZeroFixture[4:],
		expectedErr: "viewing key export: unknown chain id 0x07",
	},
	{
		name:        "chain without a legacy format",
		payloadHex:  "5304" + viewingKeyZeroFixture[4:],
		expectedErr: "viewing key export: chain zcash has no legacy viewing key format",
	},
	{
		name:        "sign request frame fed to the viewing key parser",
		payloadHex:  "530302" + viewingKeyZeroFixture[6:],
		expectedErr: "viewing key export: unexpected message type 0x02 (wanted 0x01)",
	},
	{
		name:        "trailing data",
		payloadHex:  viewingKeyZeroFixture + "00",
		expectedErr: "viewing key export: trailing data after frame",
	},
}

func TestParseViewingKeyExportFormatErrors(t *testing.T) {
	for _, testDef := range viewingKeyFormatErrorTests {
		_, err := qr.ParseViewingKeyExport(testDef.payloadHex)
		if err == nil {
			t.Fatalf("%s: did not get expected error", testDef.name)
		}
		var formatErr *wire.FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf(
				"%s: did not get expected FormatError, got %T: %s",
				testDef.name,
				err,
				err,
			)
		}
		if err.Error() != testDef.expectedErr {
			t.Fatalf(
				"%s: did not get expected error message\n  got: %s\n  wanted: %s",
				testDef.name,
				err.Error(),
				testDef.expectedErr,
			)
		}
	}
}

func TestParseViewingKeyExportTruncated(t *testing.T) {
	// One byte short of the fixed 104-byte minimum
	truncated := viewingKeyZeroFixture[:len(viewingKeyZeroFixture)-2]
	_, err := qr.ParseViewingKeyExport(truncated)
	if err == nil {
		t.Fatalf("did not get expected error")
	}
	var truncatedErr *wire.TruncatedError
	if !errors.As(err, &truncatedErr) {
		t.Fatalf("did not get expected TruncatedError, got %T: %s", err, err)
	}
	expectedErr := "wallet id: truncated (Need 32, Have 31)"
	if err.Error() != expectedErr {
		t.Fatalf(
			"did not get expected error message\n  got: %s\n  wanted: %s",
			err.Error(),
			expectedErr,
		)
	}
}

func FuzzParseViewingKeyExport(f *testing.F) {
	seedHexes := []string{
		viewingKeyZeroFixture,
		viewingKeyLabeledFixture,
		"530301",
		"",
	}
	for _, seedHex := range seedHexes {
		f.Add(test.DecodeHexString(seedHex))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		// Should not panic - that's the test
		export, err := qr.ParseViewingKeyExport(hex.EncodeToString(data))
		if err == nil && export == nil {
			t.Fatal("nil export with nil error")
		}
	})
}
