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

package zigner_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	zigner "github.com/zigner-io/gozigner"
	"github.com/zigner-io/gozigner/wire"
)

// Wallet id 0xab*32 with two accounts, the first labeled "Main" at index 0,
// the second unlabeled at index 5
const penumbraAccountsUr = "ur:penumbra-accounts/oeadhdcxpypypypypypypypypypypypypypypypypypypypypypypypypypypypypypypypyaolfotadksdajoihjtkpjnidjphsiykpjzjzkoinihktinjtiojeihkkehiyeejeihdyhsjskteskoeojtjyemaoaeaxiegthsinjtoeadksdajoihjtkpjnidjphsiykpjzjzkoinihktinjtiojeihkkehjneoknesieetjkeyiaecksiseeioaoahcewzfzsk"

// One unified viewing key labeled "Spending" at index 1
const zcashAccountsUr = "ur:zcash-accounts/tanehsoyadlyotadkseskpkoinihktehjkeyiheceekojtjkhsjnimktjnjsemjzjpenjekkiykkkkeyiheoieetiejeiejpeyesjniyjsihiyisiajsjtjsioeojpjekoksjsaoadaxisgujoihjtieinjtiogaztwpol"

// Minimal backup manifest: name "y" and an empty account list
const seedBackupUr = "ur:zigner-backup/kscykgcpjthsjnihcpftcpkkcpdwcphsiaiajlkpjtjyjkcpfthphlkisfbaihzo"

// Account 0 export with zeroed key material
const legacyViewingKeyHex = "530301" + "00000000" + "00" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000000000000000000000000000000000000"

func TestDecodeExportPenumbraAccounts(t *testing.T) {
	export, err := zigner.DecodeExport(penumbraAccountsUr)
	require.NoError(t, err, "failed to decode export")
	assert.Equal(t, zigner.ExportKindPenumbraAccounts, export.Kind)
	require.NotNil(t, export.PenumbraAccounts)
	assert.Equal(
		t,
		bytes.Repeat([]byte{0xab}, 32),
		export.PenumbraAccounts.WalletId.Bytes(),
	)
	assert.Len(t, export.PenumbraAccounts.Accounts, 2)
	assert.Nil(t, export.ZcashAccounts)
	assert.Nil(t, export.SeedBackup)
	assert.Nil(t, export.ViewingKey)
}

func TestDecodeExportZcashAccounts(t *testing.T) {
	export, err := zigner.DecodeExport(zcashAccountsUr)
	require.NoError(t, err, "failed to decode export")
	assert.Equal(t, zigner.ExportKindZcashAccounts, export.Kind)
	require.Len(t, export.ZcashAccounts, 1)
	assert.Equal(t, uint32(1), export.ZcashAccounts[0].Index)
	require.NotNil(t, export.ZcashAccounts[0].Label)
	assert.Equal(t, "Spending", *export.ZcashAccounts[0].Label)
}

func TestDecodeExportSeedBackup(t *testing.T) {
	export, err := zigner.DecodeExport(seedBackupUr)
	require.NoError(t, err, "failed to decode export")
	assert.Equal(t, zigner.ExportKindSeedBackup, export.Kind)
	require.NotNil(t, export.SeedBackup)
	assert.Equal(t, "y", export.SeedBackup.Name)
	assert.Len(t, export.SeedBackup.Accounts, 0)
}

func TestDecodeExportLegacyViewingKey(t *testing.T) {
	export, err := zigner.DecodeExport(legacyViewingKeyHex)
	require.NoError(t, err, "failed to decode export")
	assert.Equal(t, zigner.ExportKindViewingKey, export.Kind)
	require.NotNil(t, export.ViewingKey)
	assert.Equal(t, wire.ChainPenumbra, export.ViewingKey.Chain)
	assert.Equal(t, uint32(0), export.ViewingKey.AccountIndex)
	assert.Nil(t, export.ViewingKey.Label)
}

func TestDecodeExportTrimsWhitespace(t *testing.T) {
	export, err := zigner.DecodeExport("  " + legacyViewingKeyHex + "\n")
	require.NoError(t, err, "failed to decode export")
	assert.Equal(t, zigner.ExportKindViewingKey, export.Kind)
}

func TestDecodeExportUppercaseUr(t *testing.T) {
	export, err := zigner.DecodeExport(strings.ToUpper(penumbraAccountsUr))
	require.NoError(t, err, "failed to decode uppercase export")
	assert.Equal(t, zigner.ExportKindPenumbraAccounts, export.Kind)
}

func TestDecodeExportUnsupportedUrType(t *testing.T) {
	_, err := zigner.DecodeExport("ur:crypto-seed/aeadaolazmjendeoti")
	if err == nil {
		t.Fatalf("did not get expected error")
	}
	var formatErr *wire.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("did not get expected FormatError, got %T: %s", err, err)
	}
	expectedErr := `export: unsupported UR type "crypto-seed"`
	if err.Error() != expectedErr {
		t.Fatalf(
			"did not get expected error message\n  got: %s\n  wanted: %s",
			err.Error(),
			expectedErr,
		)
	}
}

func TestDecodeExportBadPayloads(t *testing.T) {
	badPayloads := []string{
		// Not hex, not a UR
		"hello world",
		// UR with a corrupt bytewords body
		"ur:penumbra-accounts/aeaeaeae",
		// Hex that is not a viewing key frame
		"deadbeef",
		"",
	}
	for _, payload := range badPayloads {
		if _, err := zigner.DecodeExport(payload); err == nil {
			t.Fatalf("did not get expected error for payload %q", payload)
		}
	}
}
