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

package ur

import (
	"encoding/json"
	"fmt"

	"github.com/zigner-io/gozigner/cbor"
	"github.com/zigner-io/gozigner/wire"
)

// BackupUrType is the UR type of seed backup manifests. Backups are
// chain-agnostic, so the type name belongs to the signer rather than
// to a chain definition.
const BackupUrType = "zigner-backup"

// DecodeSeedBackup decodes a zigner-backup UR export. The payload is a
// single CBOR text string holding a JSON manifest; "name" and
// "accounts" are required, everything else defaults quietly.
func DecodeSeedBackup(s string, opts ...DecodeOptionFunc) (*SeedBackup, error) {
	o := newDecodeOptions(opts)
	typeName, payload, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if typeName != BackupUrType {
		return nil, wrongUrType(typeName, BackupUrType)
	}
	r := cbor.NewReader(payload)
	if err := consumeSchemaTag(r, TagSeedBackup, o.logger); err != nil {
		return nil, err
	}
	doc, err := r.ReadText()
	if err != nil {
		return nil, err
	}
	var manifest struct {
		Version  *uint32         `json:"version"`
		Name     *string         `json:"name"`
		Accounts []BackupAccount `json:"accounts"`
	}
	if err := json.Unmarshal([]byte(doc), &manifest); err != nil {
		return nil, &wire.SchemaError{
			What:   "zigner-backup",
			Detail: fmt.Sprintf("manifest is not valid JSON: %s", err),
		}
	}
	if manifest.Name == nil {
		return nil, &wire.SchemaError{What: "zigner-backup", Field: "name"}
	}
	if manifest.Accounts == nil {
		return nil, &wire.SchemaError{What: "zigner-backup", Field: "accounts"}
	}
	backup := &SeedBackup{
		Name:     *manifest.Name,
		Accounts: manifest.Accounts,
	}
	if manifest.Version != nil {
		backup.Version = *manifest.Version
	}
	return backup, nil
}
