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

// Package ur decodes the UR envelopes scanned from signer firmware:
// the generic "ur:<type>/<bytewords>" parse plus one schema decoder
// per supported export type (penumbra-accounts, zcash-accounts,
// zigner-backup). Decoders fail fast with the shared wire error
// families; the only tolerated irregularities are an unexpected
// schema tag and unknown map keys, both of which exist so older
// wallets keep working against newer firmware.
package ur

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/zigner-io/gozigner/bytewords"
	"github.com/zigner-io/gozigner/cbor"
	"github.com/zigner-io/gozigner/wire"
)

const urScheme = "ur:"

// Registered schema tags. Firmware may tag an export payload or any
// account entry; the tag is advisory and never required.
const (
	TagPenumbraAccounts uint64 = 40800
	TagZcashAccounts    uint64 = 40801
	TagSeedBackup       uint64 = 40802
)

// DecodeOptionFunc is a type that represents functions that modify the
// decoder options
type DecodeOptionFunc func(*decodeOptions)

type decodeOptions struct {
	logger *slog.Logger
}

// WithLogger specifies the logger used for soft-path diagnostics, such as
// skipped unknown map keys. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) DecodeOptionFunc {
	return func(o *decodeOptions) {
		o.logger = logger
	}
}

func newDecodeOptions(opts []DecodeOptionFunc) *decodeOptions {
	o := &decodeOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Parse splits a single-part UR string into its lowercased type name
// and decoded payload bytes. The scheme and type are matched
// case-insensitively. Multi-part sequences (a further slash inside the
// body) are rejected: an export that does not fit one QR frame cannot
// be reassembled here.
func Parse(s string) (string, []byte, error) {
	if len(s) < len(urScheme) || !strings.EqualFold(s[:len(urScheme)], urScheme) {
		return "", nil, &wire.FormatError{What: "ur", Detail: "not a UR"}
	}
	rest := s[len(urScheme):]
	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return "", nil, &wire.FormatError{
			What:   "ur",
			Detail: "missing type separator",
		}
	}
	typeName := strings.ToLower(rest[:slash])
	if typeName == "" {
		return "", nil, &wire.FormatError{What: "ur", Detail: "empty type"}
	}
	body := rest[slash+1:]
	if strings.ContainsRune(body, '/') {
		return "", nil, &wire.FormatError{
			What:   "ur",
			Detail: "multi-part sequences are not supported",
		}
	}
	payload, err := bytewords.Decode(body)
	if err != nil {
		return "", nil, err
	}
	return typeName, payload, nil
}

// consumeSchemaTag steps over an optional leading semantic tag. A tag
// number other than the registered one is diagnostic only: tags are
// annotations in the signer's CBOR profile, so the payload is decoded
// either way.
func consumeSchemaTag(r *cbor.Reader, registered uint64, logger *slog.Logger) error {
	major, err := r.PeekMajorType()
	if err != nil {
		return err
	}
	if major != cbor.CBOR_MAJOR_TAG {
		return nil
	}
	tagNum, err := r.ReadTag()
	if err != nil {
		return err
	}
	if tagNum != registered {
		logger.Debug(
			"unexpected schema tag",
			"tag", tagNum,
			"registered", registered,
		)
	}
	return nil
}

func wrongUrType(got string, wanted string) error {
	return &wire.FormatError{
		What:   "ur",
		Detail: fmt.Sprintf("unexpected UR type %q (wanted %q)", got, wanted),
	}
}
