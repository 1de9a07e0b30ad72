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

// Package zigner implements the hot-wallet side of the Zigner air-gapped
// signing protocol: encoding transaction sign requests into QR payloads,
// decoding the signer's authorization responses, and decoding the key and
// backup material the signer exports via UR envelopes or the legacy binary
// frames. All key material handled here is view-only; spend keys never
// leave the signer.
package zigner

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/zigner-io/gozigner/qr"
	"github.com/zigner-io/gozigner/ur"
	"github.com/zigner-io/gozigner/wire"
)

const (
	ExportKindPenumbraAccounts = iota
	ExportKindZcashAccounts
	ExportKindSeedBackup
	ExportKindViewingKey
)

// Export is the decoded form of a scanned export payload, whatever transfer
// format it arrived in. Kind names the record field that is set; the others
// stay nil.
type Export struct {
	Kind             int                      `json:"-"`
	PenumbraAccounts *ur.PenumbraAccountGroup `json:"penumbraAccounts,omitempty"`
	ZcashAccounts    []ur.ZcashAccount        `json:"zcashAccounts,omitempty"`
	SeedBackup       *ur.SeedBackup           `json:"seedBackup,omitempty"`
	ViewingKey       *ur.PenumbraKeyExport    `json:"viewingKey,omitempty"`
}

// OptionFunc is a type that represents functions that modify the decoder
// options
type OptionFunc func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger specifies the logger passed through to the underlying decoders
// for their soft-path diagnostics.
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(o *options) {
		o.logger = logger
	}
}

// DecodeExport decodes a payload scanned off the signer's screen. UR strings
// are routed by their type to the matching account or backup decoder;
// anything else is treated as a hex legacy viewing key frame, the only
// binary export format the firmware ever had.
func DecodeExport(scanned string, opts ...OptionFunc) (*Export, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	scanned = strings.TrimSpace(scanned)
	if !isUr(scanned) {
		viewingKey, err := qr.ParseViewingKeyExport(scanned)
		if err != nil {
			return nil, err
		}
		return &Export{
			Kind:       ExportKindViewingKey,
			ViewingKey: viewingKey,
		}, nil
	}
	urType, _, err := ur.Parse(scanned)
	if err != nil {
		return nil, err
	}
	var urOpts []ur.DecodeOptionFunc
	if o.logger != nil {
		urOpts = append(urOpts, ur.WithLogger(o.logger))
	}
	switch urType {
	case wire.ChainPenumbra.UrType:
		group, err := ur.DecodePenumbraAccounts(scanned, urOpts...)
		if err != nil {
			return nil, err
		}
		return &Export{
			Kind:             ExportKindPenumbraAccounts,
			PenumbraAccounts: group,
		}, nil
	case wire.ChainZcash.UrType:
		accounts, err := ur.DecodeZcashAccounts(scanned, urOpts...)
		if err != nil {
			return nil, err
		}
		return &Export{
			Kind:          ExportKindZcashAccounts,
			ZcashAccounts: accounts,
		}, nil
	case ur.BackupUrType:
		backup, err := ur.DecodeSeedBackup(scanned, urOpts...)
		if err != nil {
			return nil, err
		}
		return &Export{
			Kind:       ExportKindSeedBackup,
			SeedBackup: backup,
		}, nil
	default:
		return nil, &wire.FormatError{
			What:   "export",
			Detail: fmt.Sprintf("unsupported UR type %q", urType),
		}
	}
}

func isUr(s string) bool {
	return len(s) >= 3 && strings.EqualFold(s[:3], "ur:")
}
