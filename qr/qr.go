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

// Package qr implements the binary QR frames exchanged with signer firmware:
// the sign request shown to the signer, the authorization response scanned
// back, and the legacy viewing key export. Frames travel as lowercase hex
// strings; multi-byte integers are little-endian. Frames sent to the signer
// open with a three byte prelude; the authorization response carries none,
// an asymmetry inherited from the firmware that this package preserves.
package qr

import (
	"log/slog"
)

const (
	// FramePrelude is the first byte of every prelude-carrying frame:
	// viewing key exports and sign requests. Authorization responses
	// have no prelude.
	FramePrelude byte = 0x53

	// Message types distinguish frame layouts after the chain id byte.
	MessageTypeViewingKey  byte = 0x01
	MessageTypeSignRequest byte = 0x02
)

// OptionFunc is a type that represents functions that modify the codec
// options
type OptionFunc func(*options)

type options struct {
	logger     *slog.Logger
	assetNames []string
}

// WithLogger specifies the logger used for the encoder's size warning and
// for soft-path diagnostics while parsing. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAssetNames specifies display names for the assets a sign request
// touches. The signer shows them next to amounts; they carry no consensus
// meaning.
func WithAssetNames(names []string) OptionFunc {
	return func(o *options) {
		o.assetNames = names
	}
}

func newOptions(opts []OptionFunc) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
