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
	"encoding/hex"
	"fmt"
)

// Every decoder and encoder in this module fails with exactly one of the five
// error families below. They are plain structs so callers can match them with
// errors.As and inspect the details; wrapping with fmt.Errorf("...: %w", err)
// preserves the family.

// FormatError reports a structurally malformed input: a bad prelude byte, an
// unknown chain or message type tag, an unrecognized token, an envelope that
// is not what it claims to be, or trailing garbage after a complete frame.
type FormatError struct {
	What   string
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: invalid format", e.What)
	}
	return fmt.Sprintf("%s: %s", e.What, e.Detail)
}

// TruncatedError reports a read that would pass the end of the buffer: the
// input declares or implies more bytes than it carries.
type TruncatedError struct {
	What string
	Need int
	Have int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%s: truncated (Need %d, Have %d)", e.What, e.Need, e.Have)
}

// IntegrityError reports a failed cryptographic comparison: a checksum that
// does not match the payload it covers, or a decoded effect hash that differs
// from the locally computed one.
type IntegrityError struct {
	What string
	Want []byte
	Got  []byte
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf(
		"%s mismatch (Want %s, Got %s)",
		e.What,
		hex.EncodeToString(e.Want),
		hex.EncodeToString(e.Got),
	)
}

// SchemaError reports a well-formed input that does not fit the expected
// schema: a required field missing from a record, a CBOR item of an
// unsupported or unexpected major type, or embedded JSON that does not parse.
type SchemaError struct {
	What   string
	Detail string
	// Field is set when a required field was still missing once the record
	// was exhausted.
	Field string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: missing required field %q", e.What, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.What, e.Detail)
}

// ValidationError reports a semantic check failure on otherwise well-formed
// data: signature counts that do not line up with the plan, an effect hash of
// the wrong length, or a signable action with no randomizer.
type ValidationError struct {
	What     string
	Expected int
	Got      int
	Detail   string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.What, e.Detail)
	}
	return fmt.Sprintf("%s (Expected %d, Got %d)", e.What, e.Expected, e.Got)
}
