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

package qr

import (
	"github.com/zigner-io/gozigner/tx"
	"github.com/zigner-io/gozigner/wire"
)

// VerifyAuthorization checks that an authorization answers the plan it was
// requested for: the effect hash the signer signed over must equal the one
// the wallet computed, and each signable action must have exactly one
// signature of its kind. It performs no cryptography; whether the
// signatures verify is decided when the transaction is assembled for
// broadcast.
func VerifyAuthorization(
	plan *tx.Plan,
	auth *tx.AuthorizationData,
	expected tx.EffectHash,
) error {
	if auth.EffectHash != expected {
		return &wire.IntegrityError{
			What: "effect hash",
			Want: expected.Bytes(),
			Got:  auth.EffectHash.Bytes(),
		}
	}
	if spendCount := plan.SpendCount(); len(auth.SpendAuths) != spendCount {
		return &wire.ValidationError{
			What:     "spend signature count",
			Expected: spendCount,
			Got:      len(auth.SpendAuths),
		}
	}
	if voteCount := plan.DelegatorVoteCount(); len(auth.DelegatorVoteAuths) != voteCount {
		return &wire.ValidationError{
			What:     "delegator vote signature count",
			Expected: voteCount,
			Got:      len(auth.DelegatorVoteAuths),
		}
	}
	return nil
}
