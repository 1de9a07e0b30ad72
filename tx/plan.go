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

// Package tx provides the transaction-side domain types shared by the QR
// codec: the plan handed to a signer, the actions it enumerates, and the
// authorization data returned after signing. Plan bytes are produced by an
// external planner and treated as opaque; only the action list is inspected.
package tx

import (
	"fmt"

	"github.com/zigner-io/gozigner/wire"
)

// Plan pairs the serialized transaction plan with the actions it contains.
// The serialized form is carried verbatim into signing requests; the action
// list determines which randomizers travel with it and how many signatures
// are expected back.
type Plan struct {
	Bytes   []byte
	Actions []Action
}

// SpendCount returns the number of spend actions in the plan.
func (p *Plan) SpendCount() int {
	count := 0
	for _, action := range p.Actions {
		if action.Type() == ActionTypeSpend {
			count++
		}
	}
	return count
}

// DelegatorVoteCount returns the number of delegator vote actions in the plan.
func (p *Plan) DelegatorVoteCount() int {
	count := 0
	for _, action := range p.Actions {
		if action.Type() == ActionTypeDelegatorVote {
			count++
		}
	}
	return count
}

// Randomizers collects the spend and delegator vote randomizers in plan
// order. Spends and delegator votes are signed, so every one of them must
// carry a randomizer of exactly RandomizerSize bytes; a missing or mis-sized
// randomizer fails with a wire.ValidationError naming the action's position.
// Encoding such a plan anyway would desynchronize the signature lists the
// signer sends back.
func (p *Plan) Randomizers() ([][]byte, [][]byte, error) {
	var spendRands, voteRands [][]byte
	for i, action := range p.Actions {
		kind := action.Type()
		if kind != ActionTypeSpend && kind != ActionTypeDelegatorVote {
			continue
		}
		randomizer, _ := actionRandomizer(action)
		if len(randomizer) != RandomizerSize {
			kindName := "spend"
			if kind == ActionTypeDelegatorVote {
				kindName = "delegator vote"
			}
			return nil, nil, &wire.ValidationError{
				What: "transaction plan",
				Detail: fmt.Sprintf(
					"%s action %d randomizer must be %d bytes, got %d",
					kindName,
					i,
					RandomizerSize,
					len(randomizer),
				),
			}
		}
		if kind == ActionTypeSpend {
			spendRands = append(spendRands, randomizer)
		} else {
			voteRands = append(voteRands, randomizer)
		}
	}
	return spendRands, voteRands, nil
}
