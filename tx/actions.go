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

package tx

const (
	ActionTypeSpend         = 0
	ActionTypeOutput        = 1
	ActionTypeDelegatorVote = 2
	ActionTypeDelegate      = 3
	ActionTypeUndelegate    = 4
	ActionTypeSwap          = 5
	ActionTypeOther         = 6
)

// RandomizerSize is the exact size of a spend or delegator vote randomizer.
const RandomizerSize = 32

// Action represents a single action inside a transaction plan. The codec
// never decodes action contents out of the serialized plan; it only needs
// each action's kind, order, and randomizer (where one applies), so the
// variants carry nothing else.
type Action interface {
	isAction()
	Type() uint
}

// SpendAction spends a note. Its randomizer, when present, must be exactly
// RandomizerSize bytes and travels alongside the plan in signing requests.
type SpendAction struct {
	Randomizer []byte
}

func (a SpendAction) isAction() {}

func (a SpendAction) Type() uint {
	return ActionTypeSpend
}

// OutputAction creates a note for a recipient.
type OutputAction struct{}

func (a OutputAction) isAction() {}

func (a OutputAction) Type() uint {
	return ActionTypeOutput
}

// DelegatorVoteAction casts a governance vote backed by staked notes. Like
// spends, votes are signed and may carry a RandomizerSize-byte randomizer.
type DelegatorVoteAction struct {
	Randomizer []byte
}

func (a DelegatorVoteAction) isAction() {}

func (a DelegatorVoteAction) Type() uint {
	return ActionTypeDelegatorVote
}

// DelegateAction bonds stake to a validator.
type DelegateAction struct{}

func (a DelegateAction) isAction() {}

func (a DelegateAction) Type() uint {
	return ActionTypeDelegate
}

// UndelegateAction unbonds stake from a validator.
type UndelegateAction struct{}

func (a UndelegateAction) isAction() {}

func (a UndelegateAction) Type() uint {
	return ActionTypeUndelegate
}

// SwapAction submits a swap into a batch auction.
type SwapAction struct{}

func (a SwapAction) isAction() {}

func (a SwapAction) Type() uint {
	return ActionTypeSwap
}

// OtherAction stands in for any action kind the codec does not inspect. It
// preserves the action's position in the plan without carrying its contents.
type OtherAction struct {
	Name string
}

func (a OtherAction) isAction() {}

func (a OtherAction) Type() uint {
	return ActionTypeOther
}

// actionRandomizer extracts the randomizer from the signable action kinds.
// Variants are meant to be stored as values, but the pointer forms satisfy
// Action too, so both are handled.
func actionRandomizer(action Action) ([]byte, bool) {
	switch a := action.(type) {
	case SpendAction:
		return a.Randomizer, true
	case *SpendAction:
		return a.Randomizer, true
	case DelegatorVoteAction:
		return a.Randomizer, true
	case *DelegatorVoteAction:
		return a.Randomizer, true
	}
	return nil, false
}
