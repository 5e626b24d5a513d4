// Copyright 2026 Blink Labs Software
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

package common

import "fmt"

// AccountNotFoundError indicates an account absent from the account registry
type AccountNotFoundError struct {
	Id EntityId
}

func (e AccountNotFoundError) Error() string {
	return "account not found: " + e.Id.String()
}

// ChannelNotFoundError indicates a channel reference that cannot be resolved
// against the channel registry
type ChannelNotFoundError struct {
	Id EntityId
}

func (e ChannelNotFoundError) Error() string {
	return "channel not found: " + e.Id.String()
}

// WrongNonceError indicates a transaction nonce that does not match the
// account's expected next nonce
type WrongNonceError struct {
	Provided uint64
	Expected uint64
}

func (e WrongNonceError) Error() string {
	return fmt.Sprintf(
		"wrong nonce: provided %d, expected %d",
		e.Provided,
		e.Expected,
	)
}

// InsufficientBalanceError indicates an account balance that cannot cover
// the required amount
type InsufficientBalanceError struct {
	Balance  uint64
	Required uint64
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf(
		"insufficient balance: have %d, need %d",
		e.Balance,
		e.Required,
	)
}

// WrongEntityKindError indicates an identifier tagged with a different
// entity kind than the operation expects
type WrongEntityKindError struct {
	Expected EntityKind
	Actual   EntityKind
}

func (e WrongEntityKindError) Error() string {
	return fmt.Sprintf(
		"wrong entity kind: expected %s, got %s",
		e.Expected,
		e.Actual,
	)
}

// UnknownEntityKindError indicates an unrecognized entity kind tag byte
type UnknownEntityKindError struct {
	Kind uint8
}

func (e UnknownEntityKindError) Error() string {
	return fmt.Sprintf("unknown entity kind: %d", e.Kind)
}

// UnknownBech32PrefixError indicates a bech32 string whose prefix does not
// correspond to any known entity kind
type UnknownBech32PrefixError struct {
	Prefix string
}

func (e UnknownBech32PrefixError) Error() string {
	return "unknown bech32 prefix: " + e.Prefix
}
