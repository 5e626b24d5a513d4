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

import "maps"

// AccountRegistry holds the accounts of a ledger state snapshot. Mutating
// operations copy the backing map and return a new registry, so any snapshot
// holding the old registry stays valid.
type AccountRegistry struct {
	accounts map[EntityRef]Account
}

func NewAccountRegistry(accounts ...Account) AccountRegistry {
	r := AccountRegistry{
		accounts: make(map[EntityRef]Account, len(accounts)),
	}
	for _, acct := range accounts {
		r.accounts[acct.Id().Ref()] = acct
	}
	return r
}

func (r AccountRegistry) Lookup(id EntityId) (Account, bool) {
	if id.Kind() != EntityKindAccount {
		return Account{}, false
	}
	acct, ok := r.accounts[id.Ref()]
	return acct, ok
}

// Get returns the account for the provided identity. The account is
// expected to exist.
func (r AccountRegistry) Get(id EntityId) (Account, error) {
	acct, ok := r.Lookup(id)
	if !ok {
		return Account{}, AccountNotFoundError{Id: id}
	}
	return acct, nil
}

// Enter returns a new registry with the provided account added or replaced
func (r AccountRegistry) Enter(acct Account) AccountRegistry {
	tmpAccounts := maps.Clone(r.accounts)
	if tmpAccounts == nil {
		tmpAccounts = make(map[EntityRef]Account)
	}
	tmpAccounts[acct.Id().Ref()] = acct
	return AccountRegistry{accounts: tmpAccounts}
}

func (r AccountRegistry) Len() int {
	return len(r.accounts)
}

// ChannelRegistry holds the channels of a ledger state snapshot, with the
// same copy-on-write discipline as AccountRegistry
type ChannelRegistry struct {
	channels map[EntityRef]Channel
}

func NewChannelRegistry(channels ...Channel) ChannelRegistry {
	r := ChannelRegistry{
		channels: make(map[EntityRef]Channel, len(channels)),
	}
	for _, ch := range channels {
		r.channels[ch.Id().Ref()] = ch
	}
	return r
}

func (r ChannelRegistry) Lookup(id EntityId) (Channel, bool) {
	if id.Kind() != EntityKindChannel {
		return Channel{}, false
	}
	ch, ok := r.channels[id.Ref()]
	return ch, ok
}

// Get returns the channel for the provided reference. The channel is
// expected to exist.
func (r ChannelRegistry) Get(id EntityId) (Channel, error) {
	ch, ok := r.Lookup(id)
	if !ok {
		return Channel{}, ChannelNotFoundError{Id: id}
	}
	return ch, nil
}

// Enter returns a new registry with the provided channel added or replaced
func (r ChannelRegistry) Enter(ch Channel) ChannelRegistry {
	tmpChannels := maps.Clone(r.channels)
	if tmpChannels == nil {
		tmpChannels = make(map[EntityRef]Channel)
	}
	tmpChannels[ch.Id().Ref()] = ch
	return ChannelRegistry{channels: tmpChannels}
}

// Delete returns a new registry without the provided channel
func (r ChannelRegistry) Delete(id EntityId) ChannelRegistry {
	tmpChannels := maps.Clone(r.channels)
	if tmpChannels == nil {
		tmpChannels = make(map[EntityRef]Channel)
	}
	delete(tmpChannels, id.Ref())
	return ChannelRegistry{channels: tmpChannels}
}

func (r ChannelRegistry) Len() int {
	return len(r.channels)
}

// LedgerState defines the interface for querying a ledger state snapshot and
// deriving new snapshots from it. Implementations are immutable values: the
// With* functions return a new snapshot and leave the receiver untouched.
type LedgerState interface {
	Accounts() AccountRegistry
	Channels() ChannelRegistry
	WithAccounts(AccountRegistry) LedgerState
	WithChannels(ChannelRegistry) LedgerState
}

// State is the concrete in-memory ledger state snapshot
type State struct {
	accounts AccountRegistry
	channels ChannelRegistry
}

func NewState(
	accounts AccountRegistry,
	channels ChannelRegistry,
) State {
	return State{
		accounts: accounts,
		channels: channels,
	}
}

func (s State) Accounts() AccountRegistry {
	return s.accounts
}

func (s State) Channels() ChannelRegistry {
	return s.channels
}

func (s State) WithAccounts(accounts AccountRegistry) LedgerState {
	s.accounts = accounts
	return s
}

func (s State) WithChannels(channels ChannelRegistry) LedgerState {
	s.channels = channels
	return s
}
