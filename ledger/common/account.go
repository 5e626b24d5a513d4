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

// Account is an on-ledger account with a balance and a replay-protection
// nonce. Accounts are immutable values; mutating operations return an
// updated copy.
type Account struct {
	id      EntityId
	balance uint64
	nonce   uint64
}

func NewAccount(id EntityId, balance uint64, nonce uint64) Account {
	return Account{
		id:      id,
		balance: balance,
		nonce:   nonce,
	}
}

func (a Account) Id() EntityId {
	return a.id
}

func (a Account) Balance() uint64 {
	return a.balance
}

func (a Account) Nonce() uint64 {
	return a.nonce
}

// Credit returns a copy of the account with the provided amount added to
// its balance
func (a Account) Credit(amount uint64) Account {
	a.balance += amount
	return a
}

// WithNonce returns a copy of the account with its nonce set to the
// provided value
func (a Account) WithNonce(nonce uint64) Account {
	a.nonce = nonce
	return a
}
