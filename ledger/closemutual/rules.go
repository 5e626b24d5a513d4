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

package closemutual

import (
	"math/bits"

	"github.com/blinklabs-io/gochannel/ledger/common"
)

// Check validates the transaction against the provided ledger state
// snapshot. Rules run in order and the first failure wins: existence before
// lifecycle checks before financial checks, so later rules never
// dereference absent entities. The protocol version is part of the shared
// transaction contract and unused by this kind.
func (t *CloseMutualTx) Check(
	ls common.LedgerState,
	protocolVersion uint,
) error {
	return common.RunValidationRules(
		func() error { return ValidateChannelExists(t, ls) },
		func() error { return ValidateInitiatorAccount(t, ls) },
		func() error { return ValidateChannelActive(t, ls) },
		func() error { return ValidateAmounts(t, ls) },
	)
}

// ValidateChannelExists ensures the referenced channel is present in the
// channel registry
func ValidateChannelExists(tx *CloseMutualTx, ls common.LedgerState) error {
	if _, ok := ls.Channels().Lookup(tx.TxChannelId); !ok {
		return ChannelDoesNotExistError{Id: tx.TxChannelId}
	}
	return nil
}

// ValidateInitiatorAccount ensures the channel initiator's account exists
// and that its current nonce equals the transaction nonce. The affordability
// check is for a zero amount on purpose: the fee is funded from the
// channel's pooled balance, never from the initiator's own balance.
func ValidateInitiatorAccount(tx *CloseMutualTx, ls common.LedgerState) error {
	ch, ok := ls.Channels().Lookup(tx.TxChannelId)
	if !ok {
		return ChannelDoesNotExistError{Id: tx.TxChannelId}
	}
	return common.CheckAccount(ls, ch.Initiator(), tx.TxNonce, 0)
}

// ValidateChannelActive ensures the channel is in the active lifecycle state
func ValidateChannelActive(tx *CloseMutualTx, ls common.LedgerState) error {
	ch, ok := ls.Channels().Lookup(tx.TxChannelId)
	if !ok {
		return ChannelDoesNotExistError{Id: tx.TxChannelId}
	}
	if !ch.IsActive() {
		return ChannelNotActiveError{Status: ch.Status()}
	}
	return nil
}

// ValidateAmounts ensures the final balances plus the fee redistribute the
// channel's pooled balance exactly
func ValidateAmounts(tx *CloseMutualTx, ls common.LedgerState) error {
	ch, ok := ls.Channels().Lookup(tx.TxChannelId)
	if !ok {
		return ChannelDoesNotExistError{Id: tx.TxChannelId}
	}
	sum, carry := bits.Add64(tx.TxInitiatorAmount, tx.TxResponderAmount, 0)
	sum, carry2 := bits.Add64(sum, tx.TxFee, 0)
	if carry != 0 || carry2 != 0 || ch.TotalAmount() != sum {
		return WrongAmountsError{
			InitiatorAmount: tx.TxInitiatorAmount,
			ResponderAmount: tx.TxResponderAmount,
			Fee:             tx.TxFee,
			ChannelAmount:   ch.TotalAmount(),
		}
	}
	return nil
}

// Process applies the transaction to the provided ledger state snapshot and
// returns the derived snapshot: both parties are credited their final
// balances, the initiator's nonce is set to the transaction nonce, and the
// channel record is removed. The input snapshot is never mutated. Process
// assumes the transaction has been accepted by Check against this snapshot;
// the entity lookups are precondition assertions, not recoverable checks.
func (t *CloseMutualTx) Process(
	ls common.LedgerState,
) (common.LedgerState, error) {
	channels := ls.Channels()
	accounts := ls.Accounts()
	ch, err := channels.Get(t.TxChannelId)
	if err != nil {
		return nil, err
	}
	initiator, err := accounts.Get(ch.Initiator())
	if err != nil {
		return nil, err
	}
	accounts = accounts.Enter(
		initiator.Credit(t.TxInitiatorAmount).WithNonce(t.TxNonce),
	)
	responder, err := accounts.Get(ch.Responder())
	if err != nil {
		return nil, err
	}
	accounts = accounts.Enter(responder.Credit(t.TxResponderAmount))
	channels = channels.Delete(t.TxChannelId)
	return ls.WithAccounts(accounts).WithChannels(channels), nil
}
