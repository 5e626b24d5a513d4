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

// Transaction is the contract every ledger transaction kind implements. The
// outer dispatcher selects a kind by its type tag; each kind supplies its
// own validation, state transition, and serialization.
//
// Check validates the transaction against a ledger state snapshot without
// mutating it. Process applies the transaction to a snapshot and returns the
// derived snapshot; it must only be called on a transaction that Check has
// accepted against that snapshot. Signers returns the identities whose
// signatures authorize the transaction, in deterministic order.
type Transaction interface {
	Type() uint
	Fee() uint64
	TTL() uint64
	Nonce() uint64
	Check(ls LedgerState, protocolVersion uint) error
	Process(ls LedgerState) (LedgerState, error)
	Signers(ls LedgerState) ([]EntityId, error)
	Origin(ls LedgerState) (EntityId, bool)
	Cbor() []byte
	ForClient() map[string]any
}
