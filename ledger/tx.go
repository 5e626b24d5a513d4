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

// Package ledger dispatches between the ledger transaction kinds. Each kind
// lives in its own package and implements the common.Transaction contract;
// callers select a kind by its type tag.
package ledger

import (
	"fmt"

	"github.com/blinklabs-io/gochannel/ledger/closemutual"
	"github.com/blinklabs-io/gochannel/ledger/common"
)

const (
	TxTypeCloseMutual = closemutual.TxTypeCloseMutual
)

// Compatibility aliases
type (
	Transaction = common.Transaction
	LedgerState = common.LedgerState
	EntityId    = common.EntityId
)

func NewTransactionFromCbor(txType uint, data []byte) (Transaction, error) {
	switch txType {
	case TxTypeCloseMutual:
		return closemutual.NewCloseMutualTxFromCbor(data)
	}
	return nil, fmt.Errorf("unknown transaction type: %d", txType)
}
