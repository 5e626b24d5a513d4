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

// Package closemutual implements the cooperative close of a two-party
// payment channel as a ledger transaction kind: both parties agree on a
// final split of the channel's pooled balance, the fee is funded from the
// pool, and the channel record is removed from the ledger.
package closemutual

import (
	"fmt"

	"github.com/blinklabs-io/gochannel/cbor"
	"github.com/blinklabs-io/gochannel/ledger/common"
)

const (
	TxTypeCloseMutual = 53
	TxNameCloseMutual = "channel_close_mutual_tx"

	CloseMutualTxVersion = 1
)

// CloseMutualTx is the mutual-close transaction record. It is constructed
// once and never mutated; applying it produces new ledger state, not a new
// record. The CBOR field order is part of the wire contract.
type CloseMutualTx struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Version           uint64
	TxChannelId       common.EntityId
	TxInitiatorAmount uint64
	TxResponderAmount uint64
	Ttl               uint64
	TxFee             uint64
	TxNonce           uint64
}

// CloseMutualTxParams holds the named fields a mutual-close transaction is
// constructed from. Ttl may be left zero for no TTL constraint.
type CloseMutualTxParams struct {
	ChannelId       common.EntityId
	InitiatorAmount uint64
	ResponderAmount uint64
	Ttl             uint64
	Fee             uint64
	Nonce           uint64
}

// NewCloseMutualTx builds a mutual-close transaction from the provided
// params. The channel id must be tagged as channel-kind; no cross-field
// validation happens here, since that requires ledger state and is the job
// of Check
func NewCloseMutualTx(params CloseMutualTxParams) (*CloseMutualTx, error) {
	if kind := params.ChannelId.Kind(); kind != common.EntityKindChannel {
		return nil, InvalidChannelIdError{Kind: kind}
	}
	return &CloseMutualTx{
		Version:           CloseMutualTxVersion,
		TxChannelId:       params.ChannelId,
		TxInitiatorAmount: params.InitiatorAmount,
		TxResponderAmount: params.ResponderAmount,
		Ttl:               params.Ttl,
		TxFee:             params.Fee,
		TxNonce:           params.Nonce,
	}, nil
}

func NewCloseMutualTxFromCbor(data []byte) (*CloseMutualTx, error) {
	var closeMutualTx CloseMutualTx
	if _, err := cbor.Decode(data, &closeMutualTx); err != nil {
		return nil, fmt.Errorf("mutual close transaction decode error: %w", err)
	}
	return &closeMutualTx, nil
}

func (t *CloseMutualTx) UnmarshalCBOR(cborData []byte) error {
	version, err := cbor.DecodeIdFromList(cborData)
	if err != nil {
		return err
	}
	if version != CloseMutualTxVersion {
		return UnsupportedVersionError{Version: uint64(version)}
	}
	if err := t.UnmarshalCbor(cborData, t); err != nil {
		return err
	}
	if kind := t.TxChannelId.Kind(); kind != common.EntityKindChannel {
		return InvalidChannelIdError{Kind: kind}
	}
	return nil
}

func (*CloseMutualTx) Type() uint {
	return TxTypeCloseMutual
}

func (t *CloseMutualTx) ChannelId() common.EntityId {
	return t.TxChannelId
}

func (t *CloseMutualTx) InitiatorAmount() uint64 {
	return t.TxInitiatorAmount
}

func (t *CloseMutualTx) ResponderAmount() uint64 {
	return t.TxResponderAmount
}

func (t *CloseMutualTx) TTL() uint64 {
	return t.Ttl
}

func (t *CloseMutualTx) Fee() uint64 {
	return t.TxFee
}

func (t *CloseMutualTx) Nonce() uint64 {
	return t.TxNonce
}

// Origin returns the identity that pays for the transaction: the channel's
// initiator. Returns false when the channel no longer resolves against the
// provided state.
func (t *CloseMutualTx) Origin(ls common.LedgerState) (common.EntityId, bool) {
	ch, ok := ls.Channels().Lookup(t.TxChannelId)
	if !ok {
		return common.EntityId{}, false
	}
	return ch.Initiator(), true
}

// Signers returns the identities whose signatures authorize the close:
// the channel's initiator first, then the responder. Callers rely on this
// order for signature-slot mapping.
func (t *CloseMutualTx) Signers(
	ls common.LedgerState,
) ([]common.EntityId, error) {
	ch, ok := ls.Channels().Lookup(t.TxChannelId)
	if !ok {
		return nil, common.ChannelNotFoundError{Id: t.TxChannelId}
	}
	return []common.EntityId{ch.Initiator(), ch.Responder()}, nil
}

// Cbor returns the wire encoding of the transaction. A transaction decoded
// from the wire returns its original bytes; a constructed transaction is
// encoded deterministically.
func (t *CloseMutualTx) Cbor() []byte {
	if cborData := t.DecodeStoreCbor.Cbor(); cborData != nil {
		return cborData[:]
	}
	cborData, err := cbor.Encode(t)
	if err != nil {
		panic("CBOR encoding that should never fail has failed: " + err.Error())
	}
	return cborData
}

// ForClient returns a display mapping of the transaction fields, with the
// channel id rendered in its human-readable form
func (t *CloseMutualTx) ForClient() map[string]any {
	return map[string]any{
		"type":             TxNameCloseMutual,
		"version":          t.Version,
		"channel_id":       t.TxChannelId.String(),
		"initiator_amount": t.TxInitiatorAmount,
		"responder_amount": t.TxResponderAmount,
		"ttl":              t.Ttl,
		"fee":              t.TxFee,
		"nonce":            t.TxNonce,
	}
}
