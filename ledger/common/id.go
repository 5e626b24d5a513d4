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

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/gochannel/cbor"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

type EntityKind uint8

const (
	EntityKindAccount EntityKind = 1
	EntityKindChannel EntityKind = 2
)

func (k EntityKind) String() string {
	switch k {
	case EntityKindAccount:
		return "account"
	case EntityKindChannel:
		return "channel"
	}
	return fmt.Sprintf("unknown (%d)", uint8(k))
}

// Bech32Prefix returns the human-readable part used when rendering an
// identifier of this kind
func (k EntityKind) Bech32Prefix() string {
	switch k {
	case EntityKindAccount:
		return "acct"
	case EntityKindChannel:
		return "chan"
	}
	return ""
}

const EntityRefSize = 32

// EntityRef is the raw reference portion of an entity identifier
type EntityRef [EntityRefSize]byte

func NewEntityRef(data []byte) EntityRef {
	r := EntityRef{}
	copy(r[:], data)
	return r
}

// EntityRefHash generates an entity reference from the provided seed data
func EntityRefHash(data []byte) EntityRef {
	return EntityRef(blake2b.Sum256(data))
}

func (r EntityRef) String() string {
	return hex.EncodeToString(r[:])
}

func (r EntityRef) Bytes() []byte {
	return r[:]
}

// EntityId is an opaque identifier tagged with the kind of entity it refers
// to, so a channel reference can never be confused with an account reference
type EntityId struct {
	kind EntityKind
	ref  EntityRef
}

func NewAccountId(ref EntityRef) EntityId {
	return EntityId{kind: EntityKindAccount, ref: ref}
}

func NewChannelId(ref EntityRef) EntityId {
	return EntityId{kind: EntityKindChannel, ref: ref}
}

// NewEntityIdFromBytes parses the tagged byte form of an identifier: one kind
// byte followed by the raw reference
func NewEntityIdFromBytes(data []byte) (EntityId, error) {
	if len(data) != EntityRefSize+1 {
		return EntityId{}, fmt.Errorf(
			"invalid entity id length: %d",
			len(data),
		)
	}
	kind := EntityKind(data[0])
	switch kind {
	case EntityKindAccount, EntityKindChannel:
	default:
		return EntityId{}, UnknownEntityKindError{Kind: data[0]}
	}
	return EntityId{
		kind: kind,
		ref:  NewEntityRef(data[1:]),
	}, nil
}

// NewEntityIdFromBech32 parses the human-readable form of an identifier,
// determining the entity kind from the bech32 prefix
func NewEntityIdFromBech32(addr string) (EntityId, error) {
	prefix, data, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return EntityId{}, err
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return EntityId{}, err
	}
	var kind EntityKind
	switch prefix {
	case EntityKindAccount.Bech32Prefix():
		kind = EntityKindAccount
	case EntityKindChannel.Bech32Prefix():
		kind = EntityKindChannel
	default:
		return EntityId{}, UnknownBech32PrefixError{Prefix: prefix}
	}
	if len(decoded) != EntityRefSize {
		return EntityId{}, fmt.Errorf(
			"invalid entity id length: %d",
			len(decoded),
		)
	}
	return EntityId{
		kind: kind,
		ref:  NewEntityRef(decoded),
	}, nil
}

func (id EntityId) Kind() EntityKind {
	return id.kind
}

func (id EntityId) Ref() EntityRef {
	return id.ref
}

// AccountRef returns the raw reference, failing if the identifier is not
// account-kind
func (id EntityId) AccountRef() (EntityRef, error) {
	if id.kind != EntityKindAccount {
		return EntityRef{}, WrongEntityKindError{
			Expected: EntityKindAccount,
			Actual:   id.kind,
		}
	}
	return id.ref, nil
}

// ChannelRef returns the raw reference, failing if the identifier is not
// channel-kind
func (id EntityId) ChannelRef() (EntityRef, error) {
	if id.kind != EntityKindChannel {
		return EntityRef{}, WrongEntityKindError{
			Expected: EntityKindChannel,
			Actual:   id.kind,
		}
	}
	return id.ref, nil
}

// Bytes returns the tagged byte form of the identifier: one kind byte
// followed by the raw reference
func (id EntityId) Bytes() []byte {
	ret := make([]byte, 0, EntityRefSize+1)
	ret = append(ret, byte(id.kind))
	ret = append(ret, id.ref[:]...)
	return ret
}

// String returns the bech32-encoded version of the identifier
func (id EntityId) String() string {
	convData, err := bech32.ConvertBits(id.ref[:], 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(id.kind.Bech32Prefix(), convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

func (id EntityId) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id EntityId) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(id.Bytes())
}

func (id *EntityId) UnmarshalCBOR(data []byte) error {
	var tmpData []byte
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	tmpId, err := NewEntityIdFromBytes(tmpData)
	if err != nil {
		return err
	}
	*id = tmpId
	return nil
}
