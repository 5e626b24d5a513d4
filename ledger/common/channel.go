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

type ChannelStatus uint8

const (
	ChannelStatusActive  ChannelStatus = 1
	ChannelStatusClosing ChannelStatus = 2
	ChannelStatusClosed  ChannelStatus = 3
)

func (s ChannelStatus) String() string {
	switch s {
	case ChannelStatusActive:
		return "active"
	case ChannelStatusClosing:
		return "closing"
	case ChannelStatusClosed:
		return "closed"
	}
	return fmt.Sprintf("unknown (%d)", uint8(s))
}

// Channel is an on-ledger record of a two-party payment channel: the two
// party identities, the pooled balance, and the lifecycle status gating
// which operations are permitted
type Channel struct {
	id          EntityId
	initiator   EntityId
	responder   EntityId
	totalAmount uint64
	status      ChannelStatus
}

func NewChannel(
	id EntityId,
	initiator EntityId,
	responder EntityId,
	totalAmount uint64,
	status ChannelStatus,
) Channel {
	return Channel{
		id:          id,
		initiator:   initiator,
		responder:   responder,
		totalAmount: totalAmount,
		status:      status,
	}
}

func (c Channel) Id() EntityId {
	return c.id
}

func (c Channel) Initiator() EntityId {
	return c.initiator
}

func (c Channel) Responder() EntityId {
	return c.responder
}

func (c Channel) TotalAmount() uint64 {
	return c.totalAmount
}

func (c Channel) Status() ChannelStatus {
	return c.status
}

func (c Channel) IsActive() bool {
	return c.status == ChannelStatusActive
}
