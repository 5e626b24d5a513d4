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
	"fmt"

	"github.com/blinklabs-io/gochannel/ledger/common"
)

// ChannelDoesNotExistError indicates a referenced channel absent from the
// channel registry
type ChannelDoesNotExistError struct {
	Id common.EntityId
}

func (e ChannelDoesNotExistError) Error() string {
	return "channel does not exist: " + e.Id.String()
}

// ChannelNotActiveError indicates a channel that exists but is not in the
// active lifecycle state
type ChannelNotActiveError struct {
	Status common.ChannelStatus
}

func (e ChannelNotActiveError) Error() string {
	return "channel not active: status " + e.Status.String()
}

// WrongAmountsError indicates close amounts that do not redistribute the
// channel's pooled balance exactly
type WrongAmountsError struct {
	InitiatorAmount uint64
	ResponderAmount uint64
	Fee             uint64
	ChannelAmount   uint64
}

func (e WrongAmountsError) Error() string {
	return fmt.Sprintf(
		"wrong amounts: initiator %d + responder %d + fee %d != channel total %d",
		e.InitiatorAmount,
		e.ResponderAmount,
		e.Fee,
		e.ChannelAmount,
	)
}

// UnsupportedVersionError indicates a serialized transaction with a version
// other than the supported one
type UnsupportedVersionError struct {
	Version uint64
}

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf(
		"unsupported mutual close transaction version: %d",
		e.Version,
	)
}

// InvalidChannelIdError indicates an identifier in the channel-id slot that
// is not tagged as channel-kind
type InvalidChannelIdError struct {
	Kind common.EntityKind
}

func (e InvalidChannelIdError) Error() string {
	return "invalid channel id: tagged as " + e.Kind.String()
}
