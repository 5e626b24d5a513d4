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

package closemutual_test

import (
	"testing"

	"github.com/blinklabs-io/gochannel/ledger/closemutual"
	"github.com/blinklabs-io/gochannel/ledger/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProtocolVersion = 1

var (
	testInitiatorId = common.NewAccountId(common.EntityRefHash([]byte("initiator")))
	testResponderId = common.NewAccountId(common.EntityRefHash([]byte("responder")))
	testChannelId   = common.NewChannelId(common.EntityRefHash([]byte("channel")))
)

// testState builds a snapshot with one channel (pooled balance 100) between
// two accounts. The initiator account nonce matches the test transactions.
func testState(channelStatus common.ChannelStatus) common.LedgerState {
	return common.NewState(
		common.NewAccountRegistry(
			common.NewAccount(testInitiatorId, 500, 7),
			common.NewAccount(testResponderId, 300, 3),
		),
		common.NewChannelRegistry(
			common.NewChannel(
				testChannelId,
				testInitiatorId,
				testResponderId,
				100,
				channelStatus,
			),
		),
	)
}

func testTx(
	t *testing.T,
	initiatorAmount uint64,
	responderAmount uint64,
	fee uint64,
	nonce uint64,
) *closemutual.CloseMutualTx {
	t.Helper()
	tx, err := closemutual.NewCloseMutualTx(closemutual.CloseMutualTxParams{
		ChannelId:       testChannelId,
		InitiatorAmount: initiatorAmount,
		ResponderAmount: responderAmount,
		Fee:             fee,
		Nonce:           nonce,
	})
	require.NoError(t, err)
	return tx
}

func TestCheckValid(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 7)
	assert.NoError(
		t,
		tx.Check(testState(common.ChannelStatusActive), testProtocolVersion),
	)
}

func TestCheckMissingChannel(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 7)
	emptyState := common.NewState(
		common.NewAccountRegistry(
			common.NewAccount(testInitiatorId, 500, 7),
		),
		common.NewChannelRegistry(),
	)
	err := tx.Check(emptyState, testProtocolVersion)
	assert.ErrorIs(
		t,
		err,
		closemutual.ChannelDoesNotExistError{Id: testChannelId},
	)
}

func TestCheckInactiveChannel(t *testing.T) {
	// Amounts are correct, the lifecycle state alone causes the rejection
	tx := testTx(t, 56, 40, 4, 7)
	err := tx.Check(testState(common.ChannelStatusClosing), testProtocolVersion)
	assert.ErrorIs(
		t,
		err,
		closemutual.ChannelNotActiveError{
			Status: common.ChannelStatusClosing,
		},
	)
}

func TestCheckWrongAmounts(t *testing.T) {
	// 40 + 40 + 5 = 85 != 100
	tx := testTx(t, 40, 40, 5, 7)
	err := tx.Check(testState(common.ChannelStatusActive), testProtocolVersion)
	assert.ErrorIs(
		t,
		err,
		closemutual.WrongAmountsError{
			InitiatorAmount: 40,
			ResponderAmount: 40,
			Fee:             5,
			ChannelAmount:   100,
		},
	)
}

func TestCheckAmountsOverflow(t *testing.T) {
	// The sum wraps around; this must never pass as a match
	tx := testTx(t, ^uint64(0), 99, 2, 7)
	err := tx.Check(testState(common.ChannelStatusActive), testProtocolVersion)
	var wrongAmounts closemutual.WrongAmountsError
	assert.ErrorAs(t, err, &wrongAmounts)
}

func TestCheckWrongNonce(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 8)
	err := tx.Check(testState(common.ChannelStatusActive), testProtocolVersion)
	assert.ErrorIs(
		t,
		err,
		common.WrongNonceError{Provided: 8, Expected: 7},
	)
}

func TestCheckMissingInitiatorAccount(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 7)
	noAccountState := common.NewState(
		common.NewAccountRegistry(
			common.NewAccount(testResponderId, 300, 3),
		),
		testState(common.ChannelStatusActive).Channels(),
	)
	err := tx.Check(noAccountState, testProtocolVersion)
	assert.ErrorIs(
		t,
		err,
		common.AccountNotFoundError{Id: testInitiatorId},
	)
}

func TestCheckZeroBalanceInitiator(t *testing.T) {
	// The fee comes out of the channel pool, so a broke initiator account
	// is still allowed to close
	tx := testTx(t, 56, 40, 4, 7)
	brokeState := common.NewState(
		common.NewAccountRegistry(
			common.NewAccount(testInitiatorId, 0, 7),
			common.NewAccount(testResponderId, 300, 3),
		),
		testState(common.ChannelStatusActive).Channels(),
	)
	assert.NoError(t, tx.Check(brokeState, testProtocolVersion))
}

func TestCheckRuleOrder(t *testing.T) {
	// A missing channel wins over every other failure, even when the
	// amounts are also wrong
	tx := testTx(t, 1, 2, 3, 99)
	emptyState := common.NewState(
		common.NewAccountRegistry(),
		common.NewChannelRegistry(),
	)
	err := tx.Check(emptyState, testProtocolVersion)
	assert.ErrorIs(
		t,
		err,
		closemutual.ChannelDoesNotExistError{Id: testChannelId},
	)
}

func TestProcess(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 7)
	oldState := testState(common.ChannelStatusActive)
	require.NoError(t, tx.Check(oldState, testProtocolVersion))
	newState, err := tx.Process(oldState)
	require.NoError(t, err)
	// Both parties are credited their final balances
	initiator, err := newState.Accounts().Get(testInitiatorId)
	require.NoError(t, err)
	assert.Equal(t, uint64(556), initiator.Balance())
	responder, err := newState.Accounts().Get(testResponderId)
	require.NoError(t, err)
	assert.Equal(t, uint64(340), responder.Balance())
	// The initiator nonce is set to the transaction nonce, the responder
	// nonce is untouched
	assert.Equal(t, uint64(7), initiator.Nonce())
	assert.Equal(t, uint64(3), responder.Nonce())
	// The channel entity is gone
	_, ok := newState.Channels().Lookup(testChannelId)
	assert.False(t, ok)
	// The input snapshot is untouched
	_, ok = oldState.Channels().Lookup(testChannelId)
	assert.True(t, ok)
	oldInitiator, err := oldState.Accounts().Get(testInitiatorId)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), oldInitiator.Balance())
}

func TestProcessConservation(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 7)
	oldState := testState(common.ChannelStatusActive)
	newState, err := tx.Process(oldState)
	require.NoError(t, err)
	sumBalances := func(ls common.LedgerState) uint64 {
		var total uint64
		for _, id := range []common.EntityId{testInitiatorId, testResponderId} {
			acct, err := ls.Accounts().Get(id)
			require.NoError(t, err)
			total += acct.Balance()
		}
		return total
	}
	oldTotal := sumBalances(oldState) + 100 // account balances + channel pool
	newTotal := sumBalances(newState)
	// Total ledger value decreases by exactly the fee
	assert.Equal(t, oldTotal-tx.Fee(), newTotal)
}

func TestProcessMissingChannel(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 7)
	emptyState := common.NewState(
		common.NewAccountRegistry(),
		common.NewChannelRegistry(),
	)
	_, err := tx.Process(emptyState)
	assert.ErrorIs(t, err, common.ChannelNotFoundError{Id: testChannelId})
}

func TestSigners(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 7)
	signers, err := tx.Signers(testState(common.ChannelStatusActive))
	require.NoError(t, err)
	// Initiator first, responder second
	assert.Equal(
		t,
		[]common.EntityId{testInitiatorId, testResponderId},
		signers,
	)
}

func TestSignersMissingChannel(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 7)
	emptyState := common.NewState(
		common.NewAccountRegistry(),
		common.NewChannelRegistry(),
	)
	_, err := tx.Signers(emptyState)
	assert.ErrorIs(t, err, common.ChannelNotFoundError{Id: testChannelId})
}

func TestOrigin(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 7)
	origin, ok := tx.Origin(testState(common.ChannelStatusActive))
	assert.True(t, ok)
	assert.Equal(t, testInitiatorId, origin)
	emptyState := common.NewState(
		common.NewAccountRegistry(),
		common.NewChannelRegistry(),
	)
	_, ok = tx.Origin(emptyState)
	assert.False(t, ok)
}

// Full flow for the reference scenario: channel total 100, fee 4,
// initiator 56, responder 40
func TestCloseMutualScenario(t *testing.T) {
	tx := testTx(t, 56, 40, 4, 7)
	oldState := testState(common.ChannelStatusActive)
	require.NoError(t, tx.Check(oldState, testProtocolVersion))
	newState, err := tx.Process(oldState)
	require.NoError(t, err)
	initiator, err := newState.Accounts().Get(testInitiatorId)
	require.NoError(t, err)
	responder, err := newState.Accounts().Get(testResponderId)
	require.NoError(t, err)
	assert.Equal(t, uint64(500+56), initiator.Balance())
	assert.Equal(t, uint64(300+40), responder.Balance())
	assert.Equal(t, tx.Nonce(), initiator.Nonce())
	_, ok := newState.Channels().Lookup(testChannelId)
	assert.False(t, ok)
}
