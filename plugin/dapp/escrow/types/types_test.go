// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/dontclickthat/escrow/common/address"
	"github.com/dontclickthat/escrow/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedAddress(t *testing.T) {
	addr, bump, err := GameAddress(1)
	require.NoError(t, err)
	assert.NoError(t, address.CheckAddress(addr))

	again, err := GameAddressWithBump(1, bump)
	require.NoError(t, err)
	assert.Equal(t, addr, again)

	vault, err := VaultAddress(1)
	require.NoError(t, err)
	assert.NotEqual(t, addr, vault)
	assert.NotEqual(t, ProgramAddress(), vault)

	other, _, err := GameAddress(2)
	require.NoError(t, err)
	assert.NotEqual(t, addr, other)
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "WaitingForPlayer", StatusName(StatusWaitingForPlayer))
	assert.Equal(t, "Finished", StatusName(StatusFinished))
	assert.Equal(t, "Unknown", StatusName(0))

	status, ok := StatusFromName("inprogress")
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, status)
	_, ok = StatusFromName("closed")
	assert.False(t, ok)
}

func TestLoadConfig(t *testing.T) {
	cfg := types.DefaultConfig()
	sub, err := LoadConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sub.MaxStakeAmount)
	assert.True(t, sub.IsReferee("anyone"))

	cfg.Exec.Sub[EscrowX] = map[string]interface{}{
		"maxStakeAmount": 1000,
		"referees":       []string{"a", "b"},
	}
	sub, err = LoadConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), sub.MaxStakeAmount)
	assert.True(t, sub.IsReferee("b"))
	assert.False(t, sub.IsReferee("c"))

	cfg.Exec.Sub[EscrowX] = map[string]interface{}{"maxStakeAmount": "many"}
	_, err = LoadConfig(cfg)
	assert.Equal(t, ErrInvalidConfig, errors.Cause(err))

	//referees 写成字符串时不能当作空列表
	cfg.Exec.Sub[EscrowX] = map[string]interface{}{"referees": "a"}
	sub, err = LoadConfig(cfg)
	assert.Equal(t, ErrInvalidConfig, errors.Cause(err))
	assert.Nil(t, sub)
}

func TestDecodeAction(t *testing.T) {
	tx, err := CreateEscrowTx(NewJoinAction(3, "", "vault"))
	require.NoError(t, err)
	assert.Equal(t, []byte(EscrowX), tx.Execer)
	assert.Equal(t, address.ExecAddress(EscrowX), tx.To)

	ety := types.LoadExecutorType(EscrowX)
	require.NotNil(t, ety)
	name, value, err := ety.DecodePayloadValue(tx)
	require.NoError(t, err)
	assert.Equal(t, "Join", name)
	join, ok := value.Interface().(*EscrowJoin)
	require.True(t, ok)
	assert.Equal(t, uint64(3), join.GameId)
	assert.Equal(t, "vault", join.Vault)

	rlog := &ReceiptEscrow{GameId: 3, Status: StatusInProgress}
	msg, logName, err := NewType().DecodeLog(TyLogEscrowJoin, types.Encode(rlog))
	require.NoError(t, err)
	assert.Equal(t, "LogEscrowJoin", logName)
	assert.Equal(t, uint64(3), msg.(*ReceiptEscrow).GameId)
}
