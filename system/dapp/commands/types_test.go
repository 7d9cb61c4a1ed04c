// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"github.com/dontclickthat/escrow/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoins(t *testing.T) {
	v, err := ParseCoins("1.5")
	require.NoError(t, err)
	assert.Equal(t, int64(150000000), v)

	v, err = ParseCoins("0.00000001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = ParseCoins("0.000000001")
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
	_, err = ParseCoins("0")
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
	_, err = ParseCoins("-1")
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
	_, err = ParseCoins("abc")
	assert.Error(t, err)
}

func TestFormatCoins(t *testing.T) {
	assert.Equal(t, "1.5", FormatCoins(150000000))
	assert.Equal(t, "0.00000001", FormatCoins(1))
	assert.Equal(t, "0", FormatCoins(0))
	assert.Equal(t, "100", FormatCoins(100*types.Coin))
}

func TestDecodeLog(t *testing.T) {
	r := decodeLog(types.CoinsX, &types.ReceiptLog{Ty: types.TyLogErr, Log: []byte("ErrNoBalance")})
	assert.Equal(t, "LogErr", r.Name)
	assert.Equal(t, "ErrNoBalance", r.Raw)

	transfer := &types.ReceiptAccountTransfer{
		Prev:    &types.Account{Addr: "a", Balance: 1},
		Current: &types.Account{Addr: "a", Balance: 2},
	}
	r = decodeLog(types.CoinsX, &types.ReceiptLog{Ty: types.TyLogTransfer, Log: types.Encode(transfer)})
	assert.Equal(t, "LogTransfer", r.Name)
	assert.NotEmpty(t, r.Log)
	assert.Empty(t, r.Raw)

	r = decodeLog("none", &types.ReceiptLog{Ty: 999, Log: []byte{1, 2}})
	assert.Equal(t, "", r.Name)
	assert.Equal(t, "0x0102", r.Raw)
}
