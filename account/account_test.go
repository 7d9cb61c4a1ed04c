// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"errors"
	"testing"

	"github.com/dontclickthat/escrow/common/db"
	"github.com/dontclickthat/escrow/common/db/local"
	"github.com/dontclickthat/escrow/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr4 = "44ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
)

func GenerAccDb(t *testing.T) (*DB, *DB) {
	//构造账户数据库
	memdb, err := db.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	kvdb := local.NewLocalDB(memdb, false)
	accCoin := NewCoinsAccount(kvdb)
	accToken, err := NewAccountDB("token", "test", kvdb)
	require.NoError(t, err)
	return accCoin, accToken
}

func (acc *DB) GenerAccData() {
	// 加入账户
	account := &types.Account{
		Balance: 1000 * 1e8,
		Addr:    addr1,
	}
	acc.SaveAccount(account)

	account.Balance = 900 * 1e8
	account.Addr = addr2
	acc.SaveAccount(account)

	account.Balance = 800 * 1e8
	account.Addr = addr3
	acc.SaveAccount(account)

	account.Balance = 700 * 1e8
	account.Addr = addr4
	acc.SaveAccount(account)
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("to-ken", "test", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	_, err = NewAccountDB("token", "te-st", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	acc, err := NewAccountDB("token", "test", nil)
	require.NoError(t, err)
	assert.Equal(t, "mavl-token-test-"+addr1, string(acc.AccountKey(addr1)))
	assert.Equal(t, "test", acc.Symbol())
}

// brokenKV 底层读取总是失败
type brokenKV struct {
	db.KV
}

var errDiskRead = errors.New("disk read failed")

func (brokenKV) Get(key []byte) ([]byte, error) {
	return nil, errDiskRead
}

func TestLoadAccountReadError(t *testing.T) {
	accCoin, _ := GenerAccDb(t)
	acc := accCoin.LoadAccount(addr1)
	assert.Equal(t, addr1, acc.Addr)
	assert.Equal(t, int64(0), acc.Balance)

	broken := NewCoinsAccount(brokenKV{})
	assert.PanicsWithValue(t, errDiskRead, func() { broken.LoadAccount(addr1) })
	assert.Panics(t, func() { _, _ = broken.Transfer(addr1, addr2, 1) })
}

func TestCheckTransfer(t *testing.T) {
	accCoin, tokenCoin := GenerAccDb(t)
	accCoin.GenerAccData()
	tokenCoin.GenerAccData()

	require.NoError(t, accCoin.CheckTransfer(addr1, addr2, addr1, 10*1e8))
	require.NoError(t, tokenCoin.CheckTransfer(addr3, addr4, addr3, 10*1e8))
	assert.Equal(t, types.ErrAmount, accCoin.CheckTransfer(addr1, addr2, addr1, 0))
	assert.Equal(t, types.ErrAmount, accCoin.CheckTransfer(addr1, addr2, addr1, -1))
	assert.Equal(t, types.ErrSendSameToRecv, accCoin.CheckTransfer(addr1, addr1, addr1, 1))
	assert.Equal(t, types.ErrNotAuthorized, accCoin.CheckTransfer(addr1, addr2, addr2, 1))
	assert.Equal(t, types.ErrNoBalance, accCoin.CheckTransfer(addr1, addr2, addr1, 1001*1e8))
}

func TestTransfer(t *testing.T) {
	accCoin, tokenCoin := GenerAccDb(t)
	accCoin.GenerAccData()
	tokenCoin.GenerAccData()

	receipt, err := accCoin.Transfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)
	require.Equal(t, 2, len(receipt.KV))
	require.Equal(t, 2, len(receipt.Logs))
	assert.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)

	var log1 types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &log1))
	assert.Equal(t, int64(1000*1e8), log1.Prev.Balance)
	assert.Equal(t, int64(990*1e8), log1.Current.Balance)

	assert.Equal(t, int64(990*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(910*1e8), accCoin.LoadAccount(addr2).Balance)

	//不同的币种互不影响
	assert.Equal(t, int64(1000*1e8), tokenCoin.LoadAccount(addr1).Balance)

	_, err = accCoin.Transfer(addr1, addr2, 991*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(990*1e8), accCoin.LoadAccount(addr1).Balance)
}

func TestTransferFromOwner(t *testing.T) {
	accCoin, _ := GenerAccDb(t)
	accCoin.GenerAccData()

	vault := "1vaultvaultvaultvaultvaultvaultvau"
	receipt, err := accCoin.InitOwner(vault, addr3)
	require.NoError(t, err)
	require.Equal(t, 1, len(receipt.Logs))
	assert.Equal(t, int32(types.TyLogAccountOwner), receipt.Logs[0].Ty)
	assert.Equal(t, addr3, EffectiveOwner(accCoin.LoadAccount(vault)))

	//同一个所有者重复设置不报错, 不同所有者报错
	_, err = accCoin.InitOwner(vault, addr3)
	assert.NoError(t, err)
	_, err = accCoin.InitOwner(vault, addr4)
	assert.Equal(t, types.ErrAccountOwnerSet, err)
	_, err = accCoin.InitOwner(vault, "")
	assert.Equal(t, types.ErrInvalidParam, err)

	_, err = accCoin.Transfer(addr1, vault, 100*1e8)
	require.NoError(t, err)

	//vault 本身无法转出
	_, err = accCoin.Transfer(vault, addr1, 1)
	assert.Equal(t, types.ErrNotAuthorized, err)
	_, err = accCoin.TransferFrom(vault, addr2, addr1, 1)
	assert.Equal(t, types.ErrNotAuthorized, err)

	_, err = accCoin.TransferFrom(vault, addr2, addr3, 100*1e8)
	require.NoError(t, err)
	assert.Equal(t, int64(0), accCoin.LoadAccount(vault).Balance)
	assert.Equal(t, int64(1000*1e8), accCoin.LoadAccount(addr2).Balance)
	assert.Equal(t, addr3, accCoin.LoadAccount(vault).Owner)
}

func TestGenesisInit(t *testing.T) {
	accCoin, _ := GenerAccDb(t)
	receipt, err := accCoin.GenesisInit(addr1, 100*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	assert.Equal(t, int64(100*1e8), accCoin.LoadAccount(addr1).Balance)

	_, err = accCoin.GenesisInit(addr1, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = accCoin.GenesisInit(addr1, types.MaxCoin-1)
	assert.Equal(t, types.ErrAmount, err)

	accs := accCoin.LoadAccounts([]string{addr1, addr2})
	require.Equal(t, 2, len(accs))
	assert.Equal(t, int64(0), accs[1].Balance)
}
