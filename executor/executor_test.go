// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"context"
	"testing"

	"github.com/dontclickthat/escrow/common/address"
	"github.com/dontclickthat/escrow/common/crypto"
	"github.com/dontclickthat/escrow/common/crypto/secp256k1"
	"github.com/dontclickthat/escrow/common/merkle"
	_ "github.com/dontclickthat/escrow/system/dapp/coins"
	cty "github.com/dontclickthat/escrow/system/dapp/coins/types"
	"github.com/dontclickthat/escrow/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genKey(t *testing.T) (crypto.PrivKey, string) {
	c, err := crypto.New(secp256k1.Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return priv, address.PubKeyToAddr(priv.PubKey().Bytes())
}

func transferTx(t *testing.T, priv crypto.PrivKey, to string, amount int64) *types.Transaction {
	tx, err := cty.CreateTransferTx(to, amount, "")
	require.NoError(t, err)
	tx.Sign(secp256k1.ID, priv)
	return tx
}

func balanceOf(t *testing.T, exec *Executor, addr string) int64 {
	reply, err := exec.GetBalance(&types.ReqBalance{Addresses: []string{addr}})
	require.NoError(t, err)
	require.Len(t, reply.Accounts, 1)
	return reply.Accounts[0].Balance
}

func newTestExecutor(t *testing.T, genesis ...*types.GenesisAccount) *Executor {
	cfg := types.DefaultConfig()
	cfg.Genesis = genesis
	exec, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(exec.Close)
	return exec
}

func TestGenesis(t *testing.T) {
	_, addr := genKey(t)
	exec := newTestExecutor(t, &types.GenesisAccount{Addr: addr, Amount: 1000})
	assert.Equal(t, int64(0), exec.Height())
	assert.Equal(t, int64(1000), balanceOf(t, exec, addr))
	assert.Contains(t, exec.Drivers(), types.CoinsX)

	receipt, err := exec.Genesis(addr, 500)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int64(1), exec.Height())
	assert.Equal(t, int64(1500), balanceOf(t, exec, addr))

	_, err = exec.Genesis(addr, 0)
	assert.Equal(t, types.ErrAmount, err)
	assert.Equal(t, int64(1), exec.Height())
}

func TestGenesisNotAllow(t *testing.T) {
	_, addr := genKey(t)
	cfg := types.DefaultConfig()
	cfg.Title = "test"
	exec, err := New(cfg)
	require.NoError(t, err)
	defer exec.Close()
	_, err = exec.Genesis(addr, 100)
	assert.Equal(t, types.ErrGenesisNotAllow, err)
}

func TestExecTransfer(t *testing.T) {
	priv, from := genKey(t)
	_, to := genKey(t)
	exec := newTestExecutor(t, &types.GenesisAccount{Addr: from, Amount: 1000})

	receipt, err := exec.ExecTx(context.Background(), transferTx(t, priv, to, 300))
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int64(1), exec.Height())
	assert.Equal(t, int64(700), balanceOf(t, exec, from))
	assert.Equal(t, int64(300), balanceOf(t, exec, to))

	//余额不足, 回滚, 但是区块仍然写入
	receipt, err = exec.ExecTx(context.Background(), transferTx(t, priv, to, 701))
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int32(types.ExecErr), receipt.Ty)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogErr), receipt.Logs[0].Ty)
	assert.Equal(t, int64(2), exec.Height())
	assert.Equal(t, int64(700), balanceOf(t, exec, from))
	assert.Equal(t, int64(300), balanceOf(t, exec, to))
}

func TestExecBadSign(t *testing.T) {
	priv, from := genKey(t)
	_, to := genKey(t)
	exec := newTestExecutor(t, &types.GenesisAccount{Addr: from, Amount: 1000})

	tx := transferTx(t, priv, to, 300)
	tx.Nonce++
	receipt, err := exec.ExecTx(context.Background(), tx)
	assert.Equal(t, types.ErrSign, err)
	assert.Equal(t, int32(types.ExecErr), receipt.Ty)
	assert.Equal(t, int64(1000), balanceOf(t, exec, from))

	tx = transferTx(t, priv, to, 300)
	tx.Signature = nil
	_, err = exec.ExecTx(context.Background(), tx)
	assert.Equal(t, types.ErrSign, err)
}

func TestExecTxExpire(t *testing.T) {
	priv, from := genKey(t)
	_, to := genKey(t)
	exec := newTestExecutor(t, &types.GenesisAccount{Addr: from, Amount: 1000})

	tx, err := cty.CreateTransferTx(to, 100, "")
	require.NoError(t, err)
	tx.Expire = 1
	tx.Sign(secp256k1.ID, priv)
	_, err = exec.ExecTx(context.Background(), tx)
	assert.Equal(t, types.ErrTxExpire, err)
	assert.Equal(t, int64(0), balanceOf(t, exec, to))
}

func TestExecUnknownDriver(t *testing.T) {
	priv, _ := genKey(t)
	exec := newTestExecutor(t)

	tx, err := types.CreateFormatTx("none", []byte("payload"))
	require.NoError(t, err)
	tx.Sign(secp256k1.ID, priv)
	receipt, err := exec.ExecTx(context.Background(), tx)
	assert.Equal(t, types.ErrUnRegistedDriver, err)
	assert.Equal(t, int32(types.ExecErr), receipt.Ty)

	tx = transferTx(t, priv, "", 1)
	tx.To = address.ExecAddress("none")
	tx.Sign(secp256k1.ID, priv)
	_, err = exec.ExecTx(context.Background(), tx)
	assert.Equal(t, types.ErrToAddrNotSameToExecAddr, err)
}

func TestExecBlock(t *testing.T) {
	priv, from := genKey(t)
	_, to := genKey(t)
	exec := newTestExecutor(t, &types.GenesisAccount{Addr: from, Amount: 1000})

	txs := []*types.Transaction{
		transferTx(t, priv, to, 400),
		transferTx(t, priv, to, 700),
		transferTx(t, priv, to, 500),
	}
	receipts, err := exec.ExecBlock(context.Background(), txs)
	require.NoError(t, err)
	require.Len(t, receipts, 3)
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.Equal(t, int32(types.ExecErr), receipts[1].Ty)
	assert.Equal(t, int32(types.ExecOk), receipts[2].Ty)
	assert.Equal(t, int64(1), exec.Height())
	assert.Equal(t, int64(100), balanceOf(t, exec, from))
	assert.Equal(t, int64(900), balanceOf(t, exec, to))
}

func TestExecTxDup(t *testing.T) {
	priv, from := genKey(t)
	_, to := genKey(t)
	exec := newTestExecutor(t, &types.GenesisAccount{Addr: from, Amount: 1000})

	tx := transferTx(t, priv, to, 300)
	_, err := exec.ExecTx(context.Background(), tx)
	require.NoError(t, err)
	receipt, err := exec.ExecTx(context.Background(), tx)
	assert.Equal(t, types.ErrTxDup, err)
	assert.Equal(t, int32(types.ExecErr), receipt.Ty)
	assert.Equal(t, int64(2), exec.Height())
	assert.Equal(t, int64(700), balanceOf(t, exec, from))
	assert.Equal(t, int64(300), balanceOf(t, exec, to))

	//hash 不包含签名, 重新签名也是同一笔交易
	tx.Sign(secp256k1.ID, priv)
	_, err = exec.ExecTx(context.Background(), tx)
	assert.Equal(t, types.ErrTxDup, err)

	//执行失败的交易也已经使用
	fail := transferTx(t, priv, to, 5000)
	_, err = exec.ExecTx(context.Background(), fail)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = exec.Genesis(from, 5000)
	require.NoError(t, err)
	_, err = exec.ExecTx(context.Background(), fail)
	assert.Equal(t, types.ErrTxDup, err)
	assert.Equal(t, int64(5700), balanceOf(t, exec, from))

	//签名错误的交易没有记录
	bad := transferTx(t, priv, to, 100)
	sig := bad.Signature
	bad.Signature = nil
	_, err = exec.ExecTx(context.Background(), bad)
	assert.Equal(t, types.ErrSign, err)
	bad.Signature = sig
	_, err = exec.ExecTx(context.Background(), bad)
	require.NoError(t, err)
	assert.Equal(t, int64(400), balanceOf(t, exec, to))
}

func TestExecBlockDupTx(t *testing.T) {
	priv, from := genKey(t)
	_, to := genKey(t)
	exec := newTestExecutor(t, &types.GenesisAccount{Addr: from, Amount: 1000})

	tx := transferTx(t, priv, to, 300)
	receipts, err := exec.ExecBlock(context.Background(), []*types.Transaction{tx, tx})
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.Equal(t, int32(types.ExecErr), receipts[1].Ty)
	assert.Equal(t, int64(700), balanceOf(t, exec, from))
	assert.Equal(t, int64(300), balanceOf(t, exec, to))
}

func TestExecBlockCanceled(t *testing.T) {
	priv, from := genKey(t)
	_, to := genKey(t)
	exec := newTestExecutor(t, &types.GenesisAccount{Addr: from, Amount: 1000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tx := transferTx(t, priv, to, 400)
	receipts, err := exec.ExecBlock(ctx, []*types.Transaction{tx})
	assert.Equal(t, context.Canceled, err)
	assert.Nil(t, receipts)
	assert.Equal(t, int64(0), exec.Height())
	assert.Equal(t, int64(1000), balanceOf(t, exec, from))

	//取消之后可以继续执行, 取消的区块没有记录交易
	_, err = exec.ExecTx(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), exec.Height())
	assert.Equal(t, int64(400), balanceOf(t, exec, to))
}

func TestExecTooManyTxs(t *testing.T) {
	exec := newTestExecutor(t)
	_, err := exec.ExecBlock(context.Background(), make([]*types.Transaction, types.MaxTxsPerBlock+1))
	assert.Equal(t, types.ErrTxCountTooBig, err)
}

func TestReopen(t *testing.T) {
	priv, from := genKey(t)
	_, to := genKey(t)
	cfg := types.DefaultConfig()
	cfg.Store.Driver = "leveldb"
	cfg.Store.DbPath = t.TempDir()
	cfg.Genesis = []*types.GenesisAccount{{Addr: from, Amount: 1000}}

	exec, err := New(cfg)
	require.NoError(t, err)
	tx := transferTx(t, priv, to, 300)
	_, err = exec.ExecTx(context.Background(), tx)
	require.NoError(t, err)
	exec.Close()

	_, err = exec.ExecTx(context.Background(), transferTx(t, priv, to, 300))
	assert.Equal(t, types.ErrExecutorClosed, err)
	_, err = exec.GetBalance(&types.ReqBalance{Addresses: []string{from}})
	assert.Equal(t, types.ErrExecutorClosed, err)

	//创世只在空数据库上执行一次
	last := exec.LastHeader()
	exec, err = New(cfg)
	require.NoError(t, err)
	defer exec.Close()
	assert.Equal(t, int64(1), exec.Height())
	assert.Equal(t, last, exec.LastHeader())
	assert.Equal(t, int64(700), balanceOf(t, exec, from))
	assert.Equal(t, int64(300), balanceOf(t, exec, to))

	//已经写入的交易重启之后仍然不能重复执行
	_, err = exec.ExecTx(context.Background(), tx)
	assert.Equal(t, types.ErrTxDup, err)
	assert.Equal(t, int64(700), balanceOf(t, exec, from))
}

func TestHeaders(t *testing.T) {
	priv, from := genKey(t)
	_, to := genKey(t)
	exec := newTestExecutor(t, &types.GenesisAccount{Addr: from, Amount: 1000})

	genesis := exec.LastHeader()
	require.NotNil(t, genesis)
	assert.Equal(t, int64(0), genesis.Height)
	assert.Nil(t, genesis.ParentHash)
	assert.Len(t, genesis.Hash, 32)

	txs := []*types.Transaction{transferTx(t, priv, to, 1), transferTx(t, priv, to, 2000)}
	_, err := exec.ExecBlock(context.Background(), txs)
	require.NoError(t, err)
	header, err := exec.GetHeader(1)
	require.NoError(t, err)
	assert.Equal(t, header, exec.LastHeader())
	assert.Equal(t, genesis.Hash, header.ParentHash)
	assert.Equal(t, merkle.CalcMerkleRoot(txs), header.TxHash)
	assert.Equal(t, int64(2), header.TxCount)

	old, err := exec.GetHeader(0)
	require.NoError(t, err)
	assert.Equal(t, genesis.Hash, old.Hash)
	_, err = exec.GetHeader(2)
	assert.Equal(t, types.ErrBlockNotFound, err)
}

func TestQuery(t *testing.T) {
	exec := newTestExecutor(t)
	_, err := exec.Query(types.CoinsX, "Nothing", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
	_, err = exec.Query("none", "Nothing", nil)
	assert.Equal(t, types.ErrUnRegistedDriver, err)

	_, err = exec.GetBalance(&types.ReqBalance{Addresses: []string{"bad"}})
	assert.Error(t, err)
}

func TestCheckKeys(t *testing.T) {
	execer := []byte("escrow")
	assert.True(t, isAllowExec([]byte("mavl-escrow-game-1"), execer))
	assert.True(t, isAllowExec([]byte("mavl-coins-bty-1"), execer))
	assert.False(t, isAllowExec([]byte("mavl-token-bty-1"), execer))
	assert.False(t, isAllowExec([]byte("LODB-escrow-1"), execer))
	assert.False(t, isAllowExec([]byte("mavl-escrow"), execer))

	kvs := []*types.KeyValue{{Key: []byte("mavl-escrow-a")}, {Key: []byte("mavl-coins-b")}}
	assert.NoError(t, checkKV([]string{"mavl-escrow-a"}, kvs))
	assert.Equal(t, types.ErrNotAllowMemSetKey, checkKV([]string{"mavl-escrow-c"}, kvs))

	tx := &types.Transaction{Execer: execer}
	assert.NoError(t, checkKeyAllow(tx, kvs))
	assert.Equal(t, types.ErrNotAllowKey, checkKeyAllow(tx, []*types.KeyValue{{Key: []byte("mavl-other-a")}}))

	local := []*types.KeyValue{{Key: types.CalcLocalKey(execer, []byte("status:1"))}}
	assert.NoError(t, checkLocalKey(execer, local))
	assert.Equal(t, types.ErrNotAllowKey, checkLocalKey([]byte("coins"), local))
}
