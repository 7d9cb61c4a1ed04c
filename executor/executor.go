// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行环境: 签名检查, 按交易回滚的状态数据库, 本地索引以及查询
package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dontclickthat/escrow/account"
	"github.com/dontclickthat/escrow/common"
	"github.com/dontclickthat/escrow/common/merkle"
	dbm "github.com/dontclickthat/escrow/common/db"
	"github.com/dontclickthat/escrow/common/db/local"
	"github.com/dontclickthat/escrow/pluginmgr"
	drivers "github.com/dontclickthat/escrow/system/dapp"
	"github.com/dontclickthat/escrow/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

var heightKey = []byte("LODB-executor-height")

func calcHeaderKey(height int64) []byte {
	return []byte(fmt.Sprintf("LODB-executor-header-%012d", height))
}

// calcTxKey 已经执行的交易, value 为所在区块高度
func calcTxKey(hash []byte) []byte {
	return []byte("LODB-executor-tx-" + common.ToHex(hash))
}

// Executor 串行执行交易, 每个区块结束后一次性写入数据库
type Executor struct {
	mu        sync.Mutex
	cfg       *types.Config
	maindb    dbm.DB
	stateDB   *StateDB
	localDB   *local.DB
	height    int64
	blocktime int64
	header    *types.Header
	closed    bool
	stat      *statistics
}

// New 打开数据库, 注册插件, 全新的数据库会执行创世配置
func New(cfg *types.Config) (*Executor, error) {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	cfg.FillDefault()
	pluginmgr.InitExec()
	if err := drivers.CheckConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "check exec config")
	}
	maindb, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, err
	}
	exec := &Executor{
		cfg:     cfg,
		maindb:  maindb,
		stateDB: NewStateDB(maindb),
		localDB: local.NewLocalDB(maindb, false),
		stat:    newStatistics(),
	}
	height, err := exec.loadHeight()
	if err != nil {
		maindb.Close()
		return nil, err
	}
	if height < 0 {
		err = exec.genesis()
	} else {
		exec.header, err = exec.loadHeader(height)
	}
	if err != nil {
		maindb.Close()
		return nil, err
	}
	exec.height = exec.header.GetHeight()
	exec.blocktime = exec.header.BlockTime
	elog.Info("executor started", "store", cfg.Store.Driver, "height", exec.height, "drivers", drivers.DriverNames())
	return exec, nil
}

func (exec *Executor) loadHeight() (int64, error) {
	value, err := exec.maindb.Get(heightKey)
	if err == dbm.ErrNotFoundInDb {
		return -1, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "load height")
	}
	var h types.Int64
	if err := types.Decode(value, &h); err != nil {
		return 0, errors.Wrap(err, "decode height")
	}
	return h.Data, nil
}

func (exec *Executor) loadHeader(height int64) (*types.Header, error) {
	value, err := exec.maindb.Get(calcHeaderKey(height))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrBlockNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load header %d", height)
	}
	var header types.Header
	if err := types.Decode(value, &header); err != nil {
		return nil, errors.Wrapf(err, "decode header %d", height)
	}
	return &header, nil
}

// newHeader 当前高度的区块头, 以上一个区块的 hash 作为 ParentHash
func (exec *Executor) newHeader(txs []*types.Transaction) *types.Header {
	header := &types.Header{
		ParentHash: exec.header.GetHash(),
		TxHash:     merkle.CalcMerkleRoot(txs),
		Height:     exec.height,
		BlockTime:  exec.blocktime,
		TxCount:    int64(len(txs)),
	}
	header.Hash = common.Sha256(types.Encode(header))
	return header
}

// genesis 高度 0 的区块, 把配置中的创世账户写入 coins
func (exec *Executor) genesis() error {
	exec.height = 0
	exec.blocktime = time.Now().Unix()
	acc := exec.coinsAccount(exec.stateDB)
	for _, g := range exec.cfg.Genesis {
		if _, err := acc.GenesisInit(g.Addr, g.Amount); err != nil {
			exec.discard()
			return errors.Wrapf(err, "genesis %s", g.Addr)
		}
		elog.Info("genesis", "addr", g.Addr, "amount", g.Amount)
	}
	return exec.flush(exec.newHeader(nil))
}

func (exec *Executor) coinsAccount(db dbm.KV) *account.DB {
	acc, err := account.NewAccountDB(types.CoinsX, exec.cfg.Exec.Symbol, db)
	if err != nil {
		panic(err)
	}
	return acc
}

// Height 当前区块高度
func (exec *Executor) Height() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.height
}

// LastHeader 最新的区块头
func (exec *Executor) LastHeader() *types.Header {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.header
}

// GetHeader 指定高度的区块头
func (exec *Executor) GetHeader(height int64) (*types.Header, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.closed {
		return nil, types.ErrExecutorClosed
	}
	if height < 0 || height > exec.height {
		return nil, types.ErrBlockNotFound
	}
	return exec.loadHeader(height)
}

// Config 配置
func (exec *Executor) Config() *types.Config {
	return exec.cfg
}

// ExecBlock 把一组交易作为一个区块执行, 返回每笔交易的回执
// 单笔交易的失败不影响其他交易, 只有数据库错误或者 ctx 取消时返回 error, 这时整个区块都不会写入
func (exec *Executor) ExecBlock(ctx context.Context, txs []*types.Transaction) ([]*types.ReceiptData, error) {
	receipts, _, err := exec.execBlock(ctx, txs)
	return receipts, err
}

// ExecTx 单笔交易作为一个区块执行, 返回回执以及交易执行的错误
func (exec *Executor) ExecTx(ctx context.Context, tx *types.Transaction) (*types.ReceiptData, error) {
	receipts, errs, err := exec.execBlock(ctx, []*types.Transaction{tx})
	if err != nil {
		return nil, err
	}
	return receipts[0], errs[0]
}

func (exec *Executor) execBlock(ctx context.Context, txs []*types.Transaction) ([]*types.ReceiptData, []error, error) {
	if len(txs) > types.MaxTxsPerBlock {
		return nil, nil, types.ErrTxCountTooBig
	}
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.closed {
		return nil, nil, types.ErrExecutorClosed
	}
	begin := time.Now()
	exec.height++
	exec.blocktime = begin.Unix()
	receipts := make([]*types.ReceiptData, len(txs))
	errs := make([]error, len(txs))
	for i, tx := range txs {
		if err := ctx.Err(); err != nil {
			exec.discard()
			exec.height--
			return nil, nil, err
		}
		receipts[i], errs[i] = exec.execTx(tx, i)
	}
	header := exec.newHeader(txs)
	if err := exec.flush(header); err != nil {
		exec.height--
		return nil, nil, err
	}
	exec.stat.block(len(txs), time.Since(begin))
	elog.Debug("ExecBlock", "height", exec.height, "txs", len(txs), "hash", common.ToHex(header.Hash), "cost", time.Since(begin))
	return receipts, errs, nil
}

func (exec *Executor) loadDriver(tx *types.Transaction) (drivers.Driver, error) {
	driver, err := drivers.LoadDriver(string(tx.Execer))
	if err != nil {
		return nil, err
	}
	driver.SetConfig(exec.cfg)
	driver.SetStateDB(exec.stateDB)
	driver.SetLocalDB(exec.localDB)
	driver.SetEnv(exec.height, exec.blocktime)
	return driver, nil
}

func (exec *Executor) checkTx(tx *types.Transaction, hash []byte) error {
	if tx.Size() > types.MaxTxSize {
		return types.ErrTxMsgSizeTooBig
	}
	if tx.IsExpire(exec.blocktime) {
		return types.ErrTxExpire
	}
	if !tx.CheckSign() {
		return types.ErrSign
	}
	//同一个区块中以及已经写入的区块中都不能重复
	_, err := exec.localDB.Get(calcTxKey(hash))
	if err == nil {
		return types.ErrTxDup
	}
	if err != dbm.ErrNotFoundInDb {
		return errors.Wrap(err, "check tx dup")
	}
	return nil
}

// markTx 通过检查的交易不管执行成功与否都记录 hash, 和区块一起写入
func (exec *Executor) markTx(hash []byte) {
	err := exec.localDB.Set(calcTxKey(hash), types.Encode(&types.Int64{Data: exec.height}))
	if err != nil {
		panic(err)
	}
}

func errReceipt(err error) *types.ReceiptData {
	r := types.NewErrReceipt(err)
	return &types.ReceiptData{Ty: r.Ty, Logs: r.Logs}
}

// execTx 执行一笔交易, 失败时回滚这笔交易的所有状态修改
func (exec *Executor) execTx(tx *types.Transaction, index int) (*types.ReceiptData, error) {
	begin := time.Now()
	hash := tx.Hash()
	if err := exec.checkTx(tx, hash); err != nil {
		exec.stat.tx(string(tx.Execer), "", err, time.Since(begin))
		return errReceipt(err), err
	}
	exec.markTx(hash)
	driver, err := exec.loadDriver(tx)
	if err != nil {
		exec.stat.tx(string(tx.Execer), "", err, time.Since(begin))
		return errReceipt(err), err
	}
	action := driver.GetActionName(tx)
	if err := driver.CheckTx(tx, index); err != nil {
		exec.stat.tx(driver.GetName(), action, err, time.Since(begin))
		return errReceipt(err), err
	}
	exec.stateDB.Begin()
	receipt, err := exec.execTxOne(driver, tx, index)
	if err != nil {
		exec.stateDB.Rollback()
		elog.Error("exec tx error", "err", err, "exec", string(tx.Execer), "action", action, "height", exec.height, "index", index)
		exec.stat.tx(driver.GetName(), action, err, time.Since(begin))
		return errReceipt(err), err
	}
	if err := exec.stateDB.Commit(); err != nil {
		panic(err)
	}
	rdata := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	exec.execLocal(driver, tx, rdata, index)
	exec.stat.tx(driver.GetName(), action, nil, time.Since(begin))
	return rdata, nil
}

func (exec *Executor) execTxOne(driver drivers.Driver, tx *types.Transaction, index int) (*types.Receipt, error) {
	receipt, err := driver.Exec(tx, index)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	//需要检查两个东西:
	//1. statedb 中 Set的 key 必须是 在 receipt.GetKV() 这个集合中
	//2. receipt.GetKV() 中的 key, 必须符合权限控制要求
	if err := checkKV(exec.stateDB.GetSetKeys(), receipt.GetKV()); err != nil {
		return nil, err
	}
	if err := checkKeyAllow(tx, receipt.GetKV()); err != nil {
		return nil, err
	}
	return receipt, nil
}

// execLocal 写本地索引, 失败时只丢弃这笔交易的索引
func (exec *Executor) execLocal(driver drivers.Driver, tx *types.Transaction, rdata *types.ReceiptData, index int) {
	exec.localDB.Begin()
	set, err := driver.ExecLocal(tx, rdata, index)
	if err == nil {
		err = checkLocalKey(tx.Execer, set.GetKV())
	}
	if err != nil {
		elog.Error("execLocal", "exec", string(tx.Execer), "err", err)
		exec.localDB.Rollback()
		return
	}
	for _, kv := range set.GetKV() {
		if err := exec.localDB.Set(kv.Key, kv.Value); err != nil {
			panic(err)
		}
	}
	if err := exec.localDB.Commit(); err != nil {
		panic(err)
	}
}

// flush 区块的状态数据, 本地索引以及区块头一起写入
func (exec *Executor) flush(header *types.Header) error {
	if err := exec.localDB.Set(heightKey, types.Encode(&types.Int64{Data: header.Height})); err != nil {
		return err
	}
	if err := exec.localDB.Set(calcHeaderKey(header.Height), types.Encode(header)); err != nil {
		return err
	}
	batch := exec.maindb.NewBatch(true)
	exec.stateDB.WriteTo(batch)
	exec.localDB.WriteTo(batch)
	err := batch.Write()
	exec.discard()
	if err != nil {
		return errors.Wrapf(err, "write block %d", header.Height)
	}
	exec.header = header
	return nil
}

func (exec *Executor) discard() {
	exec.stateDB.Discard()
	exec.localDB.Discard()
}

// Query 调用执行器的 Query_<funcName>, 只读取已经写入数据库的数据
func (exec *Executor) Query(execer, funcName string, params types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.closed {
		return nil, types.ErrExecutorClosed
	}
	driver, err := drivers.LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	readonly := local.NewLocalDB(exec.maindb, true)
	driver.SetConfig(exec.cfg)
	driver.SetStateDB(readonly)
	driver.SetLocalDB(readonly)
	driver.SetEnv(exec.height, exec.blocktime)
	var data []byte
	if params != nil {
		data = types.Encode(params)
	}
	return driver.Query(funcName, data)
}

// GetBalance 查询 coins 账户余额
func (exec *Executor) GetBalance(req *types.ReqBalance) (*types.ReplyAccounts, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.closed {
		return nil, types.ErrExecutorClosed
	}
	symbol := req.GetSymbol()
	if symbol == "" {
		symbol = exec.cfg.Exec.Symbol
	}
	acc, err := account.NewAccountDB(types.CoinsX, symbol, local.NewLocalDB(exec.maindb, true))
	if err != nil {
		return nil, err
	}
	for _, addr := range req.GetAddresses() {
		if err := drivers.CheckAddress(addr); err != nil {
			return nil, errors.Wrapf(err, "address %s", addr)
		}
	}
	return &types.ReplyAccounts{Accounts: acc.LoadAccounts(req.GetAddresses())}, nil
}

// Genesis 本地开发链增发, 作为一个单独的区块写入
func (exec *Executor) Genesis(addr string, amount int64) (*types.ReceiptData, error) {
	if !exec.cfg.IsLocal() {
		return nil, types.ErrGenesisNotAllow
	}
	if err := drivers.CheckAddress(addr); err != nil {
		return nil, err
	}
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.closed {
		return nil, types.ErrExecutorClosed
	}
	exec.height++
	exec.blocktime = time.Now().Unix()
	receipt, err := exec.coinsAccount(exec.stateDB).GenesisInit(addr, amount)
	if err != nil {
		exec.discard()
		exec.height--
		return nil, err
	}
	if err := exec.flush(exec.newHeader(nil)); err != nil {
		exec.height--
		return nil, err
	}
	return &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, nil
}

// Drivers 已经注册的执行器
func (exec *Executor) Drivers() []string {
	return drivers.DriverNames()
}

// Stats 数据库以及执行统计
func (exec *Executor) Stats() map[string]string {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.maindb.Stats()
}

// Close 关闭数据库
func (exec *Executor) Close() {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.closed {
		return
	}
	exec.closed = true
	exec.maindb.Close()
	elog.Info("executor closed", "height", exec.height)
}
