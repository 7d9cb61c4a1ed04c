// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现代币账户的资产操作

1. load from db
2. save to db
3. KVSet
4. Transfer / TransferFrom
5. 账户所有者: Owner 为空时账户归地址本身所有, 否则只有 Owner 可以转出
*/
package account

import (
	"fmt"
	"strings"

	dbm "github.com/dontclickthat/escrow/common/db"
	"github.com/dontclickthat/escrow/types"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	execer           string
	symbol           string
}

// NewCoinsAccount 默认的 coins-bty 账户
func NewCoinsAccount(db dbm.KV) *DB {
	accDB, err := NewAccountDB(types.CoinsX, types.DefaultSymbol, db)
	if err != nil {
		panic(err)
	}
	return accDB
}

// NewAccountDB 创建 execer-symbol 的账户数据库
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	//如果execer 和  symbol 中存在 "-", 那么创建失败
	if execer == "" || strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if symbol == "" || strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	acc := &DB{
		accountKeyPerfix: []byte(SymbolPrefix(execer, symbol)),
		execer:           execer,
		symbol:           symbol,
	}
	acc.SetDB(db)
	return acc, nil
}

// SetDB 设置底层数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// Symbol 代币名称
func (acc *DB) Symbol() string {
	return acc.symbol
}

// LoadAccount 读取账户, 不存在时返回空账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err == dbm.ErrNotFoundInDb {
		return &types.Account{Addr: addr}
	}
	if err != nil {
		panic(err) //读取失败不能当作空账户
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// LoadAccounts 批量读取账户
func (acc *DB) LoadAccounts(addrs []string) []*types.Account {
	accs := make([]*types.Account, 0, len(addrs))
	for _, addr := range addrs {
		accs = append(accs, acc.LoadAccount(addr))
	}
	return accs
}

// EffectiveOwner 账户的实际所有者
func EffectiveOwner(acc1 *types.Account) string {
	if acc1.GetOwner() == "" {
		return acc1.GetAddr()
	}
	return acc1.GetOwner()
}

// CheckTransfer 检查转账是否可以执行, 不修改状态
func (acc *DB) CheckTransfer(from, to, authority string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	accFrom := acc.LoadAccount(from)
	if EffectiveOwner(accFrom) != authority {
		return types.ErrNotAuthorized
	}
	if accFrom.GetBalance()-amount < 0 {
		return types.ErrNoBalance
	}
	accTo := acc.LoadAccount(to)
	if _, err := safeAdd(accTo.GetBalance(), amount); err != nil {
		return err
	}
	return nil
}

// Transfer 由账户所有者本人发起的转账
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	return acc.TransferFrom(from, to, from, amount)
}

// TransferFrom authority 必须是 from 账户的所有者, 所有检查都在写入之前完成
func (acc *DB) TransferFrom(from, to, authority string, amount int64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, authority, amount); err != nil {
		alog.Debug("TransferFrom check", "from", from, "to", to, "authority", authority, "amount", amount, "err", err)
		return nil, err
	}
	changeFrom := acc.change(from, func(a *types.Account) { a.Balance -= amount })
	changeTo := acc.change(to, func(a *types.Account) { a.Balance += amount })
	return acc.receipt(types.TyLogTransfer, changeFrom, changeTo), nil
}

// GenesisInit 创世时给地址发币, 只在创世区块中调用
func (acc *DB) GenesisInit(addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	balance, err := safeAdd(acc.LoadAccount(addr).GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	change := acc.change(addr, func(a *types.Account) { a.Balance = balance })
	return acc.receipt(types.TyLogGenesis, change), nil
}

// InitOwner 设置新账户的所有者, 已经有其他所有者时失败
func (acc *DB) InitOwner(addr, owner string) (*types.Receipt, error) {
	if owner == "" {
		return nil, types.ErrInvalidParam
	}
	acc1 := acc.LoadAccount(addr)
	if acc1.GetOwner() == owner {
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	if acc1.GetOwner() != "" {
		return nil, types.ErrAccountOwnerSet
	}
	change := acc.change(addr, func(a *types.Account) { a.Owner = owner })
	return acc.receipt(types.TyLogAccountOwner, change), nil
}

func safeAdd(balance, amount int64) (int64, error) {
	if balance+amount < amount || balance+amount > types.MaxCoin {
		return balance, types.ErrAmount
	}
	return balance + amount, nil
}

//change 修改账户并立即写入 db, 返回修改前后的快照
func (acc *DB) change(addr string, modify func(*types.Account)) *types.ReceiptAccountTransfer {
	cur := acc.LoadAccount(addr)
	prev := *cur
	modify(cur)
	acc.SaveAccount(cur)
	return &types.ReceiptAccountTransfer{Prev: &prev, Current: cur}
}

//receipt 每个账户变更对应一条日志以及一个 kv
func (acc *DB) receipt(ty int32, changes ...*types.ReceiptAccountTransfer) *types.Receipt {
	r := &types.Receipt{Ty: types.ExecOk}
	for _, c := range changes {
		r.KV = append(r.KV, acc.GetKVSet(c.Current)...)
		r.Logs = append(r.Logs, &types.ReceiptLog{Ty: ty, Log: types.Encode(c)})
	}
	return r
}

// SaveAccount 保存账户
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].GetKey(), set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet 账户对应的状态变更
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// SymbolPrefix 账户 key 前缀
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}
