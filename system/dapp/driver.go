// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的接口以及公共实现
package dapp

import (
	"reflect"

	"github.com/dontclickthat/escrow/account"
	dbm "github.com/dontclickthat/escrow/common/db"
	"github.com/dontclickthat/escrow/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "dapp")

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	SetLocalDB(dbm.KVDB)
	SetConfig(cfg *types.Config)
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	SetEnv(height, blocktime int64)
	GetActionName(tx *types.Transaction) string
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

// DriverBase 执行器驱动的公共实现, 具体的执行器通过反射调用 Exec_/ExecLocal_/Query_ 方法
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	cfg          *types.Config
	height       int64
	blocktime    int64
	child        Driver
	childValue   reflect.Value
	ety          types.ExecutorType
}

// GetExecutorType get executor type
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

// SetExecutorType set executor type
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

// GetFuncMap 子类的反射方法列表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return types.ListMethod(d.child)
}

// SetChild 设置具体的执行器
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
}

// SetEnv set env
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// SetConfig 设置配置
func (d *DriverBase) SetConfig(cfg *types.Config) {
	d.cfg = cfg
	d.coinsaccount = nil
}

// GetConfig 读取配置
func (d *DriverBase) GetConfig() *types.Config {
	if d.cfg == nil {
		return types.DefaultConfig()
	}
	return d.cfg
}

//CheckTx 默认情况下，tx.To 地址指向合约地址
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	execer := string(tx.Execer)
	if ExecAddress(execer) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

// SetStateDB set state db
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	d.coinsaccount = nil
}

// GetStateDB get state db
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB set local db
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB get local db
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetHeight get height
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime get block time
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetName 执行器名称
func (d *DriverBase) GetName() string {
	return d.child.GetDriverName()
}

// GetActionName get action name
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	return tx.ActionName()
}

// GetCoinsAccount 配置中 symbol 对应的 coins 账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		acc, err := account.NewAccountDB(types.CoinsX, d.GetConfig().Exec.Symbol, d.statedb)
		if err != nil {
			panic(err)
		}
		d.coinsaccount = acc
	}
	return d.coinsaccount
}
