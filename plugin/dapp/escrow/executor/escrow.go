// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	et "github.com/dontclickthat/escrow/plugin/dapp/escrow/types"
	drivers "github.com/dontclickthat/escrow/system/dapp"
	"github.com/dontclickthat/escrow/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs.escrow")

var driverName = et.EscrowX

// Init 注册执行器
func Init(name string) {
	if name != driverName {
		panic("escrow exec can't be rename: " + name)
	}
	drivers.Register(driverName, newEscrow)
}

// GetName 执行器名称
func GetName() string {
	return newEscrow().GetName()
}

// Escrow 两人对赌的托管执行器
type Escrow struct {
	drivers.DriverBase
	subcfg *et.Config
	cfgErr error
}

func newEscrow() drivers.Driver {
	e := &Escrow{subcfg: &et.Config{}}
	e.SetChild(e)
	e.SetExecutorType(types.LoadExecutorType(driverName))
	return e
}

// GetDriverName 驱动名称
func (e *Escrow) GetDriverName() string {
	return driverName
}

// SetConfig 同时读取 [exec.sub.escrow]
func (e *Escrow) SetConfig(cfg *types.Config) {
	e.DriverBase.SetConfig(cfg)
	e.subcfg, e.cfgErr = et.LoadConfig(cfg)
	if e.cfgErr != nil {
		elog.Error("load sub config", "err", e.cfgErr)
	}
}

// CheckConfig 执行器启动时检查 [exec.sub.escrow]
func (e *Escrow) CheckConfig(cfg *types.Config) error {
	_, err := et.LoadConfig(cfg)
	return err
}

// CheckTx 子配置错误时拒绝所有交易
func (e *Escrow) CheckTx(tx *types.Transaction, index int) error {
	if e.cfgErr != nil {
		return e.cfgErr
	}
	return e.DriverBase.CheckTx(tx, index)
}
