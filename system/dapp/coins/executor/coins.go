// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供一种操作：
Transfer -> 转移资产
*/

import (
	drivers "github.com/dontclickthat/escrow/system/dapp"
	cty "github.com/dontclickthat/escrow/system/dapp/coins/types"
	"github.com/dontclickthat/escrow/types"
)

var driverName = cty.CoinsX

// Init 注册执行器
func Init(name string) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newCoins)
}

// GetName 执行器名称
func GetName() string {
	return driverName
}

// Coins 执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

// GetDriverName 驱动名称
func (c *Coins) GetDriverName() string {
	return driverName
}

// Exec_Transfer 从交易发起人转账给 To
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := drivers.CheckAddress(transfer.To); err != nil {
		return nil, err
	}
	return c.GetCoinsAccount().Transfer(tx.From(), transfer.To, transfer.Amount)
}
