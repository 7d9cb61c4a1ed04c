// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 内置的货币执行器插件
package coins

import (
	"github.com/dontclickthat/escrow/pluginmgr"
	"github.com/dontclickthat/escrow/system/dapp/coins/executor"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "system.coins",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
	})
}
