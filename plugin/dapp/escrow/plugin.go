// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package escrow 两人对赌的托管插件
package escrow

import (
	"github.com/dontclickthat/escrow/plugin/dapp/escrow/commands"
	"github.com/dontclickthat/escrow/plugin/dapp/escrow/executor"
	"github.com/dontclickthat/escrow/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "escrow",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.EscrowCmd,
	})
}
