// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 命令行入口, 各个插件通过 pluginmgr 添加自己的命令
package cli

import (
	"fmt"
	"os"

	"github.com/dontclickthat/escrow/common/log"
	"github.com/dontclickthat/escrow/metrics"
	"github.com/dontclickthat/escrow/pluginmgr"
	"github.com/dontclickthat/escrow/system/dapp/commands"
	"github.com/spf13/cobra"
)

var reporter *metrics.Reporter

var rootCmd = &cobra.Command{
	Use:   "escrow-cli",
	Short: "escrow client tools",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := commands.LoadConfig(cmd)
		if err != nil {
			return
		}
		reporter = metrics.StartMetrics(cfg.Metrics)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		reporter.Stop()
	},
}

func init() {
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.StatCmd(),
		commands.BlockCmd(),
	)
}

//Run : 添加插件命令并执行, conf 为缺省的配置文件
func Run(conf string) {
	pluginmgr.AddCmd(rootCmd)
	log.SetLogLevel("error")
	rootCmd.PersistentFlags().String("conf", conf, "config file, empty for an in-memory ledger")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
