// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/dontclickthat/escrow/common"
	"github.com/dontclickthat/escrow/types"
	"github.com/spf13/cobra"
)

// StatCmd 数据库以及执行器状态
func StatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Show ledger height and database statistics",
		Run:   stat,
	}
	return cmd
}

// StatResult stat 输出
type StatResult struct {
	Height  int64             `json:"height"`
	Hash    string            `json:"hash"`
	Title   string            `json:"title"`
	Store   string            `json:"store"`
	Drivers []string          `json:"drivers"`
	DB      map[string]string `json:"db"`
}

func stat(cmd *cobra.Command, args []string) {
	exec, err := OpenExecutor(cmd)
	if err != nil {
		exitErr(err)
	}
	cfg := exec.Config()
	result := &StatResult{
		Height:  exec.Height(),
		Hash:    common.ToHex(exec.LastHeader().GetHash()),
		Title:   cfg.Title,
		Store:   cfg.Store.Driver,
		Drivers: exec.Drivers(),
		DB:      exec.Stats(),
	}
	exec.Close()
	PrintJSON(result)
}

// BlockCmd 查询区块头
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Show the block header at a height, default the latest",
		Run:   block,
	}
	cmd.Flags().Int64P("height", "t", -1, "block height")
	return cmd
}

// HeaderResult 区块头, hash 以 hex 输出
type HeaderResult struct {
	Height     int64  `json:"height"`
	Hash       string `json:"hash"`
	ParentHash string `json:"parentHash"`
	TxHash     string `json:"txHash"`
	TxCount    int64  `json:"txCount"`
	BlockTime  int64  `json:"blockTime"`
}

// NewHeaderResult 转为可读的区块头
func NewHeaderResult(header *types.Header) *HeaderResult {
	return &HeaderResult{
		Height:     header.Height,
		Hash:       common.ToHex(header.Hash),
		ParentHash: common.ToHex(header.ParentHash),
		TxHash:     common.ToHex(header.TxHash),
		TxCount:    header.TxCount,
		BlockTime:  header.BlockTime,
	}
}

func block(cmd *cobra.Command, args []string) {
	height, _ := cmd.Flags().GetInt64("height")
	exec, err := OpenExecutor(cmd)
	if err != nil {
		exitErr(err)
	}
	if height < 0 {
		height = exec.Height()
	}
	header, err := exec.GetHeader(height)
	exec.Close()
	if err != nil {
		exitErr(err)
	}
	PrintJSON(NewHeaderResult(header))
}
