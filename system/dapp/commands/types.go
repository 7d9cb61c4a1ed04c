// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 命令行的公共函数以及账户命令
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dontclickthat/escrow/common"
	"github.com/dontclickthat/escrow/common/config"
	"github.com/dontclickthat/escrow/common/crypto"
	"github.com/dontclickthat/escrow/common/crypto/secp256k1"
	"github.com/dontclickthat/escrow/common/log"
	"github.com/dontclickthat/escrow/executor"
	"github.com/dontclickthat/escrow/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// 金额的小数位数, 1 coin = 1e8
const coinPrecision = 8

// LoadConfig 读取 --conf 指定的配置文件
func LoadConfig(cmd *cobra.Command) (*types.Config, error) {
	path, _ := cmd.Flags().GetString("conf")
	if path == "" {
		return types.DefaultConfig(), nil
	}
	return config.Init(path)
}

// OpenExecutor 命令行直接打开本地数据库, 使用完需要 Close
func OpenExecutor(cmd *cobra.Command) (*executor.Executor, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log.SetFileLog(cfg.Log)
	return executor.New(cfg)
}

// GetPrivKey hex 编码的 secp256k1 私钥
func GetPrivKey(key string) (crypto.PrivKey, error) {
	data, err := common.FromHex(key)
	if err != nil {
		return nil, errors.Wrap(err, "decode private key")
	}
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	return c.PrivKeyFromBytes(data)
}

// ParseCoins "1.5" -> 150000000
func ParseCoins(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parse amount %s", s)
	}
	d = d.Shift(coinPrecision)
	if !d.IsInteger() {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s has more than %d decimals", s, coinPrecision)
	}
	if d.Sign() <= 0 || d.GreaterThanOrEqual(decimal.NewFromInt(types.MaxCoin)) {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s", s)
	}
	return d.IntPart(), nil
}

// FormatCoins 150000000 -> "1.5"
func FormatCoins(v int64) string {
	return decimal.New(v, -coinPrecision).String()
}

// ReceiptLogResult 可读的日志
type ReceiptLogResult struct {
	Ty   int32           `json:"ty"`
	Name string          `json:"name,omitempty"`
	Log  json.RawMessage `json:"log,omitempty"`
	Raw  string          `json:"rawLog,omitempty"`
}

// ReceiptResult 可读的交易回执
type ReceiptResult struct {
	Hash   string              `json:"hash"`
	From   string              `json:"from"`
	Height int64               `json:"height"`
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyName"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

type logDecoder interface {
	DecodeLog(ty int64, data []byte) (types.Message, string, error)
}

var systemLogs = map[int32]string{
	types.TyLogTransfer:     "LogTransfer",
	types.TyLogGenesis:      "LogGenesis",
	types.TyLogAccountOwner: "LogAccountOwner",
}

func decodeLog(execer string, l *types.ReceiptLog) *ReceiptLogResult {
	r := &ReceiptLogResult{Ty: l.Ty}
	if l.Ty == types.TyLogErr {
		r.Name = "LogErr"
		r.Raw = string(l.Log)
		return r
	}
	var msg types.Message
	if name, ok := systemLogs[l.Ty]; ok {
		var transfer types.ReceiptAccountTransfer
		if err := types.Decode(l.Log, &transfer); err == nil {
			r.Name, msg = name, &transfer
		}
	} else if d, ok := types.LoadExecutorType(execer).(logDecoder); ok {
		if m, name, err := d.DecodeLog(int64(l.Ty), l.Log); err == nil {
			r.Name, msg = name, m
		}
	}
	if msg == nil {
		r.Raw = common.ToHex(l.Log)
		return r
	}
	data, err := types.PBToJSON(msg)
	if err != nil {
		r.Raw = common.ToHex(l.Log)
		return r
	}
	r.Log = data
	return r
}

// NewReceiptResult 解码回执中的日志
func NewReceiptResult(tx *types.Transaction, height int64, receipt *types.ReceiptData) *ReceiptResult {
	r := &ReceiptResult{
		Hash:   common.ToHex(tx.Hash()),
		From:   tx.From(),
		Height: height,
		Ty:     receipt.GetTy(),
		TyName: "ExecErr",
	}
	if receipt.GetTy() == types.ExecOk {
		r.TyName = "ExecOk"
	}
	for _, l := range receipt.GetLogs() {
		r.Logs = append(r.Logs, decodeLog(string(tx.Execer), l))
	}
	return r
}

// SendTx 签名并在本地执行交易, 打印回执
func SendTx(cmd *cobra.Command, tx *types.Transaction, key string) {
	priv, err := GetPrivKey(key)
	if err != nil {
		exitErr(err)
	}
	tx.Sign(secp256k1.ID, priv)
	exec, err := OpenExecutor(cmd)
	if err != nil {
		exitErr(err)
	}
	receipt, txerr := exec.ExecTx(context.Background(), tx)
	height := exec.Height()
	exec.Close()
	if receipt == nil {
		exitErr(txerr)
	}
	PrintJSON(NewReceiptResult(tx, height, receipt))
	if txerr != nil {
		fmt.Fprintln(os.Stderr, txerr)
	}
}

// Query 在本地数据库上执行查询并打印结果
func Query(cmd *cobra.Command, execer, funcName string, params types.Message) {
	exec, err := OpenExecutor(cmd)
	if err != nil {
		exitErr(err)
	}
	reply, err := exec.Query(execer, funcName, params)
	exec.Close()
	if err != nil {
		exitErr(err)
	}
	PrintMessage(reply)
}

// PrintMessage 以 JSON 格式打印 protobuf 消息
func PrintMessage(msg types.Message) {
	data, err := types.PBToJSON(msg)
	if err != nil {
		exitErr(err)
	}
	fmt.Println(string(data))
}

// PrintJSON 以 JSON 格式打印
func PrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		exitErr(err)
	}
	fmt.Println(string(data))
}

func exitErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
