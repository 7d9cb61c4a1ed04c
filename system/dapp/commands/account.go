// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"strings"

	"github.com/dontclickthat/escrow/common"
	"github.com/dontclickthat/escrow/common/address"
	"github.com/dontclickthat/escrow/common/crypto"
	"github.com/dontclickthat/escrow/common/crypto/secp256k1"
	cty "github.com/dontclickthat/escrow/system/dapp/coins/types"
	"github.com/dontclickthat/escrow/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		KeyGenCmd(),
		GetBalanceCmd(),
		GenesisCmd(),
		TransferCmd(),
	)
	return cmd
}

// KeyGenCmd 生成新的私钥
func KeyGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new secp256k1 key pair",
		Run:   keyGen,
	}
	return cmd
}

// KeyResult keygen 输出
type KeyResult struct {
	PrivKey string `json:"privkey"`
	PubKey  string `json:"pubkey"`
	Addr    string `json:"addr"`
}

func keyGen(cmd *cobra.Command, args []string) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		exitErr(err)
	}
	priv, err := c.GenKey()
	if err != nil {
		exitErr(err)
	}
	pub := priv.PubKey().Bytes()
	PrintJSON(&KeyResult{
		PrivKey: common.ToHex(priv.Bytes()),
		PubKey:  common.ToHex(pub),
		Addr:    address.PubKeyToAddr(pub),
	})
}

// GetBalanceCmd get balance of an execer
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of account addresses",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account addresses, separated by comma")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("symbol", "s", "", "token symbol, default from config")
	return cmd
}

// AccountResult 账户余额, 以 coin 为单位
type AccountResult struct {
	Addr    string `json:"addr"`
	Owner   string `json:"owner,omitempty"`
	Balance string `json:"balance"`
	Frozen  string `json:"frozen"`
}

func balance(cmd *cobra.Command, args []string) {
	addrs, _ := cmd.Flags().GetString("addr")
	symbol, _ := cmd.Flags().GetString("symbol")
	exec, err := OpenExecutor(cmd)
	if err != nil {
		exitErr(err)
	}
	reply, err := exec.GetBalance(&types.ReqBalance{Addresses: strings.Split(addrs, ","), Symbol: symbol})
	exec.Close()
	if err != nil {
		exitErr(err)
	}
	var result []*AccountResult
	for _, acc := range reply.GetAccounts() {
		result = append(result, &AccountResult{
			Addr:    acc.GetAddr(),
			Owner:   acc.GetOwner(),
			Balance: FormatCoins(acc.GetBalance()),
			Frozen:  FormatCoins(acc.GetFrozen()),
		})
	}
	PrintJSON(result)
}

// GenesisCmd 本地开发链给地址增发
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Mint coins to an address (local chain only)",
		Run:   genesis,
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("amount", "m", "", "amount in coins, e.g. 1.5")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func genesis(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := ParseCoins(amountStr)
	if err != nil {
		exitErr(err)
	}
	exec, err := OpenExecutor(cmd)
	if err != nil {
		exitErr(err)
	}
	receipt, err := exec.Genesis(addr, amount)
	height := exec.Height()
	exec.Close()
	if err != nil {
		exitErr(err)
	}
	result := &ReceiptResult{Height: height, Ty: receipt.GetTy(), TyName: "ExecOk"}
	for _, l := range receipt.GetLogs() {
		result.Logs = append(result.Logs, decodeLog(types.CoinsX, l))
	}
	PrintJSON(result)
}

// TransferCmd coins 转账
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to an address",
		Run:   transfer,
	}
	AddKeyFlag(cmd)
	cmd.Flags().StringP("to", "t", "", "receiver address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "m", "", "amount in coins, e.g. 1.5")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note")
	return cmd
}

func transfer(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")
	to, _ := cmd.Flags().GetString("to")
	amountStr, _ := cmd.Flags().GetString("amount")
	note, _ := cmd.Flags().GetString("note")
	amount, err := ParseCoins(amountStr)
	if err != nil {
		exitErr(err)
	}
	tx, err := cty.CreateTransferTx(to, amount, note)
	if err != nil {
		exitErr(err)
	}
	SendTx(cmd, tx, key)
}

// AddKeyFlag 签名私钥参数
func AddKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "hex encoded private key of the sender")
	cmd.MarkFlagRequired("key")
}
