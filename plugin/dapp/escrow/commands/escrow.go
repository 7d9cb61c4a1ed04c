// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands escrow 命令行
package commands

import (
	"fmt"
	"os"

	et "github.com/dontclickthat/escrow/plugin/dapp/escrow/types"
	"github.com/dontclickthat/escrow/system/dapp/commands"
	"github.com/spf13/cobra"
)

// EscrowCmd escrow command
func EscrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow",
		Short: "Two player wagering escrow",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateCmd(),
		JoinCmd(),
		StakeCmd(),
		FinalizeCmd(),
		ShowCmd(),
		ListCmd(),
		CountCmd(),
		VaultCmd(),
		AddressCmd(),
	)
	return cmd
}

func addGameIDFlag(cmd *cobra.Command) {
	cmd.Flags().Uint64P("gameID", "g", 0, "game id")
	cmd.MarkFlagRequired("gameID")
}

func vaultOf(gameID uint64) string {
	vault, err := et.VaultAddress(gameID)
	if err != nil {
		exit(err)
	}
	return vault
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func send(cmd *cobra.Command, action *et.EscrowAction) {
	key, _ := cmd.Flags().GetString("key")
	tx, err := et.CreateEscrowTx(action)
	if err != nil {
		exit(err)
	}
	commands.SendTx(cmd, tx, key)
}

// CreateCmd initialize_game
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game and wait for the second player",
		Run:   createGame,
	}
	commands.AddKeyFlag(cmd)
	addGameIDFlag(cmd)
	cmd.Flags().StringP("stake", "s", "", "stake of each player in coins")
	cmd.MarkFlagRequired("stake")
	cmd.Flags().Uint64P("seed", "e", 0, "opaque game seed")
	return cmd
}

func createGame(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetUint64("gameID")
	stakeStr, _ := cmd.Flags().GetString("stake")
	seed, _ := cmd.Flags().GetUint64("seed")
	stake, err := commands.ParseCoins(stakeStr)
	if err != nil {
		exit(err)
	}
	send(cmd, et.NewCreateAction(gameID, stake, seed))
}

// JoinCmd join_game
func JoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a waiting game and deposit the stake",
		Run:   joinGame,
	}
	commands.AddKeyFlag(cmd)
	addGameIDFlag(cmd)
	cmd.Flags().StringP("from", "f", "", "source token account, default the sender")
	return cmd
}

func joinGame(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetUint64("gameID")
	from, _ := cmd.Flags().GetString("from")
	send(cmd, et.NewJoinAction(gameID, from, vaultOf(gameID)))
}

// StakeCmd stake_tokens
func StakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake",
		Short: "Deposit the stake into the game vault",
		Run:   stakeGame,
	}
	commands.AddKeyFlag(cmd)
	addGameIDFlag(cmd)
	cmd.Flags().StringP("from", "f", "", "source token account, default the sender")
	return cmd
}

func stakeGame(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetUint64("gameID")
	from, _ := cmd.Flags().GetString("from")
	send(cmd, et.NewStakeAction(gameID, from, vaultOf(gameID)))
}

// FinalizeCmd finalize_game
func FinalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalize",
		Short: "Declare the winner and pay out the pot",
		Run:   finalizeGame,
	}
	commands.AddKeyFlag(cmd)
	addGameIDFlag(cmd)
	cmd.Flags().StringP("winner", "w", "", "winner address")
	cmd.MarkFlagRequired("winner")
	cmd.Flags().StringP("account", "r", "", "winner token account, default the winner address")
	return cmd
}

func finalizeGame(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetUint64("gameID")
	winner, _ := cmd.Flags().GetString("winner")
	account, _ := cmd.Flags().GetString("account")
	send(cmd, et.NewFinalizeAction(gameID, winner, vaultOf(gameID), account))
}

// ShowCmd 查询游戏
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a game record",
		Run:   showGame,
	}
	addGameIDFlag(cmd)
	return cmd
}

func showGame(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetUint64("gameID")
	commands.Query(cmd, et.EscrowX, "GetGame", &et.QueryGameInfo{GameId: gameID})
}

// ListCmd 按状态分页查询
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by status and address",
		Run:   listGames,
	}
	cmd.Flags().StringP("status", "t", "WaitingForPlayer", "WaitingForPlayer, InProgress or Finished")
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.Flags().Int32P("count", "c", et.DefaultCount, "page size")
	cmd.Flags().Int32P("direction", "d", 0, "0: newest first, 1: oldest first")
	cmd.Flags().Int64P("index", "i", 0, "index of the last game of the previous page")
	return cmd
}

func parseStatus(cmd *cobra.Command) int32 {
	name, _ := cmd.Flags().GetString("status")
	status, ok := et.StatusFromName(name)
	if !ok {
		exit(fmt.Errorf("unknown status %s", name))
	}
	return status
}

func listGames(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")
	req := &et.ReqListGames{
		Status:    parseStatus(cmd),
		Addr:      addr,
		Count:     count,
		Direction: direction,
		Index:     index,
	}
	commands.Query(cmd, et.EscrowX, "ListGames", req)
}

// CountCmd 按状态统计
func CountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count games by status and address",
		Run:   countGames,
	}
	cmd.Flags().StringP("status", "t", "WaitingForPlayer", "WaitingForPlayer, InProgress or Finished")
	cmd.Flags().StringP("addr", "a", "", "player address")
	return cmd
}

func countGames(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	commands.Query(cmd, et.EscrowX, "GetGameCount", &et.ReqGameCount{Status: parseStatus(cmd), Addr: addr})
}

// VaultCmd 金库余额
func VaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Show the vault balance of a game",
		Run:   showVault,
	}
	addGameIDFlag(cmd)
	return cmd
}

func showVault(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetUint64("gameID")
	commands.Query(cmd, et.EscrowX, "GetVault", &et.QueryGameInfo{GameId: gameID})
}

// AddressCmd 计算派生地址, 不需要访问数据库
func AddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Show the derived game and vault addresses",
		Run:   showAddress,
	}
	addGameIDFlag(cmd)
	return cmd
}

// AddressResult 派生地址
type AddressResult struct {
	GameID  uint64 `json:"gameId"`
	Program string `json:"program"`
	Game    string `json:"game"`
	Bump    uint8  `json:"bump"`
	Vault   string `json:"vault"`
}

func showAddress(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetUint64("gameID")
	addr, bump, err := et.GameAddress(gameID)
	if err != nil {
		exit(err)
	}
	commands.PrintJSON(&AddressResult{
		GameID:  gameID,
		Program: et.ProgramAddress(),
		Game:    addr,
		Bump:    bump,
		Vault:   vaultOf(gameID),
	})
}
