// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types escrow 执行器的交易, 日志以及查询结构
package types

import (
	"encoding/json"
	"reflect"

	"github.com/dontclickthat/escrow/common/address"
	"github.com/dontclickthat/escrow/types"
	"github.com/pkg/errors"
)

func init() {
	types.RegistorExecutor(EscrowX, NewType())
}

// EscrowType escrow 执行器类型
type EscrowType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *EscrowType {
	c := &EscrowType{}
	c.SetChild(c)
	return c
}

// GetPayload 交易的 payload
func (t *EscrowType) GetPayload() types.Message {
	return &EscrowAction{}
}

// GetTypeMap action 名称
func (t *EscrowType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Create":   EscrowActionCreate,
		"Join":     EscrowActionJoin,
		"Stake":    EscrowActionStake,
		"Finalize": EscrowActionFinalize,
	}
}

// GetLogMap 日志类型
func (t *EscrowType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogEscrowCreate:   {Ty: reflect.TypeOf(ReceiptEscrow{}), Name: "LogEscrowCreate"},
		TyLogEscrowJoin:     {Ty: reflect.TypeOf(ReceiptEscrow{}), Name: "LogEscrowJoin"},
		TyLogEscrowStake:    {Ty: reflect.TypeOf(ReceiptEscrow{}), Name: "LogEscrowStake"},
		TyLogEscrowFinalize: {Ty: reflect.TypeOf(ReceiptEscrow{}), Name: "LogEscrowFinalize"},
	}
}

// Config [exec.sub.escrow] 配置
type Config struct {
	// 每个玩家押注的上限, 0 表示只受 types.MaxCoin 限制
	MaxStakeAmount int64 `json:"maxStakeAmount"`
	// 允许调用 finalize 的地址, 为空时任何人都可以
	Referees []string `json:"referees"`
}

// LoadConfig 读取执行器配置, 没有配置时返回零值
func LoadConfig(cfg *types.Config) (*Config, error) {
	sub := &Config{}
	data := cfg.GetSubConfig(EscrowX)
	if data == nil {
		return sub, nil
	}
	if err := json.Unmarshal(data, sub); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "%s: %v", EscrowX, err)
	}
	return sub, nil
}

// IsReferee 是否允许 addr 调用 finalize
func (c *Config) IsReferee(addr string) bool {
	if len(c.Referees) == 0 {
		return true
	}
	for _, r := range c.Referees {
		if r == addr {
			return true
		}
	}
	return false
}

// ProgramAddress escrow 执行器地址, 派生地址都以它作为 program
func ProgramAddress() string {
	return address.ExecAddress(EscrowX)
}

// GameAddress game 记录的派生地址, 同时也是金库账户的 owner
func GameAddress(gameID uint64) (string, uint8, error) {
	return address.DeriveAddress(address.GameSeeds(gameSeedPrefix, gameID), ProgramAddress())
}

// GameAddressWithBump 用保存的 bump 重新计算 game 地址
func GameAddressWithBump(gameID uint64, bump uint8) (string, error) {
	return address.CreateDerivedAddress(address.GameSeeds(gameSeedPrefix, gameID), bump, ProgramAddress())
}

// VaultAddress 金库账户地址
func VaultAddress(gameID uint64) (string, error) {
	addr, _, err := address.DeriveAddress(address.GameSeeds(vaultSeedPrefix, gameID), ProgramAddress())
	return addr, err
}

// CreateEscrowTx 构造未签名的 escrow 交易
func CreateEscrowTx(action *EscrowAction) (*types.Transaction, error) {
	return types.CreateFormatTx(EscrowX, types.Encode(action))
}

// NewCreateAction initialize_game
func NewCreateAction(gameID uint64, stake int64, seed uint64) *EscrowAction {
	return &EscrowAction{
		Ty:     EscrowActionCreate,
		Create: &EscrowCreate{GameId: gameID, StakeAmount: stake, Seed: seed},
	}
}

// NewJoinAction join_game
func NewJoinAction(gameID uint64, from, vault string) *EscrowAction {
	return &EscrowAction{
		Ty:   EscrowActionJoin,
		Join: &EscrowJoin{GameId: gameID, From: from, Vault: vault},
	}
}

// NewStakeAction stake_tokens
func NewStakeAction(gameID uint64, from, vault string) *EscrowAction {
	return &EscrowAction{
		Ty:    EscrowActionStake,
		Stake: &EscrowStake{GameId: gameID, From: from, Vault: vault},
	}
}

// NewFinalizeAction finalize_game
func NewFinalizeAction(gameID uint64, winner, vault, winnerAccount string) *EscrowAction {
	return &EscrowAction{
		Ty:       EscrowActionFinalize,
		Finalize: &EscrowFinalize{GameId: gameID, Winner: winner, Vault: vault, WinnerAccount: winnerAccount},
	}
}
