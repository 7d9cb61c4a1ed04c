// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "strings"

// escrow action ty
const (
	EscrowActionCreate = iota + 1
	EscrowActionJoin
	EscrowActionStake
	EscrowActionFinalize
)

// log ty
const (
	TyLogEscrowCreate = iota + 101
	TyLogEscrowJoin
	TyLogEscrowStake
	TyLogEscrowFinalize
)

// game 的状态只能单向变化: WaitingForPlayer -> InProgress -> Finished
const (
	StatusWaitingForPlayer = int32(1)
	StatusInProgress       = int32(2)
	StatusFinished         = int32(3)
)

const (
	// EscrowX 执行器名称
	EscrowX = "escrow"

	// 派生地址的种子前缀
	gameSeedPrefix  = "game"
	vaultSeedPrefix = "vault"

	// DefaultCount 列表查询默认条数
	DefaultCount = int32(20)
	// MaxCount 列表查询最多条数
	MaxCount = int32(100)
)

// ExecerEscrow escrow execer
var ExecerEscrow = []byte(EscrowX)

var statusName = map[int32]string{
	StatusWaitingForPlayer: "WaitingForPlayer",
	StatusInProgress:       "InProgress",
	StatusFinished:         "Finished",
}

// StatusName 状态名称
func StatusName(status int32) string {
	if name, ok := statusName[status]; ok {
		return name
	}
	return "Unknown"
}

// StatusFromName 状态名称转为状态值, 不区分大小写
func StatusFromName(name string) (int32, bool) {
	for status, n := range statusName {
		if strings.EqualFold(n, name) {
			return status, true
		}
	}
	return 0, false
}
