// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin           int64 = 1e8
	MaxCoin        int64 = 1e17
	MaxTxSize            = 100000 //100K
	MaxTxsPerBlock       = 100000
)

// 默认的执行器以及代币名称
const (
	CoinsX        = "coins"
	DefaultSymbol = "bty"
)

// receipt type
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// 系统日志类型, 插件的日志类型从 100 开始
const (
	TyLogReserved     = 0
	TyLogErr          = 1
	TyLogFee          = 2
	TyLogTransfer     = 3
	TyLogGenesis      = 4
	TyLogAccountOwner = 5
)

// 签名类型
const (
	Invalid   = 0
	SECP256K1 = 1
)

// 列表查询方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// LocalPrefix 本地数据库 key 前缀
var LocalPrefix = []byte("LODB")

// StatePrefix 状态数据库 key 前缀
var StatePrefix = []byte("mavl")

//CheckAmount 检查金额是否合法
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
