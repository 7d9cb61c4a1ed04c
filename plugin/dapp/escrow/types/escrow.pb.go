// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// EscrowAction 交易的 payload, Ty 决定具体的 action
type EscrowAction struct {
	Create   *EscrowCreate   `protobuf:"bytes,2,opt,name=create,proto3" json:"create,omitempty"`
	Join     *EscrowJoin     `protobuf:"bytes,3,opt,name=join,proto3" json:"join,omitempty"`
	Stake    *EscrowStake    `protobuf:"bytes,4,opt,name=stake,proto3" json:"stake,omitempty"`
	Finalize *EscrowFinalize `protobuf:"bytes,5,opt,name=finalize,proto3" json:"finalize,omitempty"`
	Ty       int32           `protobuf:"varint,10,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *EscrowAction) Reset()         { *m = EscrowAction{} }
func (m *EscrowAction) String() string { return proto.CompactTextString(m) }
func (*EscrowAction) ProtoMessage()    {}

// GetCreate get create
func (m *EscrowAction) GetCreate() *EscrowCreate {
	if m != nil {
		return m.Create
	}
	return nil
}

// GetJoin get join
func (m *EscrowAction) GetJoin() *EscrowJoin {
	if m != nil {
		return m.Join
	}
	return nil
}

// GetStake get stake
func (m *EscrowAction) GetStake() *EscrowStake {
	if m != nil {
		return m.Stake
	}
	return nil
}

// GetFinalize get finalize
func (m *EscrowAction) GetFinalize() *EscrowFinalize {
	if m != nil {
		return m.Finalize
	}
	return nil
}

// GetTy get ty
func (m *EscrowAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// EscrowCreate initialize_game
type EscrowCreate struct {
	GameId      uint64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	StakeAmount int64  `protobuf:"varint,2,opt,name=stakeAmount,proto3" json:"stakeAmount,omitempty"`
	Seed        uint64 `protobuf:"varint,3,opt,name=seed,proto3" json:"seed,omitempty"`
}

func (m *EscrowCreate) Reset()         { *m = EscrowCreate{} }
func (m *EscrowCreate) String() string { return proto.CompactTextString(m) }
func (*EscrowCreate) ProtoMessage()    {}

// GetGameId get gameId
func (m *EscrowCreate) GetGameId() uint64 {
	if m != nil {
		return m.GameId
	}
	return 0
}

// GetStakeAmount get stakeAmount
func (m *EscrowCreate) GetStakeAmount() int64 {
	if m != nil {
		return m.StakeAmount
	}
	return 0
}

// GetSeed get seed
func (m *EscrowCreate) GetSeed() uint64 {
	if m != nil {
		return m.Seed
	}
	return 0
}

// EscrowJoin join_game, From 为空时使用交易发起人的账户
type EscrowJoin struct {
	GameId uint64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	From   string `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	Vault  string `protobuf:"bytes,3,opt,name=vault,proto3" json:"vault,omitempty"`
}

func (m *EscrowJoin) Reset()         { *m = EscrowJoin{} }
func (m *EscrowJoin) String() string { return proto.CompactTextString(m) }
func (*EscrowJoin) ProtoMessage()    {}

// GetGameId get gameId
func (m *EscrowJoin) GetGameId() uint64 {
	if m != nil {
		return m.GameId
	}
	return 0
}

// GetFrom get from
func (m *EscrowJoin) GetFrom() string {
	if m != nil {
		return m.From
	}
	return ""
}

// GetVault get vault
func (m *EscrowJoin) GetVault() string {
	if m != nil {
		return m.Vault
	}
	return ""
}

// EscrowStake stake_tokens
type EscrowStake struct {
	GameId uint64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	From   string `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	Vault  string `protobuf:"bytes,3,opt,name=vault,proto3" json:"vault,omitempty"`
}

func (m *EscrowStake) Reset()         { *m = EscrowStake{} }
func (m *EscrowStake) String() string { return proto.CompactTextString(m) }
func (*EscrowStake) ProtoMessage()    {}

// GetGameId get gameId
func (m *EscrowStake) GetGameId() uint64 {
	if m != nil {
		return m.GameId
	}
	return 0
}

// GetFrom get from
func (m *EscrowStake) GetFrom() string {
	if m != nil {
		return m.From
	}
	return ""
}

// GetVault get vault
func (m *EscrowStake) GetVault() string {
	if m != nil {
		return m.Vault
	}
	return ""
}

// EscrowFinalize finalize_game, WinnerAccount 为空时使用 Winner 地址
type EscrowFinalize struct {
	GameId        uint64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Winner        string `protobuf:"bytes,2,opt,name=winner,proto3" json:"winner,omitempty"`
	Vault         string `protobuf:"bytes,3,opt,name=vault,proto3" json:"vault,omitempty"`
	WinnerAccount string `protobuf:"bytes,4,opt,name=winnerAccount,proto3" json:"winnerAccount,omitempty"`
}

func (m *EscrowFinalize) Reset()         { *m = EscrowFinalize{} }
func (m *EscrowFinalize) String() string { return proto.CompactTextString(m) }
func (*EscrowFinalize) ProtoMessage()    {}

// GetGameId get gameId
func (m *EscrowFinalize) GetGameId() uint64 {
	if m != nil {
		return m.GameId
	}
	return 0
}

// GetWinner get winner
func (m *EscrowFinalize) GetWinner() string {
	if m != nil {
		return m.Winner
	}
	return ""
}

// GetVault get vault
func (m *EscrowFinalize) GetVault() string {
	if m != nil {
		return m.Vault
	}
	return ""
}

// GetWinnerAccount get winnerAccount
func (m *EscrowFinalize) GetWinnerAccount() string {
	if m != nil {
		return m.WinnerAccount
	}
	return ""
}

// Game 每局游戏在状态数据库中的记录
type Game struct {
	GameId         uint64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Player1        string `protobuf:"bytes,2,opt,name=player1,proto3" json:"player1,omitempty"`
	Player2        string `protobuf:"bytes,3,opt,name=player2,proto3" json:"player2,omitempty"`
	StakeAmount    int64  `protobuf:"varint,4,opt,name=stakeAmount,proto3" json:"stakeAmount,omitempty"`
	TotalPot       int64  `protobuf:"varint,5,opt,name=totalPot,proto3" json:"totalPot,omitempty"`
	Seed           uint64 `protobuf:"varint,6,opt,name=seed,proto3" json:"seed,omitempty"`
	Status         int32  `protobuf:"varint,7,opt,name=status,proto3" json:"status,omitempty"`
	Winner         string `protobuf:"bytes,8,opt,name=winner,proto3" json:"winner,omitempty"`
	AuthorityBump  uint32 `protobuf:"varint,9,opt,name=authorityBump,proto3" json:"authorityBump,omitempty"`
	Address        string `protobuf:"bytes,10,opt,name=address,proto3" json:"address,omitempty"`
	Vault          string `protobuf:"bytes,11,opt,name=vault,proto3" json:"vault,omitempty"`
	CreateTime     int64  `protobuf:"varint,12,opt,name=createTime,proto3" json:"createTime,omitempty"`
	JoinTime       int64  `protobuf:"varint,13,opt,name=joinTime,proto3" json:"joinTime,omitempty"`
	FinalizeTime   int64  `protobuf:"varint,14,opt,name=finalizeTime,proto3" json:"finalizeTime,omitempty"`
	CreateTxHash   string `protobuf:"bytes,15,opt,name=createTxHash,proto3" json:"createTxHash,omitempty"`
	JoinTxHash     string `protobuf:"bytes,16,opt,name=joinTxHash,proto3" json:"joinTxHash,omitempty"`
	FinalizeTxHash string `protobuf:"bytes,17,opt,name=finalizeTxHash,proto3" json:"finalizeTxHash,omitempty"`
	Index          int64  `protobuf:"varint,18,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex      int64  `protobuf:"varint,19,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
}

func (m *Game) Reset()         { *m = Game{} }
func (m *Game) String() string { return proto.CompactTextString(m) }
func (*Game) ProtoMessage()    {}

// GetGameId get gameId
func (m *Game) GetGameId() uint64 {
	if m != nil {
		return m.GameId
	}
	return 0
}

// GetPlayer1 get player1
func (m *Game) GetPlayer1() string {
	if m != nil {
		return m.Player1
	}
	return ""
}

// GetPlayer2 get player2
func (m *Game) GetPlayer2() string {
	if m != nil {
		return m.Player2
	}
	return ""
}

// GetStakeAmount get stakeAmount
func (m *Game) GetStakeAmount() int64 {
	if m != nil {
		return m.StakeAmount
	}
	return 0
}

// GetTotalPot get totalPot
func (m *Game) GetTotalPot() int64 {
	if m != nil {
		return m.TotalPot
	}
	return 0
}

// GetSeed get seed
func (m *Game) GetSeed() uint64 {
	if m != nil {
		return m.Seed
	}
	return 0
}

// GetStatus get status
func (m *Game) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

// GetWinner get winner
func (m *Game) GetWinner() string {
	if m != nil {
		return m.Winner
	}
	return ""
}

// GetAuthorityBump get authorityBump
func (m *Game) GetAuthorityBump() uint32 {
	if m != nil {
		return m.AuthorityBump
	}
	return 0
}

// GetAddress get address
func (m *Game) GetAddress() string {
	if m != nil {
		return m.Address
	}
	return ""
}

// GetVault get vault
func (m *Game) GetVault() string {
	if m != nil {
		return m.Vault
	}
	return ""
}

// GetCreateTime get createTime
func (m *Game) GetCreateTime() int64 {
	if m != nil {
		return m.CreateTime
	}
	return 0
}

// GetJoinTime get joinTime
func (m *Game) GetJoinTime() int64 {
	if m != nil {
		return m.JoinTime
	}
	return 0
}

// GetFinalizeTime get finalizeTime
func (m *Game) GetFinalizeTime() int64 {
	if m != nil {
		return m.FinalizeTime
	}
	return 0
}

// GetCreateTxHash get createTxHash
func (m *Game) GetCreateTxHash() string {
	if m != nil {
		return m.CreateTxHash
	}
	return ""
}

// GetJoinTxHash get joinTxHash
func (m *Game) GetJoinTxHash() string {
	if m != nil {
		return m.JoinTxHash
	}
	return ""
}

// GetFinalizeTxHash get finalizeTxHash
func (m *Game) GetFinalizeTxHash() string {
	if m != nil {
		return m.FinalizeTxHash
	}
	return ""
}

// GetIndex get index
func (m *Game) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// GetPrevIndex get prevIndex
func (m *Game) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

// ReceiptEscrow 状态变化的日志, 本地索引根据它来更新
type ReceiptEscrow struct {
	GameId     uint64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Status     int32  `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	PrevStatus int32  `protobuf:"varint,3,opt,name=prevStatus,proto3" json:"prevStatus,omitempty"`
	Addr       string `protobuf:"bytes,4,opt,name=addr,proto3" json:"addr,omitempty"`
	Player1    string `protobuf:"bytes,5,opt,name=player1,proto3" json:"player1,omitempty"`
	Player2    string `protobuf:"bytes,6,opt,name=player2,proto3" json:"player2,omitempty"`
	Amount     int64  `protobuf:"varint,7,opt,name=amount,proto3" json:"amount,omitempty"`
	Index      int64  `protobuf:"varint,8,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex  int64  `protobuf:"varint,9,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
}

func (m *ReceiptEscrow) Reset()         { *m = ReceiptEscrow{} }
func (m *ReceiptEscrow) String() string { return proto.CompactTextString(m) }
func (*ReceiptEscrow) ProtoMessage()    {}

// GetGameId get gameId
func (m *ReceiptEscrow) GetGameId() uint64 {
	if m != nil {
		return m.GameId
	}
	return 0
}

// GetStatus get status
func (m *ReceiptEscrow) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

// GetPrevStatus get prevStatus
func (m *ReceiptEscrow) GetPrevStatus() int32 {
	if m != nil {
		return m.PrevStatus
	}
	return 0
}

// GetAddr get addr
func (m *ReceiptEscrow) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// GetPlayer1 get player1
func (m *ReceiptEscrow) GetPlayer1() string {
	if m != nil {
		return m.Player1
	}
	return ""
}

// GetPlayer2 get player2
func (m *ReceiptEscrow) GetPlayer2() string {
	if m != nil {
		return m.Player2
	}
	return ""
}

// GetAmount get amount
func (m *ReceiptEscrow) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

// GetIndex get index
func (m *ReceiptEscrow) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// GetPrevIndex get prevIndex
func (m *ReceiptEscrow) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

// EscrowRecord 本地索引的值
type EscrowRecord struct {
	GameId uint64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Index  int64  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *EscrowRecord) Reset()         { *m = EscrowRecord{} }
func (m *EscrowRecord) String() string { return proto.CompactTextString(m) }
func (*EscrowRecord) ProtoMessage()    {}

// GetGameId get gameId
func (m *EscrowRecord) GetGameId() uint64 {
	if m != nil {
		return m.GameId
	}
	return 0
}

// GetIndex get index
func (m *EscrowRecord) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// QueryGameInfo 按 id 查询
type QueryGameInfo struct {
	GameId uint64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
}

func (m *QueryGameInfo) Reset()         { *m = QueryGameInfo{} }
func (m *QueryGameInfo) String() string { return proto.CompactTextString(m) }
func (*QueryGameInfo) ProtoMessage()    {}

// GetGameId get gameId
func (m *QueryGameInfo) GetGameId() uint64 {
	if m != nil {
		return m.GameId
	}
	return 0
}

type QueryGameInfos struct {
	GameIds []uint64 `protobuf:"varint,1,rep,packed,name=gameIds,proto3" json:"gameIds,omitempty"`
}

func (m *QueryGameInfos) Reset()         { *m = QueryGameInfos{} }
func (m *QueryGameInfos) String() string { return proto.CompactTextString(m) }
func (*QueryGameInfos) ProtoMessage()    {}

// GetGameIds get gameIds
func (m *QueryGameInfos) GetGameIds() []uint64 {
	if m != nil {
		return m.GameIds
	}
	return nil
}

type ReplyGameList struct {
	Games []*Game `protobuf:"bytes,1,rep,name=games,proto3" json:"games,omitempty"`
}

func (m *ReplyGameList) Reset()         { *m = ReplyGameList{} }
func (m *ReplyGameList) String() string { return proto.CompactTextString(m) }
func (*ReplyGameList) ProtoMessage()    {}

// GetGames get games
func (m *ReplyGameList) GetGames() []*Game {
	if m != nil {
		return m.Games
	}
	return nil
}

// ReqListGames 按状态(以及地址)分页查询, Index 为上一页最后一条记录的 Index
type ReqListGames struct {
	Status    int32  `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Addr      string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Count     int32  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,4,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,5,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqListGames) Reset()         { *m = ReqListGames{} }
func (m *ReqListGames) String() string { return proto.CompactTextString(m) }
func (*ReqListGames) ProtoMessage()    {}

// GetStatus get status
func (m *ReqListGames) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

// GetAddr get addr
func (m *ReqListGames) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// GetCount get count
func (m *ReqListGames) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

// GetDirection get direction
func (m *ReqListGames) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

// GetIndex get index
func (m *ReqListGames) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

type ReqGameCount struct {
	Status int32  `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Addr   string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqGameCount) Reset()         { *m = ReqGameCount{} }
func (m *ReqGameCount) String() string { return proto.CompactTextString(m) }
func (*ReqGameCount) ProtoMessage()    {}

// GetStatus get status
func (m *ReqGameCount) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

// GetAddr get addr
func (m *ReqGameCount) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// ReplyVault 金库的实际余额, Excess 为超过 TotalPot 的部分
type ReplyVault struct {
	GameId   uint64 `protobuf:"varint,1,opt,name=gameId,proto3" json:"gameId,omitempty"`
	Vault    string `protobuf:"bytes,2,opt,name=vault,proto3" json:"vault,omitempty"`
	Owner    string `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
	Balance  int64  `protobuf:"varint,4,opt,name=balance,proto3" json:"balance,omitempty"`
	TotalPot int64  `protobuf:"varint,5,opt,name=totalPot,proto3" json:"totalPot,omitempty"`
	Excess   int64  `protobuf:"varint,6,opt,name=excess,proto3" json:"excess,omitempty"`
}

func (m *ReplyVault) Reset()         { *m = ReplyVault{} }
func (m *ReplyVault) String() string { return proto.CompactTextString(m) }
func (*ReplyVault) ProtoMessage()    {}

// GetGameId get gameId
func (m *ReplyVault) GetGameId() uint64 {
	if m != nil {
		return m.GameId
	}
	return 0
}

// GetVault get vault
func (m *ReplyVault) GetVault() string {
	if m != nil {
		return m.Vault
	}
	return ""
}

// GetOwner get owner
func (m *ReplyVault) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

// GetBalance get balance
func (m *ReplyVault) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

// GetTotalPot get totalPot
func (m *ReplyVault) GetTotalPot() int64 {
	if m != nil {
		return m.TotalPot
	}
	return 0
}

// GetExcess get excess
func (m *ReplyVault) GetExcess() int64 {
	if m != nil {
		return m.Excess
	}
	return 0
}
