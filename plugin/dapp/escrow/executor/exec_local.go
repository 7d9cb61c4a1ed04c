// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	et "github.com/dontclickthat/escrow/plugin/dapp/escrow/types"
	"github.com/dontclickthat/escrow/types"
)

/*
 本地索引:
   状态索引     key = LODB-escrow-status:<status>:<HeightIndex>
   状态地址索引 key = LODB-escrow-addr:<status>:<addr>:<HeightIndex>
   value = EscrowRecord{GameId, Index}
 状态变化时删除旧状态下的索引, 以免形成脏数据. stake 不改变状态, 不更新索引.
*/

// ExecLocal_Create create
func (e *Escrow) ExecLocal_Create(payload *et.EscrowCreate, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return e.execLocal(receipt)
}

// ExecLocal_Join join
func (e *Escrow) ExecLocal_Join(payload *et.EscrowJoin, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return e.execLocal(receipt)
}

// ExecLocal_Finalize finalize
func (e *Escrow) ExecLocal_Finalize(payload *et.EscrowFinalize, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return e.execLocal(receipt)
}

func (e *Escrow) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.GetLogs() {
		if item.Ty != et.TyLogEscrowCreate && item.Ty != et.TyLogEscrowJoin && item.Ty != et.TyLogEscrowFinalize {
			continue
		}
		var rlog et.ReceiptEscrow
		if err := types.Decode(item.Log, &rlog); err != nil {
			panic(err) //数据错误了，已经被修改了
		}
		set.KV = append(set.KV, updateIndex(&rlog)...)
	}
	return set, nil
}

func updateIndex(log *et.ReceiptEscrow) (kvs []*types.KeyValue) {
	switch log.Status {
	case et.StatusWaitingForPlayer:
		kvs = append(kvs, addStatusIndex(log.Status, log.GameId, log.Index))
		kvs = append(kvs, addAddrIndex(log.Status, log.GameId, log.Player1, log.Index))
	case et.StatusInProgress:
		kvs = append(kvs, delStatusIndex(log.PrevStatus, log.PrevIndex))
		kvs = append(kvs, delAddrIndex(log.PrevStatus, log.Player1, log.PrevIndex))
		kvs = append(kvs, addStatusIndex(log.Status, log.GameId, log.Index))
		kvs = append(kvs, addAddrIndex(log.Status, log.GameId, log.Player1, log.Index))
		if log.Player2 != log.Player1 {
			kvs = append(kvs, addAddrIndex(log.Status, log.GameId, log.Player2, log.Index))
		}
	case et.StatusFinished:
		kvs = append(kvs, delStatusIndex(log.PrevStatus, log.PrevIndex))
		kvs = append(kvs, delAddrIndex(log.PrevStatus, log.Player1, log.PrevIndex))
		kvs = append(kvs, addStatusIndex(log.Status, log.GameId, log.Index))
		kvs = append(kvs, addAddrIndex(log.Status, log.GameId, log.Player1, log.Index))
		if log.Player2 != log.Player1 {
			kvs = append(kvs, delAddrIndex(log.PrevStatus, log.Player2, log.PrevIndex))
			kvs = append(kvs, addAddrIndex(log.Status, log.GameId, log.Player2, log.Index))
		}
	}
	return kvs
}

func calcStatusIndexKey(status int32, index int64) []byte {
	return types.CalcLocalKey(et.ExecerEscrow, []byte(fmt.Sprintf("status:%d:%018d", status, index)))
}

func calcStatusIndexPrefix(status int32) []byte {
	return types.CalcLocalKey(et.ExecerEscrow, []byte(fmt.Sprintf("status:%d:", status)))
}

func calcAddrIndexKey(status int32, addr string, index int64) []byte {
	return types.CalcLocalKey(et.ExecerEscrow, []byte(fmt.Sprintf("addr:%d:%s:%018d", status, addr, index)))
}

func calcAddrIndexPrefix(status int32, addr string) []byte {
	return types.CalcLocalKey(et.ExecerEscrow, []byte(fmt.Sprintf("addr:%d:%s:", status, addr)))
}

func addStatusIndex(status int32, gameID uint64, index int64) *types.KeyValue {
	record := &et.EscrowRecord{GameId: gameID, Index: index}
	return &types.KeyValue{Key: calcStatusIndexKey(status, index), Value: types.Encode(record)}
}

func addAddrIndex(status int32, gameID uint64, addr string, index int64) *types.KeyValue {
	record := &et.EscrowRecord{GameId: gameID, Index: index}
	return &types.KeyValue{Key: calcAddrIndexKey(status, addr, index), Value: types.Encode(record)}
}

func delStatusIndex(status int32, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcStatusIndexKey(status, index), Value: nil}
}

//value置nil,提交时，会自动执行删除操作
func delAddrIndex(status int32, addr string, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcAddrIndexKey(status, addr, index), Value: nil}
}
