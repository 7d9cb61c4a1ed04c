// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins 执行器的交易类型
package types

import (
	"github.com/dontclickthat/escrow/types"
	proto "github.com/golang/protobuf/proto"
)

// action
const (
	CoinsActionTransfer = 1
)

var (
	//CoinsX 执行器名称
	CoinsX     = types.CoinsX
	actionName = map[string]int32{
		"Transfer": CoinsActionTransfer,
	}
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsType coins 执行器类型
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetPayload 交易的 payload
func (c *CoinsType) GetPayload() types.Message {
	return &CoinsAction{}
}

// GetTypeMap action 名称
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}

// GetLogMap coins 只产生系统日志
func (c *CoinsType) GetLogMap() map[int64]*types.LogInfo {
	return nil
}

// CreateTransferTx 构造转账交易, 需要签名后才能执行
func CreateTransferTx(to string, amount int64, note string) (*types.Transaction, error) {
	action := &CoinsAction{
		Ty:       CoinsActionTransfer,
		Transfer: &CoinsTransfer{To: to, Amount: amount, Note: note},
	}
	return types.CreateFormatTx(CoinsX, types.Encode(action))
}

// CoinsAction coins 交易
type CoinsAction struct {
	Ty       int32          `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Transfer *CoinsTransfer `protobuf:"bytes,2,opt,name=transfer,proto3" json:"transfer,omitempty"`
}

func (m *CoinsAction) Reset()         { *m = CoinsAction{} }
func (m *CoinsAction) String() string { return proto.CompactTextString(m) }
func (*CoinsAction) ProtoMessage()    {}

// GetTy get ty
func (m *CoinsAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetTransfer get transfer
func (m *CoinsAction) GetTransfer() *CoinsTransfer {
	if m != nil {
		return m.Transfer
	}
	return nil
}

// CoinsTransfer 转账
type CoinsTransfer struct {
	To     string `protobuf:"bytes,1,opt,name=to,proto3" json:"to,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Note   string `protobuf:"bytes,3,opt,name=note,proto3" json:"note,omitempty"`
}

func (m *CoinsTransfer) Reset()         { *m = CoinsTransfer{} }
func (m *CoinsTransfer) String() string { return proto.CompactTextString(m) }
func (*CoinsTransfer) ProtoMessage()    {}
