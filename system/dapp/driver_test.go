// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dontclickthat/escrow/common/db"
	"github.com/dontclickthat/escrow/common/db/local"
	"github.com/dontclickthat/escrow/types"
	proto "github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errEcho = errors.New("ErrEcho")

type echoPing struct {
	Msg string `protobuf:"bytes,1,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (m *echoPing) Reset()         { *m = echoPing{} }
func (m *echoPing) String() string { return proto.CompactTextString(m) }
func (*echoPing) ProtoMessage()    {}

type echoAction struct {
	Ty   int32     `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Ping *echoPing `protobuf:"bytes,2,opt,name=ping,proto3" json:"ping,omitempty"`
	Pong *echoPing `protobuf:"bytes,3,opt,name=pong,proto3" json:"pong,omitempty"`
}

func (m *echoAction) Reset()         { *m = echoAction{} }
func (m *echoAction) String() string { return proto.CompactTextString(m) }
func (*echoAction) ProtoMessage()    {}

func (m *echoAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *echoAction) GetPing() *echoPing {
	if m != nil {
		return m.Ping
	}
	return nil
}

func (m *echoAction) GetPong() *echoPing {
	if m != nil {
		return m.Pong
	}
	return nil
}

type echoType struct {
	types.ExecTypeBase
}

func newEchoType() *echoType {
	c := &echoType{}
	c.SetChild(c)
	return c
}

func (e *echoType) GetPayload() types.Message { return &echoAction{} }

func (e *echoType) GetTypeMap() map[string]int32 {
	return map[string]int32{"Ping": 1, "Pong": 2, "Missing": 3}
}

func (e *echoType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		100: {Ty: reflect.TypeOf(echoPing{}), Name: "LogPing"},
	}
}

type echo struct {
	DriverBase
}

func newEcho() Driver {
	e := &echo{}
	e.SetChild(e)
	e.SetExecutorType(newEchoType())
	return e
}

func (e *echo) GetDriverName() string { return "echo" }

func (e *echo) Exec_Ping(ping *echoPing, tx *types.Transaction, index int) (*types.Receipt, error) {
	if ping.Msg == "" {
		return nil, errEcho
	}
	key := []byte("mavl-echo-" + ping.Msg)
	err := e.GetStateDB().Set(key, []byte(ping.Msg))
	if err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{{Key: key, Value: []byte(ping.Msg)}}}, nil
}

func (e *echo) Exec_Pong(ping *echoPing, tx *types.Transaction, index int) (*types.Receipt, error) {
	panic("pong")
}

func (e *echo) ExecLocal_Ping(ping *echoPing, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{KV: []*types.KeyValue{{Key: []byte("LODB-echo-" + ping.Msg), Value: []byte("1")}}}, nil
}

func (e *echo) Query_GetPing(in *echoPing) (types.Message, error) {
	v, err := e.GetStateDB().Get([]byte("mavl-echo-" + in.Msg))
	if err != nil {
		return nil, err
	}
	return &echoPing{Msg: string(v)}, nil
}

func init() {
	Register("echo", newEcho)
	types.RegistorExecutor("echo", newEchoType())
}

func newEchoTx(t *testing.T, action *echoAction) *types.Transaction {
	tx, err := types.CreateFormatTx("echo", types.Encode(action))
	require.NoError(t, err)
	return tx
}

func newEchoDriver(t *testing.T) (Driver, *local.DB) {
	driver, err := LoadDriver("echo")
	require.NoError(t, err)
	memdb, err := db.NewGoMemDB("", "", 0)
	require.NoError(t, err)
	statedb := local.NewLocalDB(memdb, false)
	driver.SetStateDB(statedb)
	driver.SetLocalDB(statedb)
	return driver, statedb
}

func TestRegister(t *testing.T) {
	_, err := LoadDriver("nodriver")
	assert.Equal(t, types.ErrUnRegistedDriver, err)
	assert.Panics(t, func() { Register("echo", newEcho) })
	assert.Panics(t, func() { Register("echo2", nil) })
	assert.True(t, IsDriverAddress(ExecAddress("echo")))
	assert.NoError(t, CheckAddress(ExecAddress("echo")))
	assert.Contains(t, DriverNames(), "echo")
}

func TestDriverExec(t *testing.T) {
	driver, statedb := newEchoDriver(t)
	tx := newEchoTx(t, &echoAction{Ty: 1, Ping: &echoPing{Msg: "hello"}})
	require.NoError(t, driver.CheckTx(tx, 0))
	assert.Equal(t, "ping", driver.GetActionName(tx))

	receipt, err := driver.Exec(tx, 0)
	require.NoError(t, err)
	require.Equal(t, 1, len(receipt.KV))
	v, err := statedb.Get([]byte("mavl-echo-hello"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), v)

	set, err := driver.ExecLocal(tx, &types.ReceiptData{Ty: types.ExecOk}, 0)
	require.NoError(t, err)
	require.Equal(t, 1, len(set.KV))

	reply, err := driver.Query("GetPing", types.Encode(&echoPing{Msg: "hello"}))
	require.NoError(t, err)
	assert.Equal(t, "hello", reply.(*echoPing).Msg)
	_, err = driver.Query("NoQuery", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestDriverExecError(t *testing.T) {
	driver, _ := newEchoDriver(t)
	_, err := driver.Exec(newEchoTx(t, &echoAction{Ty: 1, Ping: &echoPing{}}), 0)
	assert.Equal(t, errEcho, err)

	//panic 被转换为错误
	_, err = driver.Exec(newEchoTx(t, &echoAction{Ty: 2, Pong: &echoPing{Msg: "x"}}), 0)
	assert.Equal(t, types.ErrActionNotSupport, err)

	//没有对应的 action
	_, err = driver.Exec(newEchoTx(t, &echoAction{Ty: 3}), 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
	_, err = driver.Exec(newEchoTx(t, &echoAction{Ty: 9}), 0)
	assert.Equal(t, types.ErrActionNotSupport, err)

	//没有实现 ExecLocal_Pong 返回空集合
	set, err := driver.ExecLocal(newEchoTx(t, &echoAction{Ty: 2, Pong: &echoPing{Msg: "x"}}), &types.ReceiptData{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, len(set.KV))

	tx := newEchoTx(t, &echoAction{Ty: 1, Ping: &echoPing{Msg: "x"}})
	tx.To = ExecAddress("other")
	assert.Equal(t, types.ErrToAddrNotSameToExecAddr, driver.CheckTx(tx, 0))
}
