// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"

	"github.com/dontclickthat/escrow/types"
)

// Exec 调用子类的 Exec_<Action>(payload, tx, index) (*Receipt, error)
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	ret, err := d.callAction(types.ExecPrefix, tx, tx, index)
	if ret == nil || err != nil {
		return nil, err
	}
	receipt, ok := ret.(*types.Receipt)
	if !ok {
		return nil, types.ErrMethodReturnType
	}
	return receipt, nil
}

// ExecLocal 调用子类的 ExecLocal_<Action>(payload, tx, receipt, index), 没有实现时返回空集合
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	ret, err := d.callAction(types.ExecLocalPrefix, tx, tx, receipt, index)
	if err == types.ErrActionNotSupport {
		blog.Debug("ExecLocal not support", "exec", string(tx.Execer), "action", tx.ActionName())
		return &types.LocalDBSet{}, nil
	}
	if err != nil {
		return nil, err
	}
	set, ok := ret.(*types.LocalDBSet)
	if ret != nil && !ok {
		return nil, types.ErrMethodReturnType
	}
	if set == nil {
		set = &types.LocalDBSet{}
	}
	return set, nil
}

// callAction 解码交易的 payload, 找到 prefix+ActionName 方法并调用, panic 转换为 ErrActionNotSupport
func (d *DriverBase) callAction(prefix string, tx *types.Transaction, args ...interface{}) (ret interface{}, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call action panic", "prefix", prefix, "exec", string(tx.Execer), "info", r)
			ret, err = nil, types.ErrActionNotSupport
		}
	}()
	name, payload, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	method, ok := d.child.GetFuncMap()[prefix+name]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	return types.CallMethod(d.childValue, method, append([]interface{}{payload}, args...)...)
}

// Query 调用子类的 Query_<funcname>(in) (Message, error), params 为 protobuf 编码的 in
func (d *DriverBase) Query(funcname string, params []byte) (types.Message, error) {
	method, ok := d.child.GetFuncMap()[types.QueryPrefix+funcname]
	if !ok {
		blog.Error("query not support", "exec", d.GetName(), "func", funcname)
		return nil, types.ErrQueryNotSupport
	}
	ty := method.Type
	if ty.NumIn() != 2 || ty.In(1).Kind() != reflect.Ptr {
		return nil, types.ErrQueryNotSupport
	}
	in, ok := reflect.New(ty.In(1).Elem()).Interface().(types.Message)
	if !ok {
		return nil, types.ErrQueryNotSupport
	}
	if err := types.Decode(params, in); err != nil {
		return nil, types.ErrDecode
	}
	ret, err := types.CallMethod(d.childValue, method, in)
	if err != nil {
		return nil, err
	}
	reply, ok := ret.(types.Message)
	if !ok {
		//返回值为空也认为不支持
		return nil, types.ErrActionNotSupport
	}
	return reply, nil
}

// GetPrefixCount 本地数据库中前缀下 key 的数量
func (d *DriverBase) GetPrefixCount(prefix []byte) types.Message {
	return &types.Int64{Data: d.GetLocalDB().PrefixCount(prefix)}
}
