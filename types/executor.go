// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"strings"
	"sync"
)

// LogInfo 日志类型对应的结构以及名称
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

// ExecutorType 执行器类型, 负责交易 payload 以及日志的编解码
type ExecutorType interface {
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
}

// actionTy 所有 action 都有 Ty 字段
type actionTy interface {
	GetTy() int32
}

// ExecTypeBase 执行器类型的公共实现
type ExecTypeBase struct {
	child ExecutorType
}

// SetChild 设置具体的执行器类型
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
}

// DecodePayload 解码交易的 payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	err := Decode(tx.Payload, payload)
	if err != nil {
		return nil, ErrDecode
	}
	return payload, nil
}

// DecodePayloadValue 解码 payload, 返回 action 名称以及 Get<名称>() 取出的具体 action
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "", reflect.Value{}, err
	}
	name := base.actionName(payload)
	if name == "" {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	getter := reflect.ValueOf(payload).MethodByName("Get" + name)
	if !getter.IsValid() {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	ret := getter.Call(nil)
	if len(ret) != 1 || IsNilVal(ret[0]) {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	return name, ret[0], nil
}

func (base *ExecTypeBase) actionName(payload Message) string {
	action, ok := payload.(actionTy)
	if !ok {
		return ""
	}
	for name, ty := range base.child.GetTypeMap() {
		if ty == action.GetTy() {
			return name
		}
	}
	return ""
}

// ActionName 根据 payload 的 Ty 取 action 名称
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "unknown"
	}
	if name := base.actionName(payload); name != "" {
		return strings.ToLower(name)
	}
	return "unknown"
}

// DecodeLog 按日志类型解码日志
func (base *ExecTypeBase) DecodeLog(ty int64, data []byte) (Message, string, error) {
	info, ok := base.child.GetLogMap()[ty]
	if !ok {
		return nil, "", ErrNotSupport
	}
	msg := reflect.New(info.Ty).Interface().(Message)
	if err := Decode(data, msg); err != nil {
		return nil, "", err
	}
	return msg, info.Name, nil
}

var (
	executorTypeMu sync.RWMutex
	executorTypes  = make(map[string]ExecutorType)
)

// RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	executorTypeMu.Lock()
	defer executorTypeMu.Unlock()
	if _, exist := executorTypes[exec]; exist {
		panic("RegisterExecutor repeat")
	}
	executorTypes[exec] = util
}

// LoadExecutorType 加载执行器类型
func LoadExecutorType(execstr string) ExecutorType {
	executorTypeMu.RLock()
	defer executorTypeMu.RUnlock()
	if exec, exist := executorTypes[execstr]; exist {
		return exec
	}
	return nil
}
