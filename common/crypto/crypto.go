// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto 交易签名算法的接口以及注册
package crypto

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrUnknownDriver 没有注册的签名算法
var ErrUnknownDriver = errors.New("ErrUnknownDriver")

//PrivKey 私钥, 只用于交易签名
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
}

//Signature 签名
type Signature interface {
	Bytes() []byte
}

//PubKey 公钥, 交易的 from 地址由公钥计算
type PubKey interface {
	Bytes() []byte
	VerifyBytes(msg []byte, sig Signature) bool
}

//Crypto 签名算法
type Crypto interface {
	GenKey() (PrivKey, error)
	SignatureFromBytes([]byte) (Signature, error)
	PrivKeyFromBytes([]byte) (PrivKey, error)
	PubKeyFromBytes([]byte) (PubKey, error)
}

type driver struct {
	name   string
	ty     int32
	crypto Crypto
}

var (
	mu     sync.RWMutex
	byName = make(map[string]*driver)
	byType = make(map[int32]*driver)
)

//Register 注册签名算法, 名称以及类型都不能重复
func Register(name string, c Crypto, ty int32) {
	mu.Lock()
	defer mu.Unlock()
	if c == nil {
		panic("crypto: Register driver is nil")
	}
	if _, dup := byName[name]; dup {
		panic("crypto: Register called twice for driver " + name)
	}
	if _, dup := byType[ty]; dup {
		panic("crypto: Register called twice for type " + name)
	}
	d := &driver{name: name, ty: ty, crypto: c}
	byName[name] = d
	byType[ty] = d
}

//New 按名称取签名算法
func New(name string) (Crypto, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDriver, "name %s", name)
	}
	return d.crypto, nil
}

//Load 按交易签名中的类型取签名算法
func Load(ty int32) (Crypto, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := byType[ty]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDriver, "type %d", ty)
	}
	return d.crypto, nil
}

//GetName 类型对应的名称
func GetName(ty int32) string {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := byType[ty]; ok {
		return d.name
	}
	return "unknown"
}
