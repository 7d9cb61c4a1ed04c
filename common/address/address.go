// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 地址的生成, 校验以及派生
//
// 地址格式: base58(version(1) + ripemd160(sha256(pubkey))(20) + checksum(4)),
// checksum 为 sha256(sha256(前 21 字节)) 的前 4 个字节
package address

import (
	"bytes"

	"github.com/decred/base58"
	"github.com/dontclickthat/escrow/common"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

//const
const (
	MaxExecNameLength = 100
	Version           = byte(0)

	hashLen = 20
	addrLen = 1 + hashLen + 4
)

//地址错误
var (
	ErrCheckChecksum = errors.New("ErrCheckChecksum")
	ErrAddressFormat = errors.New("ErrAddressFormat")
)

var (
	execSeed = []byte("address seed bytes for public key")
	//执行器地址以及地址校验结果都不会改变, 缓存起来
	execCache, _  = lru.New(1024)
	checkCache, _ = lru.New(10240)
)

//ExecAddress 执行器的地址, 由执行器名计算, 没有对应的私钥
func ExecAddress(name string) string {
	if v, ok := execCache.Get(name); ok {
		return v.(string)
	}
	if len(name) > MaxExecNameLength {
		panic("address: exec name too long " + name)
	}
	hash := common.Sha2Sum(append(common.CopyBytes(execSeed), name...))
	addr := PubKeyToAddr(hash[:])
	execCache.Add(name, addr)
	return addr
}

//PubKeyToAddr 公钥转为地址字符串
func PubKeyToAddr(pub []byte) string {
	return Encode(Version, common.Rimp160AfterSha256(pub))
}

//Encode 编码地址
func Encode(version byte, hash [hashLen]byte) string {
	raw := make([]byte, 0, addrLen)
	raw = append(raw, version)
	raw = append(raw, hash[:]...)
	sum := common.Sha2Sum(raw)
	return base58.Encode(append(raw, sum[:4]...))
}

//Decode 解码地址, 返回版本以及公钥哈希
func Decode(addr string) (byte, [hashLen]byte, error) {
	var hash [hashLen]byte
	raw := base58.Decode(addr)
	if len(raw) != addrLen {
		return 0, hash, errors.Wrapf(ErrAddressFormat, "addr %q", addr)
	}
	sum := common.Sha2Sum(raw[:1+hashLen])
	if !bytes.Equal(sum[:4], raw[1+hashLen:]) {
		return 0, hash, ErrCheckChecksum
	}
	copy(hash[:], raw[1:1+hashLen])
	return raw[0], hash, nil
}

//CheckAddress 检查地址格式以及校验和
func CheckAddress(addr string) error {
	if v, ok := checkCache.Get(addr); ok {
		if v == nil {
			return nil
		}
		return v.(error)
	}
	_, _, err := Decode(addr)
	checkCache.Add(addr, err)
	return err
}
