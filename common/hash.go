// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package common 哈希以及编码相关的公共函数
package common

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ripemd160"
)

//ToHex 带 0x 前缀, 空数据返回空字符串
func ToHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return "0x" + hex.EncodeToString(b)
}

//FromHex 0x 前缀可选, 奇数长度时左边补 0
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

//CopyBytes 复制, nil 返回 nil
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}

//Sha256 sha256
func Sha256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

//Sha2Sum 两次 sha256, 用于地址校验和以及执行器地址
func Sha2Sum(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

//Rimp160AfterSha256 ripemd160(sha256(b)), 公钥哈希
func Rimp160AfterSha256(b []byte) (out [20]byte) {
	sum := sha256.Sum256(b)
	rim := ripemd160.New()
	rim.Write(sum[:])
	copy(out[:], rim.Sum(nil))
	return out
}

//Uint64ToLE 小端编码, 用于派生地址的种子
func Uint64ToLE(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}
