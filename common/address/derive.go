// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/dontclickthat/escrow/common"
	"github.com/pkg/errors"
)

var derivedMarker = []byte("ProgramDerivedAddress")

//const
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

//派生地址相关错误
var (
	ErrMaxSeedLengthExceeded = errors.New("ErrMaxSeedLengthExceeded")
	ErrInvalidSeeds          = errors.New("ErrInvalidSeeds")
	ErrBumpSeedNotFound      = errors.New("ErrBumpSeedNotFound")
	ErrOnCurve               = errors.New("ErrOnCurve")
)

// derivedPubKey 计算派生公钥候选值, 格式与压缩公钥相同(33字节)
func derivedPubKey(seeds [][]byte, bump uint8, program string) ([]byte, error) {
	if len(seeds) > MaxSeeds {
		return nil, ErrInvalidSeeds
	}
	var buf []byte
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return nil, ErrMaxSeedLengthExceeded
		}
		buf = append(buf, seed...)
	}
	buf = append(buf, bump)
	buf = append(buf, []byte(program)...)
	buf = append(buf, derivedMarker...)
	hash := common.Sha256(buf)
	pub := make([]byte, 0, 33)
	pub = append(pub, 0x02)
	return append(pub, hash...), nil
}

// isOnCurve 候选值是否是曲线上的合法公钥, 合法公钥可能存在私钥, 不能用作派生地址
func isOnCurve(pub []byte) bool {
	_, err := btcec.ParsePubKey(pub)
	return err == nil
}

// CreateDerivedAddress 按给定 bump 计算派生地址, 落在曲线上时返回错误
func CreateDerivedAddress(seeds [][]byte, bump uint8, program string) (string, error) {
	pub, err := derivedPubKey(seeds, bump, program)
	if err != nil {
		return "", err
	}
	if isOnCurve(pub) {
		return "", ErrOnCurve
	}
	return PubKeyToAddr(pub), nil
}

// DeriveAddress 从 255 往下寻找第一个不在曲线上的 bump, 返回派生地址以及 bump.
// 派生地址不对应任何私钥, 只有 program 自己可以代表它授权
func DeriveAddress(seeds [][]byte, program string) (string, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		addr, err := CreateDerivedAddress(seeds, uint8(bump), program)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if err != ErrOnCurve {
			return "", 0, err
		}
	}
	return "", 0, ErrBumpSeedNotFound
}

// GameSeeds 以小端编码的 id 构造种子
func GameSeeds(prefix string, id uint64) [][]byte {
	return [][]byte{[]byte(prefix), common.Uint64ToLE(id)}
}
