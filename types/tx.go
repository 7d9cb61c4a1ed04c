// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math/rand"
	"sync"
	"time"

	"github.com/dontclickthat/escrow/common"
	"github.com/dontclickthat/escrow/common/address"
	"github.com/dontclickthat/escrow/common/crypto"
	// 注册默认的签名算法
	_ "github.com/dontclickthat/escrow/common/crypto/secp256k1"
)

var (
	randMu  sync.Mutex
	nonceRd = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func newNonce() int64 {
	randMu.Lock()
	defer randMu.Unlock()
	return nonceRd.Int63()
}

//CreateFormatTx 构造发往执行器的交易, To 固定为执行器地址
func CreateFormatTx(execer string, payload []byte) (*Transaction, error) {
	if len(payload) > MaxTxSize {
		return nil, ErrTxMsgSizeTooBig
	}
	tx := &Transaction{
		Execer:  []byte(execer),
		Payload: payload,
		Nonce:   newNonce(),
		To:      address.ExecAddress(execer),
	}
	return tx, nil
}

//Hash 交易的hash, 不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	return common.Sha256(data)
}

//Size 交易大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

//Sign 交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

//CheckSign 检查交易签名
func (tx *Transaction) CheckSign() bool {
	copytx := *tx
	copytx.Signature = nil
	data := Encode(&copytx)
	if tx.GetSignature() == nil {
		return false
	}
	return CheckSign(data, tx.GetSignature())
}

//CheckSign 验证签名
func CheckSign(data []byte, sign *Signature) bool {
	c, err := crypto.Load(sign.GetTy())
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(sign.Pubkey)
	if err != nil {
		return false
	}
	signbytes, err := c.SignatureFromBytes(sign.Signature)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, signbytes)
}

//IsExpire 交易是否过期, Expire 为 0 表示永不过期, 否则为过期的时间戳
func (tx *Transaction) IsExpire(blocktime int64) bool {
	if tx.Expire == 0 {
		return false
	}
	return blocktime > tx.Expire
}

//From 交易from地址
func (tx *Transaction) From() string {
	return address.PubKeyToAddr(tx.GetSignature().GetPubkey())
}

//ActionName 交易的 action 名称
func (tx *Transaction) ActionName() string {
	ety := LoadExecutorType(string(tx.Execer))
	if ety == nil {
		return "unknown"
	}
	return ety.ActionName(tx)
}
