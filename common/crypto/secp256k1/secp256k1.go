// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package secp256k1 玩家以及裁判签名交易使用的 secp256k1 算法
package secp256k1

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/dontclickthat/escrow/common"
	"github.com/dontclickthat/escrow/common/crypto"
	"github.com/pkg/errors"
)

//const
const (
	Name = "secp256k1"
	ID   = int32(1)

	privKeyLen = 32
	pubKeyLen  = 33
)

var (
	errPrivKeyLen = errors.New("invalid priv key byte")
	errPubKeyLen  = errors.New("invalid pub key byte")
)

func init() {
	crypto.Register(Name, Driver{}, ID)
}

//Driver 驱动
type Driver struct{}

//GenKey 生成私钥
func (Driver) GenKey() (crypto.PrivKey, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "secp256k1 gen key")
	}
	return newPrivKey(priv), nil
}

//PrivKeyFromBytes 32 字节的私钥
func (Driver) PrivKeyFromBytes(b []byte) (crypto.PrivKey, error) {
	if len(b) != privKeyLen {
		return nil, errPrivKeyLen
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return newPrivKey(priv), nil
}

//PubKeyFromBytes 33 字节的压缩公钥, 必须是曲线上的点
func (Driver) PubKeyFromBytes(b []byte) (crypto.PubKey, error) {
	if len(b) != pubKeyLen {
		return nil, errPubKeyLen
	}
	if _, err := btcec.ParsePubKey(b); err != nil {
		return nil, errors.Wrap(err, "secp256k1 parse pub key")
	}
	var pub PubKeySecp256k1
	copy(pub[:], b)
	return pub, nil
}

//SignatureFromBytes DER 编码的签名
func (Driver) SignatureFromBytes(b []byte) (crypto.Signature, error) {
	return SignatureSecp256k1(common.CopyBytes(b)), nil
}

//PrivKeySecp256k1 PrivKey
type PrivKeySecp256k1 [privKeyLen]byte

func newPrivKey(priv *btcec.PrivateKey) PrivKeySecp256k1 {
	var key PrivKeySecp256k1
	copy(key[:], priv.Serialize())
	return key
}

//Bytes 字节格式
func (key PrivKeySecp256k1) Bytes() []byte {
	return common.CopyBytes(key[:])
}

//Sign 对 sha256(msg) 签名
func (key PrivKeySecp256k1) Sign(msg []byte) crypto.Signature {
	priv, _ := btcec.PrivKeyFromBytes(key[:])
	return SignatureSecp256k1(ecdsa.Sign(priv, common.Sha256(msg)).Serialize())
}

//PubKey 私钥生成公钥
func (key PrivKeySecp256k1) PubKey() crypto.PubKey {
	_, pub := btcec.PrivKeyFromBytes(key[:])
	var pubkey PubKeySecp256k1
	copy(pubkey[:], pub.SerializeCompressed())
	return pubkey
}

func (key PrivKeySecp256k1) String() string {
	return "PrivKeySecp256k1{*****}"
}

// PubKeySecp256k1 压缩公钥, 0x02 或者 0x03 开头
type PubKeySecp256k1 [pubKeyLen]byte

//Bytes 字节格式
func (pubKey PubKeySecp256k1) Bytes() []byte {
	return common.CopyBytes(pubKey[:])
}

//VerifyBytes 验证 sha256(msg) 的签名
func (pubKey PubKeySecp256k1) VerifyBytes(msg []byte, sig crypto.Signature) bool {
	sigSecp, ok := sig.(SignatureSecp256k1)
	if !ok {
		return false
	}
	pub, err := btcec.ParsePubKey(pubKey[:])
	if err != nil {
		return false
	}
	signature, err := ecdsa.ParseDERSignature(sigSecp)
	if err != nil {
		return false
	}
	return signature.Verify(common.Sha256(msg), pub)
}

func (pubKey PubKeySecp256k1) String() string {
	return fmt.Sprintf("PubKeySecp256k1{%X}", pubKey[:])
}

//SignatureSecp256k1 签名
type SignatureSecp256k1 []byte

//Bytes 字节格式
func (sig SignatureSecp256k1) Bytes() []byte {
	return common.CopyBytes(sig)
}
