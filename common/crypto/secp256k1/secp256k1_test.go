// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secp256k1

import (
	"testing"

	"github.com/dontclickthat/escrow/common/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	c, err := crypto.New(Name)
	require.NoError(t, err)
	byType, err := crypto.Load(ID)
	require.NoError(t, err)
	assert.Equal(t, c, byType)
	assert.Equal(t, Name, crypto.GetName(ID))

	priv, err := c.GenKey()
	require.NoError(t, err)
	msg := []byte("hello escrow")
	sig := priv.Sign(msg)
	assert.True(t, priv.PubKey().VerifyBytes(msg, sig))
	assert.False(t, priv.PubKey().VerifyBytes([]byte("tampered"), sig))

	priv2, err := c.PrivKeyFromBytes(priv.Bytes())
	require.NoError(t, err)
	assert.Equal(t, priv, priv2)
	assert.Equal(t, "PrivKeySecp256k1{*****}", priv2.(PrivKeySecp256k1).String())

	pub, err := c.PubKeyFromBytes(priv.PubKey().Bytes())
	require.NoError(t, err)
	assert.Equal(t, priv.PubKey(), pub)

	sig2, err := c.SignatureFromBytes(sig.Bytes())
	require.NoError(t, err)
	assert.True(t, pub.VerifyBytes(msg, sig2))

	other, err := c.GenKey()
	require.NoError(t, err)
	assert.False(t, other.PubKey().VerifyBytes(msg, sig))
}

func TestBadKeys(t *testing.T) {
	c, err := crypto.New(Name)
	require.NoError(t, err)
	_, err = c.PrivKeyFromBytes([]byte{1, 2, 3})
	assert.Equal(t, errPrivKeyLen, err)
	_, err = c.PubKeyFromBytes([]byte{1, 2, 3})
	assert.Equal(t, errPubKeyLen, err)

	//x 坐标超出范围, 不是曲线上的点
	bad := make([]byte, pubKeyLen)
	bad[0] = 0x02
	for i := 1; i < len(bad); i++ {
		bad[i] = 0xff
	}
	_, err = c.PubKeyFromBytes(bad)
	assert.Error(t, err)

	_, err = crypto.New("nope")
	assert.Equal(t, crypto.ErrUnknownDriver, errors.Cause(err))
	_, err = crypto.Load(99)
	assert.Equal(t, crypto.ErrUnknownDriver, errors.Cause(err))
	assert.Equal(t, "unknown", crypto.GetName(99))
}
