// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))

	b, err := FromHex("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	b, err = FromHex("102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	b, err = FromHex("")
	require.NoError(t, err)
	assert.Empty(t, b)

	_, err = FromHex("0xzz")
	assert.Error(t, err)
}

func TestSha256(t *testing.T) {
	h := Sha256([]byte("abc"))
	assert.Equal(t, "0xba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", ToHex(h))
	sum := Sha2Sum([]byte("abc"))
	assert.Equal(t, Sha256(h), sum[:])

	rim := Rimp160AfterSha256([]byte("abc"))
	assert.Len(t, rim, 20)
	assert.NotEqual(t, rim, Rimp160AfterSha256([]byte("abd")))
}

func TestUint64ToLE(t *testing.T) {
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, Uint64ToLE(1))
	assert.Equal(t, []byte{0, 1, 0, 0, 0, 0, 0, 0}, Uint64ToLE(256))
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	src := []byte{1, 2}
	dst := CopyBytes(src)
	dst[0] = 9
	assert.Equal(t, byte(1), src[0])
}
