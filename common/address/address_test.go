// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	"github.com/dontclickthat/escrow/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("escrow")
	assert.NoError(t, CheckAddress(addr))
	assert.Equal(t, addr, ExecAddress("escrow"))
	assert.NotEqual(t, addr, ExecAddress("coins"))
}

func TestCheckAddress(t *testing.T) {
	pub, err := common.FromHex("0x02504fa1c28caaf1d5a20fefb87c50a49724ff401043420cb3ba271997eb5a4387")
	require.NoError(t, err)
	addr := PubKeyToAddr(pub)
	assert.NoError(t, CheckAddress(addr))

	version, hash, err := Decode(addr)
	require.NoError(t, err)
	assert.Equal(t, Version, version)
	assert.Equal(t, addr, Encode(version, hash))
	assert.Equal(t, common.Rimp160AfterSha256(pub), hash)

	bad := []byte(addr)
	if bad[len(bad)-1] == 'z' {
		bad[len(bad)-1] = 'y'
	} else {
		bad[len(bad)-1] = 'z'
	}
	assert.Equal(t, ErrCheckChecksum, CheckAddress(string(bad)))
	assert.Equal(t, ErrAddressFormat, errors.Cause(CheckAddress("0")))
	//结果被缓存
	assert.Equal(t, ErrAddressFormat, errors.Cause(CheckAddress("0")))
}

func TestDeriveAddress(t *testing.T) {
	program := ExecAddress("escrow")
	seeds := GameSeeds("game", 1)
	addr, bump, err := DeriveAddress(seeds, program)
	require.NoError(t, err)
	assert.NoError(t, CheckAddress(addr))

	addr2, bump2, err := DeriveAddress(seeds, program)
	require.NoError(t, err)
	assert.Equal(t, addr, addr2)
	assert.Equal(t, bump, bump2)

	recreated, err := CreateDerivedAddress(seeds, bump, program)
	require.NoError(t, err)
	assert.Equal(t, addr, recreated)

	pub, err := derivedPubKey(seeds, bump, program)
	require.NoError(t, err)
	assert.False(t, isOnCurve(pub))

	other, _, err := DeriveAddress(GameSeeds("game", 2), program)
	require.NoError(t, err)
	assert.NotEqual(t, addr, other)

	vault, _, err := DeriveAddress(GameSeeds("vault", 1), program)
	require.NoError(t, err)
	assert.NotEqual(t, addr, vault)
}

func TestDeriveAddressBadSeeds(t *testing.T) {
	long := make([]byte, MaxSeedLength+1)
	_, _, err := DeriveAddress([][]byte{long}, "p")
	assert.Equal(t, ErrMaxSeedLengthExceeded, err)

	seeds := make([][]byte, MaxSeeds+1)
	_, _, err = DeriveAddress(seeds, "p")
	assert.Equal(t, ErrInvalidSeeds, err)
}
