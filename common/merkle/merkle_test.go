// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merkle

import (
	"testing"

	"github.com/dontclickthat/escrow/common"
	"github.com/dontclickthat/escrow/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaves(n int) [][]byte {
	var hashes [][]byte
	for i := 0; i < n; i++ {
		hashes = append(hashes, common.Sha256([]byte{byte(i)}))
	}
	return hashes
}

func TestMerkleRoot(t *testing.T) {
	assert.Nil(t, GetMerkleRoot(nil))

	one := leaves(1)
	assert.Equal(t, one[0], GetMerkleRoot(one))

	two := leaves(2)
	assert.Equal(t, GetHashFromTwoHash(two[0], two[1]), GetMerkleRoot(two))

	three := leaves(3)
	expect := GetHashFromTwoHash(GetHashFromTwoHash(three[0], three[1]), GetHashFromTwoHash(three[2], three[2]))
	assert.Equal(t, expect, GetMerkleRoot(three))
}

func TestMerkleMutated(t *testing.T) {
	three := leaves(3)
	root, mutated := GetMerkleRootMutated(three)
	assert.False(t, mutated)

	four := append(leaves(3), three[2])
	root2, mutated := GetMerkleRootMutated(four)
	assert.True(t, mutated)
	assert.Equal(t, root, root2)
}

func TestMerkleBranch(t *testing.T) {
	for n := 1; n <= 9; n++ {
		hashes := leaves(n)
		root := GetMerkleRoot(hashes)
		for i := 0; i < n; i++ {
			branch := GetMerkleBranch(hashes, uint32(i))
			assert.Equal(t, root, GetMerkleRootFromBranch(branch, hashes[i], uint32(i)), "n=%d i=%d", n, i)
		}
		assert.Nil(t, GetMerkleBranch(hashes, uint32(n)))
	}
}

func TestCalcMerkleRoot(t *testing.T) {
	assert.Equal(t, make([]byte, 32), CalcMerkleRoot(nil))

	tx1, err := types.CreateFormatTx("coins", []byte("1"))
	require.NoError(t, err)
	tx2, err := types.CreateFormatTx("coins", []byte("2"))
	require.NoError(t, err)
	root := CalcMerkleRoot([]*types.Transaction{tx1, tx2})
	assert.Equal(t, GetHashFromTwoHash(tx1.Hash(), tx2.Hash()), root)
	assert.NotEqual(t, root, CalcMerkleRoot([]*types.Transaction{tx2, tx1}))
}
