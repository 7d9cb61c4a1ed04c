// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package merkle 区块中交易的 merkle 树
package merkle

import (
	"bytes"

	"github.com/dontclickthat/escrow/common"
	"github.com/dontclickthat/escrow/types"
)

/*
 每一层节点数为奇数时复制最后一个节点, 与比特币相同.
 这样 [1,2,3] 和 [1,2,3,3] 的 roothash 相同 (CVE-2012-2459),
 GetMerkleRootMutated 返回的 mutated 用来检查这种情况.
*/

//GetHashFromTwoHash 左右节点的父节点 hash, double sha256
func GetHashFromTwoHash(left []byte, right []byte) []byte {
	if left == nil || right == nil {
		return nil
	}
	parent := make([]byte, 0, len(left)+len(right))
	parent = append(parent, left...)
	parent = append(parent, right...)
	hash := common.Sha2Sum(parent)
	return hash[:]
}

func nextLevel(level [][]byte) (parents [][]byte, mutated bool) {
	for i := 0; i < len(level); i += 2 {
		left := level[i]
		right := left
		if i+1 < len(level) {
			right = level[i+1]
			if bytes.Equal(left, right) {
				mutated = true
			}
		}
		parents = append(parents, GetHashFromTwoHash(left, right))
	}
	return parents, mutated
}

//GetMerkleRootMutated roothash, 以及是否存在相邻的重复节点
func GetMerkleRootMutated(leaves [][]byte) (roothash []byte, mutated bool) {
	if len(leaves) == 0 {
		return nil, false
	}
	level := leaves
	for len(level) > 1 {
		var m bool
		level, m = nextLevel(level)
		mutated = mutated || m
	}
	return level[0], mutated
}

//GetMerkleRoot 获取merkle roothash
func GetMerkleRoot(leaves [][]byte) (roothash []byte) {
	roothash, _ = GetMerkleRootMutated(leaves)
	return roothash
}

//GetMerkleBranch 获取指定 position 的 branch, position 从0开始
func GetMerkleBranch(leaves [][]byte, position uint32) (branch [][]byte) {
	if int(position) >= len(leaves) {
		return nil
	}
	level := leaves
	pos := int(position)
	for len(level) > 1 {
		sibling := pos ^ 1
		if sibling >= len(level) {
			sibling = pos
		}
		branch = append(branch, level[sibling])
		level, _ = nextLevel(level)
		pos >>= 1
	}
	return branch
}

//GetMerkleRootFromBranch 通过 branch 计算 roothash, 用于交易的存在证明
func GetMerkleRootFromBranch(merkleBranch [][]byte, leaf []byte, index uint32) []byte {
	hash := leaf
	for _, branch := range merkleBranch {
		if index&1 != 0 {
			hash = GetHashFromTwoHash(branch, hash)
		} else {
			hash = GetHashFromTwoHash(hash, branch)
		}
		index >>= 1
	}
	return hash
}

var zeroHash [32]byte

//CalcMerkleRoot 交易 hash 的 roothash, 空区块为全 0
func CalcMerkleRoot(txs []*types.Transaction) []byte {
	if len(txs) == 0 {
		return zeroHash[:]
	}
	hashes := make([][]byte, 0, len(txs))
	for _, tx := range txs {
		hashes = append(hashes, tx.Hash())
	}
	return GetMerkleRoot(hashes)
}
