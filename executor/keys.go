// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/dontclickthat/escrow/types"
)

var (
	commonPrefix = []byte("mavl-")
	execerCoins  = []byte(types.CoinsX)
)

// isAllowExec 合约只能修改自己的状态以及 coins 账户
func isAllowExec(key, txexecer []byte) bool {
	keyexecer, err := findExecer(key)
	if err != nil {
		elog.Error("find execer ", "err", err)
		return false
	}
	//其他合约可以修改自己合约内部
	if bytes.Equal(keyexecer, txexecer) {
		return true
	}
	//资金的转移都通过 coins 账户
	return bytes.Equal(keyexecer, execerCoins)
}

func findExecer(key []byte) (execer []byte, err error) {
	if !bytes.HasPrefix(key, commonPrefix) {
		return nil, types.ErrNotAllowKey
	}
	for i := len(commonPrefix); i < len(key); i++ {
		if key[i] == '-' {
			return key[len(commonPrefix):i], nil
		}
	}
	return nil, types.ErrNotAllowKey
}

// checkKV statedb 中 Set 的 key 必须都在 receipt 中
func checkKV(memset []string, kvs []*types.KeyValue) error {
	keys := make(map[string]bool)
	for _, kv := range kvs {
		keys[string(kv.GetKey())] = true
	}
	for _, key := range memset {
		if _, ok := keys[key]; !ok {
			elog.Error("err memset key", "key", key)
			//非法的receipt，交易执行失败
			return types.ErrNotAllowMemSetKey
		}
	}
	return nil
}

func checkKeyAllow(tx *types.Transaction, kvs []*types.KeyValue) error {
	for _, kv := range kvs {
		if !isAllowExec(kv.GetKey(), tx.Execer) {
			elog.Error("err key not allow", "key", string(kv.GetKey()), "execer", string(tx.Execer))
			return types.ErrNotAllowKey
		}
	}
	return nil
}

// 本地数据库的 key 必须以 LODB-<execer>- 开头
func checkLocalKey(execer []byte, kvs []*types.KeyValue) error {
	prefix := types.CalcLocalKey(execer, nil)
	for _, kv := range kvs {
		if !bytes.HasPrefix(kv.GetKey(), prefix) {
			elog.Error("err local key", "key", string(kv.GetKey()), "execer", string(execer))
			return types.ErrNotAllowKey
		}
	}
	return nil
}
