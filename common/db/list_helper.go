// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
)

//列表方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//ListHelper 在 IteratorDB 上实现前缀分页查询
type ListHelper struct {
	db IteratorDB
}

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//PrefixScan 前缀下的所有 value, 按 key 升序
func (h *ListHelper) PrefixScan(prefix []byte) [][]byte {
	return h.List(prefix, nil, 0, ListASC)
}

//List 分页. key 为空时从第一条(ASC)或最后一条(DESC)开始,
//否则从 key 的下一条开始, 不包含 key 本身. count 为 0 表示不限制数量
func (h *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	h.walk(prefix, key, direction == ListDESC, func(it Iterator) bool {
		values = append(values, it.ValueCopy())
		return count <= 0 || int32(len(values)) < count
	})
	return values
}

//PrefixCount 前缀下 key 的数量
func (h *ListHelper) PrefixCount(prefix []byte) (count int64) {
	h.walk(prefix, nil, false, func(Iterator) bool {
		count++
		return true
	})
	return count
}

//walk fn 返回 false 时停止
func (h *ListHelper) walk(prefix, key []byte, reverse bool, fn func(Iterator) bool) {
	it := h.db.Iterator(prefix, nil, reverse)
	defer it.Close()
	if len(key) == 0 {
		it.Rewind()
	} else {
		it.Seek(key)
		if it.Valid() && bytes.Equal(it.Key(), key) {
			it.Next()
		}
	}
	for ; it.Valid(); it.Next() {
		if !fn(it) {
			break
		}
	}
	if err := it.Error(); err != nil {
		dlog.Error("ListHelper walk", "prefix", string(prefix), "error", err)
	}
}
