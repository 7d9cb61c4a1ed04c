// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package local 带内存缓存以及事务的 kv 数据库, 执行器的 localdb 和 statedb 都基于它
//
// 写入先进入内存中的覆盖层, Begin 压入一层, Commit 把最上层合并到下一层,
// Rollback 丢弃最上层. 最底层是区块缓存, Flush 时按 key 排序写入底层数据库.
// 空 value 表示删除.
package local

import (
	"sort"
	"sync"

	comdb "github.com/dontclickthat/escrow/common/db"
)

type overlay map[string][]byte

// DB 覆盖在底层数据库上的缓存
type DB struct {
	mu       sync.RWMutex
	maindb   comdb.DB
	layers   []overlay
	readOnly bool
}

// NewLocalDB readOnly 时不能写入, 用于查询
func NewLocalDB(maindb comdb.DB, readOnly bool) *DB {
	return &DB{
		maindb:   maindb,
		layers:   []overlay{{}},
		readOnly: readOnly,
	}
}

// Get 从最上层往下查找, 都没有时读底层数据库
func (l *DB) Get(key []byte) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	skey := string(key)
	for i := len(l.layers) - 1; i >= 0; i-- {
		if value, ok := l.layers[i][skey]; ok {
			if len(value) == 0 {
				return nil, comdb.ErrNotFoundInDb
			}
			return value, nil
		}
	}
	return l.maindb.Get(key)
}

// Set 写入最上层, value 为空表示删除
func (l *DB) Set(key []byte, value []byte) error {
	if l.readOnly {
		panic("local: set in read only mode")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.top()[string(key)] = comdb.CloneByte(value)
	return nil
}

// List 只查询已经写入底层数据库的数据, 缓存中的修改不可见
func (l *DB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return comdb.NewListHelper(l.maindb).List(prefix, key, count, direction), nil
}

// PrefixCount 与 List 相同, 只统计底层数据库
func (l *DB) PrefixCount(prefix []byte) int64 {
	return comdb.NewListHelper(l.maindb).PrefixCount(prefix)
}

// Begin 开始一个事务, 可以嵌套
func (l *DB) Begin() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.layers = append(l.layers, overlay{})
}

// Rollback 丢弃当前事务的修改
func (l *DB) Rollback() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.layers) > 1 {
		l.layers = l.layers[:len(l.layers)-1]
	}
}

// Commit 当前事务的修改合并到上一层
func (l *DB) Commit() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.layers)
	if n < 2 {
		return nil
	}
	for k, v := range l.layers[n-1] {
		l.layers[n-2][k] = v
	}
	l.layers = l.layers[:n-1]
	return nil
}

// Flush 把缓存写入底层数据库, 同一个 batch 写入
func (l *DB) Flush(sync bool) error {
	if l.readOnly {
		return nil
	}
	batch := l.maindb.NewBatch(sync)
	l.WriteTo(batch)
	if err := batch.Write(); err != nil {
		return err
	}
	l.Discard()
	return nil
}

// WriteTo 把区块缓存按 key 排序写入 batch, 未提交的事务不写入
func (l *DB) WriteTo(batch comdb.Batch) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	base := l.layers[0]
	keys := make([]string, 0, len(base))
	for k := range base {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := base[k]; len(v) == 0 {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
}

// Discard 丢弃所有未写入的缓存以及事务
func (l *DB) Discard() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.layers = []overlay{{}}
}

func (l *DB) top() overlay {
	return l.layers[len(l.layers)-1]
}
