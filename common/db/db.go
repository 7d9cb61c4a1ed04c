// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 数据库的统一接口以及 memdb/leveldb/badger 三种后端
package db

import (
	"bytes"
	"errors"
	"sync"

	log "github.com/inconshreveable/log15"
	pkgerr "github.com/pkg/errors"
)

var dlog = log.New("module", "db")

//ErrNotFoundInDb 数据库中没有该key
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//Lister 列表接口
type Lister interface {
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
	PrefixCount(prefix []byte) int64
}

//KV kv 接口, 支持事务
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Begin()
	Rollback()
	Commit() error
}

//KVDB 执行器使用的数据库接口
type KVDB interface {
	KV
	Lister
}

//IteratorDB 迭代
type IteratorDB interface {
	Iterator(start []byte, end []byte, reserver bool) Iterator
}

//DB 底层数据库
type DB interface {
	IteratorDB
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error
	Delete([]byte) error
	NewBatch(sync bool) Batch
	Close()
	Stats() map[string]string
}

//Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 迭代器
//Seek 正向时定位到第一个 >= key 的位置, 反向时定位到最后一个 <= key 的位置
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

type itBase struct {
	start   []byte
	end     []byte
	reverse bool
}

// end 为空表示前缀迭代, 否则为 [start, end)
func (it *itBase) checkKey(key []byte) bool {
	if it.end == nil {
		return bytes.HasPrefix(key, it.start)
	}
	return bytes.Compare(key, it.start) >= 0 && bytes.Compare(key, it.end) < 0
}

//BytesPrefix 返回前缀对应的上界
func BytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}

//CloneByte 复制
func CloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

//backend
const (
	LevelDBBackendStr    = "leveldb" // 与 goleveldb 相同
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var (
	backendsMu sync.RWMutex
	backends   = map[string]dbCreator{}
)

func registerDBCreator(backend string, creator dbCreator, force bool) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 按后端名称创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	backendsMu.RLock()
	creator, ok := backends[backend]
	backendsMu.RUnlock()
	if !ok {
		dlog.Error("NewDB", "unknown backend", backend)
		return nil, pkgerr.Errorf("unknown db backend %s", backend)
	}
	db, err := creator(name, dir, int(cache))
	if err != nil {
		return nil, pkgerr.Wrapf(err, "open %s db %s", backend, name)
	}
	return db, nil
}
