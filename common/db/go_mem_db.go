// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"strconv"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
)

func init() {
	registerDBCreator(MemDBBackendStr, func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}, false)
}

//GoMemDB 测试以及 cli 的临时数据库, 进程退出后数据丢失
type GoMemDB struct {
	db *memdb.DB
}

//NewGoMemDB name 以及 dir 不使用
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: memdb.New(comparer.DefaultComparer, cache)}, nil
}

//Get 返回值是副本
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	v, err := db.db.Get(key)
	if err != nil {
		return nil, ErrNotFoundInDb
	}
	return CloneByte(v), nil
}

//Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	return db.db.Put(key, value)
}

//Delete 删除不存在的 key 不报错
func (db *GoMemDB) Delete(key []byte) error {
	if err := db.db.Delete(key); err != nil && err != memdb.ErrNotFound {
		dlog.Error("memdb delete", "error", err)
		return err
	}
	return nil
}

//Close memdb 不需要关闭
func (db *GoMemDB) Close() {}

//Stats 返回 kv 数量以及占用的字节数
func (db *GoMemDB) Stats() map[string]string {
	return map[string]string{
		"keys": strconv.Itoa(db.db.Len()),
		"size": strconv.Itoa(db.db.Size()),
	}
}

//Iterator 与 leveldb 共用迭代器
func (db *GoMemDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	return newLevelIt(db.db.NewIterator(levelRange(start, end)), start, end, reverse)
}

//NewBatch 与 leveldb 共用 batch, Write 时回放到 memdb
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &levelBatch{write: func(b *leveldb.Batch) error {
		r := &memReplay{db: db}
		if err := b.Replay(r); err != nil {
			return err
		}
		return r.err
	}}
}

//memReplay 实现 leveldb.BatchReplay, 出错后忽略后面的操作
type memReplay struct {
	db  *GoMemDB
	err error
}

func (r *memReplay) Put(key, value []byte) {
	if r.err == nil {
		r.err = r.db.Set(key, value)
	}
}

func (r *memReplay) Delete(key []byte) {
	if r.err == nil {
		r.err = r.db.Delete(key)
	}
}
