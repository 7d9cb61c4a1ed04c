// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

// 单个 badger 事务写入的条目上限, 超过后拆分提交
const maxBadgerTxnEntries = 1000

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// badgerLogger 把 badger 的日志输出到 log15
type badgerLogger struct {
	l log.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.l.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.l.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = badgerLogger{l: blog}
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	if val == nil {
		val = []byte{}
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
		return err
	}
	return nil
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"badger.lsm.size":  fmt.Sprint(lsm),
		"badger.vlog.size": fmt.Sprint(vlog),
	}
}

//Iterator 迭代器
func (db *GoBadgerDB) Iterator(start, end []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	if end == nil {
		// 前缀迭代转换为 [start, BytesPrefix(start))
		end = BytesPrefix(start)
	}
	return &goBadgerDBIt{
		Iterator: it,
		txn:      txn,
		itBase:   itBase{start: start, end: end, reverse: reverse},
	}
}

type goBadgerDBIt struct {
	*badger.Iterator
	itBase
	txn *badger.Txn
	err error
}

//Rewind 移到开头, 反向时为最后一个
func (it *goBadgerDBIt) Rewind() bool {
	if !it.reverse {
		it.Iterator.Seek(it.start)
		return it.Valid()
	}
	if it.end == nil {
		// start 全部为 0xff, 没有上界
		it.Iterator.Rewind()
		return it.Valid()
	}
	it.Iterator.Seek(it.end)
	if it.Iterator.Valid() && bytes.Equal(it.Iterator.Item().Key(), it.end) {
		it.Iterator.Next()
	}
	return it.Valid()
}

//Seek 定位, badger 反向迭代时 Seek 本身就是定位到 <= key 的最后一个
func (it *goBadgerDBIt) Seek(key []byte) bool {
	it.Iterator.Seek(key)
	return it.Valid()
}

//Next next
func (it *goBadgerDBIt) Next() bool {
	it.Iterator.Next()
	return it.Valid()
}

//Key key
func (it *goBadgerDBIt) Key() []byte {
	return it.Iterator.Item().Key()
}

//Value value
func (it *goBadgerDBIt) Value() []byte {
	return it.ValueCopy()
}

//ValueCopy 复制
func (it *goBadgerDBIt) ValueCopy() []byte {
	value, err := it.Iterator.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

//Valid 是否合法
func (it *goBadgerDBIt) Valid() bool {
	if !it.Iterator.Valid() {
		return false
	}
	return it.checkKey(it.Key())
}

//Error 错误
func (it *goBadgerDBIt) Error() error {
	return it.err
}

//Close 关闭
func (it *goBadgerDBIt) Close() {
	it.Iterator.Close()
	it.txn.Discard()
}

//kv v 为 nil 表示删除
type kv struct{ k, v []byte }

type badgerBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &badgerBatch{db: db}
}

func (b *badgerBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{CloneByte(key), CloneByte(value)})
	b.size += len(key) + len(value)
}

func (b *badgerBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{CloneByte(key), nil})
	b.size += len(key)
}

func (b *badgerBatch) Write() error {
	for begin := 0; begin < len(b.writes); begin += maxBadgerTxnEntries {
		stop := begin + maxBadgerTxnEntries
		if stop > len(b.writes) {
			stop = len(b.writes)
		}
		err := b.db.db.Update(func(txn *badger.Txn) error {
			for _, w := range b.writes[begin:stop] {
				var err error
				if w.v == nil {
					err = txn.Delete(w.k)
				} else {
					err = txn.Set(w.k, w.v)
				}
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			blog.Error("Write", "error", err)
			return err
		}
	}
	return nil
}

func (b *badgerBatch) ValueSize() int {
	return b.size
}

func (b *badgerBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
