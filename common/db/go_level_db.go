// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var llog = log.New("module", "db.goleveldb")

func init() {
	for _, backend := range []string{LevelDBBackendStr, GoLevelDBBackendStr} {
		registerDBCreator(backend, func(name string, dir string, cache int) (DB, error) {
			return NewGoLevelDB(name, dir, cache)
		}, false)
	}
}

//GoLevelDB 账本默认的持久化后端
type GoLevelDB struct {
	db *leveldb.DB
}

//NewGoLevelDB 打开 dir/name.db, cache 单位为 MB, 最小 16
func NewGoLevelDB(name string, dir string, cache int) (*GoLevelDB, error) {
	dbPath := path.Join(dir, name+".db")
	if cache < 16 {
		cache = 16
	}
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: cache,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB,
		Filter:                 filter.NewBloomFilter(10),
	})
	//数据库损坏时尝试恢复
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(dbPath, nil)
	}
	if err != nil {
		return nil, err
	}
	return &GoLevelDB{db: db}, nil
}

//Get key 不存在时返回 ErrNotFoundInDb
func (db *GoLevelDB) Get(key []byte) ([]byte, error) {
	res, err := db.db.Get(key, nil)
	if err == errors.ErrNotFound {
		return nil, ErrNotFoundInDb
	}
	return res, err
}

//Set set
func (db *GoLevelDB) Set(key []byte, value []byte) error {
	return db.db.Put(key, value, nil)
}

//Delete delete
func (db *GoLevelDB) Delete(key []byte) error {
	return db.db.Delete(key, nil)
}

//Close 关闭失败只记录日志
func (db *GoLevelDB) Close() {
	if err := db.db.Close(); err != nil {
		llog.Error("leveldb close", "error", err)
	}
}

//Stats stat 命令输出的 leveldb 属性
func (db *GoLevelDB) Stats() map[string]string {
	stats := make(map[string]string)
	for _, key := range []string{"leveldb.stats", "leveldb.sstables", "leveldb.cachedblock", "leveldb.openedtables"} {
		if str, err := db.db.GetProperty(key); err == nil {
			stats[key] = str
		}
	}
	return stats
}

//Iterator 迭代器
func (db *GoLevelDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	return newLevelIt(db.db.NewIterator(levelRange(start, end), nil), start, end, reverse)
}

func levelRange(start, end []byte) *util.Range {
	if end == nil {
		return util.BytesPrefix(start)
	}
	return &util.Range{Start: start, Limit: end}
}

// goLevelDBIt leveldb 以及 memdb 共用的迭代器
type goLevelDBIt struct {
	iterator.Iterator
	itBase
}

func newLevelIt(it iterator.Iterator, start, end []byte, reverse bool) *goLevelDBIt {
	return &goLevelDBIt{Iterator: it, itBase: itBase{start: start, end: end, reverse: reverse}}
}

//Close 关闭
func (dbit *goLevelDBIt) Close() {
	dbit.Iterator.Release()
}

//Next next
func (dbit *goLevelDBIt) Next() bool {
	if dbit.reverse {
		return dbit.Iterator.Prev() && dbit.Valid()
	}
	return dbit.Iterator.Next() && dbit.Valid()
}

//Rewind 移到开头, 反向时为最后一个
func (dbit *goLevelDBIt) Rewind() bool {
	if dbit.reverse {
		return dbit.Iterator.Last() && dbit.Valid()
	}
	return dbit.Iterator.First() && dbit.Valid()
}

//Seek 定位
func (dbit *goLevelDBIt) Seek(key []byte) bool {
	ok := dbit.Iterator.Seek(key)
	if !dbit.reverse {
		return ok && dbit.Valid()
	}
	if !ok {
		return dbit.Iterator.Last() && dbit.Valid()
	}
	if !bytes.Equal(dbit.Iterator.Key(), key) {
		return dbit.Iterator.Prev() && dbit.Valid()
	}
	return dbit.Valid()
}

//Value value
func (dbit *goLevelDBIt) Value() []byte {
	return dbit.Iterator.Value()
}

//ValueCopy 复制
func (dbit *goLevelDBIt) ValueCopy() []byte {
	return CloneByte(dbit.Iterator.Value())
}

//Valid 是否合法
func (dbit *goLevelDBIt) Valid() bool {
	return dbit.Iterator.Valid() && dbit.checkKey(dbit.Key())
}

//NewBatch sync 为 true 时写入后 fsync
func (db *GoLevelDB) NewBatch(sync bool) Batch {
	wop := &opt.WriteOptions{Sync: sync}
	return &levelBatch{write: func(b *leveldb.Batch) error {
		if err := db.db.Write(b, wop); err != nil {
			llog.Error("batch write", "error", err)
			return err
		}
		return nil
	}}
}

// levelBatch leveldb 以及 memdb 共用的 batch, 写操作先记录在 leveldb.Batch 中
type levelBatch struct {
	batch leveldb.Batch
	size  int
	write func(*leveldb.Batch) error
}

func (b *levelBatch) Set(key, value []byte) {
	b.batch.Put(key, value)
	b.size += len(key) + len(value)
}

func (b *levelBatch) Delete(key []byte) {
	b.batch.Delete(key)
	b.size += len(key)
}

func (b *levelBatch) Write() error { return b.write(&b.batch) }

func (b *levelBatch) ValueSize() int { return b.size }

func (b *levelBatch) Reset() {
	b.batch.Reset()
	b.size = 0
}
