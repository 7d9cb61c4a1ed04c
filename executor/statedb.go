// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/dontclickthat/escrow/common/db"
	"github.com/dontclickthat/escrow/common/db/local"
)

// StateDB state db, 记录一笔交易中所有 Set 过的 key
type StateDB struct {
	*local.DB
	keys []string
}

// NewStateDB new state db
func NewStateDB(maindb dbm.DB) *StateDB {
	return &StateDB{DB: local.NewLocalDB(maindb, false)}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.keys = nil
	s.DB.Begin()
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.keys = nil
	s.DB.Rollback()
}

// Commit canche tx
func (s *StateDB) Commit() error {
	s.keys = nil
	return s.DB.Commit()
}

// Set set value to state db
func (s *StateDB) Set(key []byte, value []byte) error {
	s.keys = append(s.keys, string(key))
	return s.DB.Set(key, value)
}

// GetSetKeys 当前交易 Set 过的 key
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}
