// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillDefault(t *testing.T) {
	cfg := &Config{Title: "test"}
	cfg.FillDefault()
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, DefaultSymbol, cfg.Exec.Symbol)
	assert.NotNil(t, cfg.Exec.Sub)
	assert.False(t, cfg.IsLocal())
	assert.True(t, DefaultConfig().IsLocal())
}

func TestGetSubConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Nil(t, cfg.GetSubConfig("escrow"))

	cfg.Exec.Sub["escrow"] = map[string]interface{}{"maxStakeAmount": 100}
	var sub struct {
		MaxStakeAmount int64 `json:"maxStakeAmount"`
	}
	MustDecode(cfg.GetSubConfig("escrow"), &sub)
	assert.Equal(t, int64(100), sub.MaxStakeAmount)
}
