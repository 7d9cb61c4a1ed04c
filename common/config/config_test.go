// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	cfg, err := Init("testdata/escrow.toml")
	require.NoError(t, err)
	assert.True(t, cfg.IsLocal())
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	assert.Equal(t, uint32(300), cfg.Log.MaxFileSize)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, int32(64), cfg.Store.DbCache)
	assert.True(t, cfg.Metrics.EnableMetrics)
	assert.Equal(t, "bty", cfg.Exec.Symbol)
	require.Equal(t, 1, len(cfg.Genesis))
	assert.Equal(t, int64(10000000000000), cfg.Genesis[0].Amount)

	var sub struct {
		MaxStakeAmount int64    `json:"maxStakeAmount"`
		Referees       []string `json:"referees"`
	}
	require.NoError(t, json.Unmarshal(cfg.GetSubConfig("escrow"), &sub))
	assert.Equal(t, int64(100000000000), sub.MaxStakeAmount)
	assert.Equal(t, []string{"1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR"}, sub.Referees)
}

func TestInitError(t *testing.T) {
	_, err := Init("testdata/nofile.toml")
	assert.Error(t, err)
	_, err = InitString("Title = ")
	assert.Error(t, err)
	assert.Panics(t, func() { InitCfg("testdata/nofile.toml") })
}

func TestInitStringDefault(t *testing.T) {
	cfg, err := InitString(`Title="test"`)
	require.NoError(t, err)
	assert.False(t, cfg.IsLocal())
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, "bty", cfg.Exec.Symbol)
}
