// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dontclickthat/escrow/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlError, getLevel("nonsense"))
}

func TestFillDefaultValue(t *testing.T) {
	l := &types.Log{}
	fillDefaultValue(l)
	assert.Equal(t, "eror", l.Loglevel)
	assert.Equal(t, "eror", l.LogConsoleLevel)
}

func TestSetFileLog(t *testing.T) {
	dir, err := os.MkdirTemp("", "escrowlog")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "escrow.log")
	SetFileLog(&types.Log{Loglevel: "info", LogConsoleLevel: "crit", LogFile: file, MaxFileSize: 1})
	New("module", "test").Info("hello", "k", "v")
	_, err = os.Stat(file)
	require.NoError(t, err)
	Discard()
}
