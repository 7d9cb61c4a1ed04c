// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config 读取 toml 配置文件
package config

import (
	tml "github.com/BurntSushi/toml"
	"github.com/dontclickthat/escrow/types"
	"github.com/pkg/errors"
)

// Init 读取配置文件并补全缺省值
func Init(path string) (*types.Config, error) {
	var cfg types.Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	cfg.FillDefault()
	return &cfg, nil
}

// InitString 从字符串读取配置
func InitString(data string) (*types.Config, error) {
	var cfg types.Config
	if _, err := tml.Decode(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.FillDefault()
	return &cfg, nil
}

// InitCfg 读取配置文件, 失败时 panic
func InitCfg(path string) *types.Config {
	cfg, err := Init(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
