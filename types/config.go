// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"strings"
)

// Config 配置文件的根结构
type Config struct {
	Title   string            `toml:"Title" json:"title,omitempty"`
	Log     *Log              `toml:"log" json:"log,omitempty"`
	Store   *Store            `toml:"store" json:"store,omitempty"`
	Metrics *Metrics          `toml:"metrics" json:"metrics,omitempty"`
	Exec    *Exec             `toml:"exec" json:"exec,omitempty"`
	Genesis []*GenesisAccount `toml:"genesis" json:"genesis,omitempty"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel" json:"loglevel,omitempty"`
	LogConsoleLevel string `toml:"logConsoleLevel" json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile" json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize" json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups" json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge" json:"maxAge,omitempty"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `toml:"localTime" json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress" json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile" json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction" json:"callerFunction,omitempty"`
}

// Store 数据库配置
type Store struct {
	Name    string `toml:"name" json:"name,omitempty"`
	Driver  string `toml:"driver" json:"driver,omitempty"`
	DbPath  string `toml:"dbPath" json:"dbPath,omitempty"`
	DbCache int32  `toml:"dbCache" json:"dbCache,omitempty"`
}

// Metrics 指标统计配置
type Metrics struct {
	EnableMetrics bool `toml:"enableMetrics" json:"enableMetrics,omitempty"`
	// 输出间隔, 单位秒
	Duration int64 `toml:"duration" json:"duration,omitempty"`
}

// Exec 执行器配置, Sub 为各个执行器自己的配置
type Exec struct {
	Symbol string                 `toml:"symbol" json:"symbol,omitempty"`
	Sub    map[string]interface{} `toml:"sub" json:"sub,omitempty"`
}

// GenesisAccount 创世账户
type GenesisAccount struct {
	Addr   string `toml:"addr" json:"addr,omitempty"`
	Amount int64  `toml:"amount" json:"amount,omitempty"`
}

// DefaultConfig 内存数据库的默认配置, 测试使用
func DefaultConfig() *Config {
	return &Config{
		Title:   "local",
		Log:     &Log{Loglevel: "error", LogConsoleLevel: "error"},
		Store:   &Store{Name: "escrow", Driver: "memdb", DbPath: "datadir", DbCache: 16},
		Metrics: &Metrics{},
		Exec:    &Exec{Symbol: DefaultSymbol, Sub: make(map[string]interface{})},
	}
}

// FillDefault 补全缺省的配置项
func (c *Config) FillDefault() {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Store == nil {
		c.Store = def.Store
	}
	if c.Store.Name == "" {
		c.Store.Name = def.Store.Name
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "leveldb"
	}
	if c.Metrics == nil {
		c.Metrics = def.Metrics
	}
	if c.Exec == nil {
		c.Exec = def.Exec
	}
	if c.Exec.Symbol == "" {
		c.Exec.Symbol = DefaultSymbol
	}
	if c.Exec.Sub == nil {
		c.Exec.Sub = make(map[string]interface{})
	}
}

// IsLocal 本地开发链, 允许通过命令行增发
func (c *Config) IsLocal() bool {
	return strings.Contains(c.Title, "local")
}

// GetSubConfig 取执行器的子配置, 以 json 编码返回
func (c *Config) GetSubConfig(name string) []byte {
	if c == nil || c.Exec == nil || c.Exec.Sub == nil {
		return nil
	}
	sub, ok := c.Exec.Sub[name]
	if !ok {
		return nil
	}
	data, err := json.Marshal(sub)
	if err != nil {
		return nil
	}
	return data
}
