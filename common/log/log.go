// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 初始化 log15 的根 handler: 控制台输出到 stderr, 文件输出由 lumberjack 切割
package log

import (
	"os"
	"sync"

	"github.com/dontclickthat/escrow/types"
	log15 "github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"
)

//DefaultLogFile 没有配置日志时使用的文件
const DefaultLogFile = "logs/escrow.log"

var (
	mu   sync.Mutex
	file *lumberjack.Logger
)

//SetLogLevel 只输出到控制台. stdout 留给命令行的 json 输出
func SetLogLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	log15.Root().SetHandler(consoleHandler(level))
}

//SetFileLog 按配置设置控制台以及文件日志, LogFile 为空时只输出到控制台
func SetFileLog(cfg *types.Log) {
	if cfg == nil {
		cfg = &types.Log{LogFile: DefaultLogFile}
	}
	if cfg.LogFile == "" {
		SetLogLevel(cfg.LogConsoleLevel)
		return
	}
	fillDefaultValue(cfg)
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	file = &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}
	fh := log15.LvlFilterHandler(getLevel(cfg.Loglevel), log15.StreamHandler(file, log15.LogfmtFormat()))
	if cfg.CallerFile {
		fh = log15.CallerFileHandler(fh)
	}
	if cfg.CallerFunction {
		fh = log15.CallerFuncHandler(fh)
	}
	log15.Root().SetHandler(log15.MultiHandler(consoleHandler(cfg.LogConsoleLevel), fh))
}

//Discard 关闭所有日志输出, 测试时使用
func Discard() {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	log15.Root().SetHandler(log15.DiscardHandler())
}

//New 子 logger
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}

func closeFile() {
	if file != nil {
		file.Close()
		file = nil
	}
}

//默认 error 级别, 避免执行区块时打印太多日志
func fillDefaultValue(cfg *types.Log) {
	if cfg.Loglevel == "" {
		cfg.Loglevel = log15.LvlError.String()
	}
	if cfg.LogConsoleLevel == "" {
		cfg.LogConsoleLevel = log15.LvlError.String()
	}
}

func consoleHandler(level string) log15.Handler {
	format := log15.TerminalFormat()
	if os.PathSeparator == '\\' {
		format = log15.LogfmtFormat()
	}
	return log15.LvlFilterHandler(getLevel(level), log15.StreamHandler(os.Stderr, format))
}

//配置错误时为 error 级别
func getLevel(level string) log15.Lvl {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return log15.LvlError
	}
	return lvl
}
