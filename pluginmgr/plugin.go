// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/spf13/cobra"
)

// Plugin 一个插件包含一个执行器以及可选的命令行
type Plugin interface {
	GetName() string
	GetExecutorName() string
	//执行器启动前调用, 注册驱动以及执行器类型
	InitExec()
	AddCmd(rootCmd *cobra.Command)
}

// PluginBase 插件只需要填写字段
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string)
	Cmd      func() *cobra.Command
}

// GetName 插件包名, 不能重复
func (p *PluginBase) GetName() string { return p.Name }

// GetExecutorName 执行器名
func (p *PluginBase) GetExecutorName() string { return p.ExecName }

// InitExec Exec 为空时什么都不做
func (p *PluginBase) InitExec() {
	if p.Exec != nil {
		p.Exec(p.ExecName)
	}
}

// AddCmd Cmd 为空或者返回 nil 时不添加
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd == nil {
		return
	}
	if cmd := p.Cmd(); cmd != nil {
		rootCmd.AddCommand(cmd)
	}
}
