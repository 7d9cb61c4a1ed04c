// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/dontclickthat/escrow/common/address"
	"github.com/dontclickthat/escrow/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]DriverCreate)
	execAddressNameMap = make(map[string]string)
	execDrivers        = make(map[string]string)
)

// Register 注册执行器驱动
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if name == "" {
		panic("empty name string")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
	addr := address.ExecAddress(name)
	execAddressNameMap[name] = addr
	execDrivers[addr] = name
}

// LoadDriver load driver
func LoadDriver(name string) (driver Driver, err error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	return c(), nil
}

// IsDriverAddress 地址是否为执行器地址
func IsDriverAddress(addr string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := execDrivers[addr]
	return ok
}

// ExecAddress return exec address
func ExecAddress(name string) string {
	mu.RLock()
	addr, ok := execAddressNameMap[name]
	mu.RUnlock()
	if ok {
		return addr
	}
	return address.ExecAddress(name)
}

// DriverNames 已经注册的执行器
func DriverNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConfigChecker 带有子配置的执行器实现, 配置错误时执行器不能启动
type ConfigChecker interface {
	CheckConfig(cfg *types.Config) error
}

// CheckConfig 检查所有注册执行器的 [exec.sub.<name>]
func CheckConfig(cfg *types.Config) error {
	for _, name := range DriverNames() {
		driver, err := LoadDriver(name)
		if err != nil {
			return err
		}
		checker, ok := driver.(ConfigChecker)
		if !ok {
			continue
		}
		if err := checker.CheckConfig(cfg); err != nil {
			return errors.Wrapf(err, "exec.sub.%s", name)
		}
	}
	return nil
}

// CheckAddress 检查地址, 执行器地址总是合法的
func CheckAddress(addr string) error {
	if IsDriverAddress(addr) {
		return nil
	}
	return address.CheckAddress(addr)
}
