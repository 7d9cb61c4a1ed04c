// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"time"

	go_metrics "github.com/rcrowley/go-metrics"
)

// statistics 执行器的指标, 注册在 go-metrics 默认的 registry 中
type statistics struct {
	registry  go_metrics.Registry
	blocks    go_metrics.Counter
	txs       go_metrics.Meter
	blockTime go_metrics.Timer
	txOk      go_metrics.Counter
	txErr     go_metrics.Counter
	txTime    go_metrics.Timer
}

func newStatistics() *statistics {
	r := go_metrics.DefaultRegistry
	return &statistics{
		registry:  r,
		blocks:    go_metrics.GetOrRegisterCounter("exec.block.count", r),
		txs:       go_metrics.GetOrRegisterMeter("exec.tx.rate", r),
		blockTime: go_metrics.GetOrRegisterTimer("exec.block.time", r),
		txOk:      go_metrics.GetOrRegisterCounter("exec.tx.ok", r),
		txErr:     go_metrics.GetOrRegisterCounter("exec.tx.err", r),
		txTime:    go_metrics.GetOrRegisterTimer("exec.tx.time", r),
	}
}

func (s *statistics) block(txs int, cost time.Duration) {
	s.blocks.Inc(1)
	s.txs.Mark(int64(txs))
	s.blockTime.Update(cost)
}

// tx 按执行器以及 action 分别计数, 例如 exec.escrow.join.ok
func (s *statistics) tx(execer, action string, err error, cost time.Duration) {
	s.txTime.Update(cost)
	result := "ok"
	if err != nil {
		s.txErr.Inc(1)
		result = "err"
	} else {
		s.txOk.Inc(1)
	}
	if action == "" {
		action = "unknown"
	}
	go_metrics.GetOrRegisterCounter("exec."+execer+"."+action+"."+result, s.registry).Inc(1)
}
