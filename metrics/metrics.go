// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 基于 go-metrics 的指标统计, 定时输出到日志
package metrics

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dontclickthat/escrow/types"
	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// Reporter 定时把 registry 中的指标写到日志, 输出格式由 go-metrics 的 LogScaledOnCue 决定
type Reporter struct {
	registry go_metrics.Registry
	interval time.Duration
	logger   go_metrics.Logger
	cue      chan interface{}
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// printer go-metrics Logger, 每行输出一条 log15 记录
type printer struct {
	l log.Logger
}

func (p printer) Printf(format string, v ...interface{}) {
	p.l.Info(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
}

//StartMetrics 根据配置文件相关参数启动, 没有开启时返回 nil
func StartMetrics(cfg *types.Metrics) *Reporter {
	if cfg == nil || !cfg.EnableMetrics {
		mlog.Debug("Metrics data is not enabled to emit")
		return nil
	}
	duration := time.Duration(cfg.Duration) * time.Second
	if duration <= 0 {
		duration = time.Minute
	}
	r := NewReporter(go_metrics.DefaultRegistry, duration, mlog)
	r.Start()
	return r
}

// NewReporter l 为 nil 时使用 metrics 模块的日志
func NewReporter(registry go_metrics.Registry, interval time.Duration, l log.Logger) *Reporter {
	if l == nil {
		l = mlog
	}
	return &Reporter{
		registry: registry,
		interval: interval,
		logger:   printer{l: l},
		cue:      make(chan interface{}),
		done:     make(chan struct{}),
	}
}

// Start 启动后台输出, 只能调用一次
func (r *Reporter) Start() {
	r.wg.Add(2)
	go func() {
		defer r.wg.Done()
		go_metrics.LogScaledOnCue(r.registry, r.cue, time.Millisecond, r.logger)
	}()
	go func() {
		defer r.wg.Done()
		defer close(r.cue)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.cue <- struct{}{}
			case <-r.done:
				//停止前输出最后一次
				r.cue <- struct{}{}
				return
			}
		}
	}()
}

// Stop 停止后台输出
func (r *Reporter) Stop() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		close(r.done)
		r.wg.Wait()
	})
}

// Report 立即输出一次所有指标
func (r *Reporter) Report() {
	cue := make(chan interface{}, 1)
	cue <- struct{}{}
	close(cue)
	go_metrics.LogScaledOnCue(r.registry, cue, time.Millisecond, r.logger)
}
