// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/dontclickthat/escrow/types"
	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (rc *recorder) logger() log.Logger {
	l := log.New()
	l.SetHandler(log.FuncHandler(func(r *log.Record) error {
		rc.mu.Lock()
		defer rc.mu.Unlock()
		rc.msgs = append(rc.msgs, r.Msg)
		return nil
	}))
	return l
}

func (rc *recorder) lines() []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return append([]string(nil), rc.msgs...)
}

func newRegistry() go_metrics.Registry {
	registry := go_metrics.NewRegistry()
	go_metrics.GetOrRegisterCounter("b.counter", registry).Inc(2)
	go_metrics.GetOrRegisterTimer("a.timer", registry).Update(time.Millisecond)
	go_metrics.GetOrRegisterGauge("c.gauge", registry).Update(3)
	return registry
}

func TestStartMetricsDisabled(t *testing.T) {
	assert.Nil(t, StartMetrics(nil))
	assert.Nil(t, StartMetrics(&types.Metrics{}))
	var r *Reporter
	r.Stop()
}

func TestReport(t *testing.T) {
	out := &recorder{}
	r := NewReporter(newRegistry(), time.Hour, out.logger())
	r.Report()
	lines := out.lines()
	assert.Contains(t, lines, "counter b.counter")
	assert.Contains(t, lines, "timer a.timer")
	assert.Contains(t, lines, "gauge c.gauge")
	assert.Contains(t, lines, "  count:               2")
}

func TestReporterStop(t *testing.T) {
	out := &recorder{}
	r := NewReporter(newRegistry(), time.Hour, out.logger())
	r.Start()
	//ticker 没有触发, 只有停止时的最后一次输出
	r.Stop()
	r.Stop()
	lines := out.lines()
	assert.Contains(t, lines, "counter b.counter")
	assert.Contains(t, lines, "gauge c.gauge")

	fast := NewReporter(newRegistry(), time.Millisecond, nil)
	fast.Start()
	time.Sleep(5 * time.Millisecond)
	fast.Stop()
}
