package metrics

// https://github.com/yuwf/spellcheck

import (
	"context"
	"sync"

	"github.com/yuwf/spellcheck/dict"

	"github.com/prometheus/client_golang/prometheus"
)

// Dictionary统计对象
var dictOnce sync.Once
var dictCnt *prometheus.CounterVec     // 查询次数
var dictMissCnt *prometheus.CounterVec // 无结果次数
var dictLatency *prometheus.HistogramVec

func dictHook(ctx context.Context, cmd *dict.DictCommond) {
	dictOnce.Do(func() {
		dictCnt = DefaultReg().NewCounterVec(prometheus.CounterOpts{
			Name: "dict_count",
			Help: "dict query count",
		}, []string{"cmd", "caller"})
		dictMissCnt = DefaultReg().NewCounterVec(prometheus.CounterOpts{
			Name: "dict_miss_count",
			Help: "dict query count with empty result",
		}, []string{"cmd", "caller"})
		dictLatency = DefaultReg().NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dict_latency",
			Help:    "dict query latency nanosecond",
			Buckets: []float64{256, 512, 1024, 2048, 4096, 8192, 16384, 32768, 65536, 131072},
		}, []string{"cmd"})
	})

	caller := ""
	if cmd.Caller != nil {
		caller = cmd.Caller.Name()
	}
	dictCnt.WithLabelValues(cmd.Cmd, caller).Inc()
	if !cmd.Found && len(cmd.Results) == 0 {
		dictMissCnt.WithLabelValues(cmd.Cmd, caller).Inc()
	}
	dictLatency.WithLabelValues(cmd.Cmd).Observe(float64(cmd.Elapsed.Nanoseconds()))
}

// 词典规模指标 直接读Dictionary的计数
func regDictGauge(d *dict.Dictionary) {
	DefaultReg().NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dict_words",
		Help: "dict word count",
	}, func() float64 { return float64(d.WordCount()) })
	DefaultReg().NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dict_nodes",
		Help: "dict trie node count",
	}, func() float64 { return float64(d.NodeCount()) })
	DefaultReg().NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dict_load_seconds",
		Help: "last dict load elapsed seconds",
	}, func() float64 { return d.LoadElapsed().Seconds() })
}
