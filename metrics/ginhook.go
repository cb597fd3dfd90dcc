package metrics

// https://github.com/yuwf/spellcheck

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// GinServer统计对象
var ginOnce sync.Once
var ginCnt *prometheus.CounterVec
var ginLatency *prometheus.HistogramVec

// 路径中的纯数字段收敛成* 避免指标维度爆炸
var ginPathReg = regexp2.MustCompile(`(?<=/)\d+(?=/|$)`, regexp2.None)

func ginHook(ctx context.Context, c *gin.Context, elapsed time.Duration) {
	ginOnce.Do(func() {
		ginCnt = DefaultReg().NewCounterVec(prometheus.CounterOpts{
			Name: "gin_count",
			Help: "gin request count",
		}, []string{"path", "method", "status"})
		ginLatency = DefaultReg().NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gin_latency",
			Help:    "gin request latency millisecond",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024},
		}, []string{"path", "method"})
	})

	path := c.Request.URL.Path
	if p, err := ginPathReg.Replace(path, "*", -1, -1); err == nil {
		path = p
	}
	method := c.Request.Method
	ginCnt.WithLabelValues(path, method, strconv.Itoa(c.Writer.Status())).Inc()
	ginLatency.WithLabelValues(path, method).Observe(float64(elapsed / time.Millisecond))
}
