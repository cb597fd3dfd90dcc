package metrics

// https://github.com/yuwf/spellcheck

import (
	"github.com/yuwf/spellcheck/dict"
	"github.com/yuwf/spellcheck/ginserver"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 注册各种组件的hook，实现统计

// 指标名前缀，需要Reg之前设置
var MetricsNamePrefix = ""

// MetricsReg 指标注册的一个简单过渡 统一挂前缀
type MetricsReg struct {
	reg prometheus.Registerer
}

var defaultReg = &MetricsReg{reg: prometheus.DefaultRegisterer}

func DefaultReg() *MetricsReg {
	return defaultReg
}

func (m *MetricsReg) NewCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	opts.Name = MetricsNamePrefix + opts.Name
	return promauto.With(m.reg).NewCounterVec(opts, labels)
}

func (m *MetricsReg) NewGaugeVec(opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	opts.Name = MetricsNamePrefix + opts.Name
	return promauto.With(m.reg).NewGaugeVec(opts, labels)
}

func (m *MetricsReg) NewHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	opts.Name = MetricsNamePrefix + opts.Name
	return promauto.With(m.reg).NewHistogramVec(opts, labels)
}

func (m *MetricsReg) NewGaugeFunc(opts prometheus.GaugeOpts, f func() float64) prometheus.GaugeFunc {
	opts.Name = MetricsNamePrefix + opts.Name
	return promauto.With(m.reg).NewGaugeFunc(opts, f)
}

// Dictionary统计
func RegDict(d *dict.Dictionary) {
	if d != nil {
		d.RegHook(dictHook)
		regDictGauge(d)
	}
}

// GinServer统计
func RegGinServer(gs *ginserver.GinServer) {
	if gs != nil {
		gs.RegHook(ginHook)
	}
}

// Handler 指标拉取接口 挂到gin的/metrics上
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
