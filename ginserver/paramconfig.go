package ginserver

// https://github.com/yuwf/spellcheck

import (
	"strings"

	"github.com/yuwf/spellcheck/loader"
	"github.com/yuwf/spellcheck/utils"

	"github.com/afex/hystrix-go/hystrix"
)

// 参数配置
type ParamConfig struct {
	// 不落请求日志的路径 Path支持?*通配符 不区分大小写 指标拉取这种高频路径用
	IgnorePaths []string `json:"ignorepaths,omitempty"`

	// Timeout: 执行 command 的超时时间 单位为毫秒
	// MaxConcurrentRequests: 最大并发量
	// RequestVolumeThreshold: 一个统计窗口 10 秒内请求数量 达到这个请求数量后才去判断是否要开启熔断
	// SleepWindow: 熔断器被打开后 SleepWindow的时间就是控制过多久后去尝试服务是否可用了 单位为毫秒
	// ErrorPercentThreshold: 错误百分比 请求数量大于等于 RequestVolumeThreshold 并且错误率到达这个百分比后就会启动熔断
	Hystrix map[string]*hystrix.CommandConfig `json:"hystrix,omitempty"` // 熔断器 [path:Config] path支持?*通配符 不区分大小写

	Cors *CorsConfig `json:"cors,omitempty"`
}

var ParamConf loader.JsonLoader[ParamConfig]

func (c *ParamConfig) Create() {
	c.IgnorePaths = []string{"/metrics"} // 指标拉取不落日志
	c.Cors = defaultCorsOptions
}

func (c *ParamConfig) Normalize() {
	for i, path := range c.IgnorePaths {
		c.IgnorePaths[i] = strings.ToLower(path)
	}
	for path, config := range c.Hystrix {
		path = strings.ToLower(path)
		c.Hystrix[path] = config
		hystrix.ConfigureCommand("gin_"+path, *config) // 加个gin_前缀，区别其他模块使用
	}
	if c.Cors == nil {
		c.Cors = defaultCorsOptions
	}
	c.Cors.Normalize()
}

func (c *ParamConfig) IsIgnorePath(path string) bool {
	path = strings.ToLower(path)
	for _, p := range c.IgnorePaths {
		if utils.IsMatch(p, path) {
			return true
		}
	}
	return false
}

func (c *ParamConfig) IsHystrixPath(path string) (string, bool) {
	v := strings.ToLower(path)
	for path := range c.Hystrix {
		if utils.IsMatch(path, v) {
			return "gin_" + path, true
		}
	}
	return "", false
}
