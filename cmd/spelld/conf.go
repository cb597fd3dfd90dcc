package main

// https://github.com/yuwf/spellcheck

import (
	"github.com/yuwf/spellcheck/loader"
)

// ServiceConfig 服务配置
type ServiceConfig struct {
	Port       int    `json:"port"`       // 监听端口
	DictFile   string `json:"dictfile"`   // 词表文件 一行一个词
	ParamFile  string `json:"paramfile"`  // gin层参数配置文件 可为空
	LogLevel   int    `json:"loglevel"`   // zerolog等级
	ReloadCron string `json:"reloadcron"` // 兜底重载词表的cron 秒级格式 空表示不开
}

var ServiceConf loader.JsonLoader[ServiceConfig]

func (c *ServiceConfig) Create() {
	c.Port = 8080
	c.DictFile = "/usr/share/dict/words"
	c.LogLevel = 1
	c.ReloadCron = "0 0 4 * * *"
}

func (c *ServiceConfig) Normalize() {
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = 8080
	}
	if c.DictFile == "" {
		c.DictFile = "/usr/share/dict/words"
	}
}
