package main

// https://github.com/yuwf/spellcheck

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yuwf/spellcheck/dict"
	"github.com/yuwf/spellcheck/ginserver"
	"github.com/yuwf/spellcheck/loader"
	"github.com/yuwf/spellcheck/log"
	"github.com/yuwf/spellcheck/metrics"
	"github.com/yuwf/spellcheck/utils"

	zlog "github.com/rs/zerolog/log"
)

// 拼写检查服务 词表和配置文件支持热加载

var configPath = flag.String("config", "spelld.json", "service config file")

func main() {
	flag.Parse()

	conf := loadServiceConf(*configPath)
	if err := log.InitLog("spelld"); err != nil {
		zlog.Error().Err(err).Msg("InitLog")
	}
	log.SetLevel(conf.LogLevel)

	d := dict.NewDictionary()
	words := &loader.WordsLoader{}
	words.RegHook(func(old, new []string) {
		d.Load(new)
	})

	watch, err := loader.NewLocalWatch()
	if err != nil {
		zlog.Fatal().Err(err).Msg("NewLocalWatch")
	}
	defer watch.Close()
	if err := watch.ListenFile(conf.DictFile, words, true); err != nil {
		zlog.Fatal().Err(err).Str("path", conf.DictFile).Msg("Listen dict file")
	}
	if conf.ParamFile != "" {
		if err := watch.ListenFile(conf.ParamFile, &ginserver.ParamConf, true); err != nil {
			zlog.Error().Err(err).Str("path", conf.ParamFile).Msg("Listen param file")
		}
	}

	// 兜底的周期重载 防止Watch丢事件
	if conf.ReloadCron != "" {
		if _, err := utils.CronAddFunc(conf.ReloadCron, func() {
			if err := words.LoadFile(conf.DictFile); err != nil {
				zlog.Error().Err(err).Msg("Reload dict")
			}
		}); err != nil {
			zlog.Error().Err(err).Str("spec", conf.ReloadCron).Msg("Reload cron")
		}
	}

	gs := ginserver.NewGinServer(conf.Port)
	regHandlers(gs, d)
	metrics.RegDict(d)
	metrics.RegGinServer(gs)
	if err := gs.Start(); err != nil {
		zlog.Fatal().Err(err).Msg("GinServer Start")
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	zlog.Info().Str("signal", s.String()).Msg("Shutdown")

	gs.Stop()
	utils.WaitProcess(time.Second * 3)
	log.Stop()
}

func loadServiceConf(path string) *ServiceConfig {
	if err := ServiceConf.LoadFile(path); err != nil {
		zlog.Error().Err(err).Str("path", path).Msg("Load service config, use defaults")
	}
	return ServiceConf.Get()
}
