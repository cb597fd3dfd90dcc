package utils

// https://github.com/yuwf/spellcheck

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants"
	"github.com/rs/zerolog/log"
)

// ants包的一个简单过渡

var (
	defaultAntsPool *ants.Pool
	antWG           sync.WaitGroup
)

func init() {
	defaultAntsPool, _ = ants.NewPool(ants.DEFAULT_ANTS_POOL_SIZE,
		ants.WithPanicHandler(func(r interface{}) {
			buf := make([]byte, 2048)
			l := runtime.Stack(buf, false)
			err := fmt.Errorf("%v: %s", r, buf[:l])
			log.Error().Err(err).Msg("Panic")
		}))
}

// 暴露出原始对象
func DefaultAntsPool() *ants.Pool {
	return defaultAntsPool
}

// 提交一个任务
func Submit(task func()) error {
	return defaultAntsPool.Submit(task)
}

// 提交一个可以等待的任务
func SubmitProcess(task func()) error {
	antWG.Add(1)
	return defaultAntsPool.Submit(func() {
		defer antWG.Done()
		task()
	})
}

// 等待提交的任务 timeout<=0表示一直等
func WaitProcess(timeout time.Duration) {
	ch := make(chan int)
	go func() {
		antWG.Wait()
		close(ch)
	}()
	if timeout <= 0 {
		<-ch
		return
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ch:
	case <-timer.C:
		log.Warn().Msg("WaitProcess timeout")
	}
}
