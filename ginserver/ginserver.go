package ginserver

// https://github.com/yuwf/spellcheck

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/yuwf/spellcheck/utils"

	"github.com/afex/hystrix-go/hystrix"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// 外部可赋值重定义
var (
	// 请求参数绑定错误 回复状态：http.StatusBadRequest
	JsonParamBindError = map[string]interface{}{"errCode": 1, "errDesc": "Param Error"}
	// 处理逻辑Panic了 回复状态：http.StatusInternalServerError
	PanicError = map[string]interface{}{"errCode": 500, "errDesc": "Server Error"}
)

type GinServer struct {
	engine *gin.Engine
	server *http.Server
	state  int32 // 运行状态 0:未运行 1:开启监听

	// 请求处理完后回调 不使用锁，默认要求提前注册好
	hook []func(ctx context.Context, c *gin.Context, elapsed time.Duration)
}

func NewGinServer(port int) *GinServer {
	engine := gin.New()
	gs := &GinServer{
		engine: engine,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: engine,
		},
	}

	gs.engine.Use(
		cors,
		gs.hystrix,
		gs.handle,
	)
	return gs
}

// Engine 暴露原始对象
func (gs *GinServer) Engine() *gin.Engine {
	return gs.engine
}

func (gs *GinServer) Start() error {
	if !atomic.CompareAndSwapInt32(&gs.state, 0, 1) {
		log.Error().Str("Addr", gs.server.Addr).Msg("GinServer already Start")
		return nil
	}

	ln, err := net.Listen("tcp", gs.server.Addr)
	if err != nil {
		atomic.StoreInt32(&gs.state, 0)
		log.Error().Err(err).Str("Addr", gs.server.Addr).Msg("GinServer Start err")
		return err
	}
	// 开启监听 Serve会阻塞
	go func() {
		err := gs.server.Serve(ln)
		if err == nil || err == http.ErrServerClosed {
			log.Info().Str("Addr", gs.server.Addr).Msg("GinServer Exit")
		} else {
			atomic.StoreInt32(&gs.state, 0)
			log.Error().Err(err).Str("Addr", gs.server.Addr).Msg("GinServer Serve Error")
		}
	}()

	log.Info().Str("Addr", gs.server.Addr).Msg("GinServer Start")
	return nil
}

func (gs *GinServer) Stop() error {
	if !atomic.CompareAndSwapInt32(&gs.state, 1, 0) {
		log.Error().Str("Addr", gs.server.Addr).Msg("GinServer already Close")
		return nil
	}
	log.Info().Str("Addr", gs.server.Addr).Msg("GinServer Closeing")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := gs.server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Str("Addr", gs.server.Addr).Msg("GinServer Close error")
	}
	return err
}

// RegHandler 注册回调 需要fun自己调用回复
// method为空表示注册所有方法
func (gs *GinServer) RegHandler(method, path string, fun func(ctx context.Context, c *gin.Context), optionsHandlers ...gin.HandlerFunc) {
	if fun == nil {
		return
	}
	ginFun := func(c *gin.Context) {
		fun(getCtx(c), c)
	}
	optionsHandlers = append(optionsHandlers, ginFun)
	if len(method) == 0 {
		gs.engine.Any(path, optionsHandlers...)
	} else {
		gs.engine.Handle(method, path, optionsHandlers...)
	}
}

// RegJsonHandler 注册Json数据结构的回调 不需要fun调用回复
// Req的格式可以是gin支持绑定的任意格式 GET请求绑定query 其他按Content-Type绑定
// Resp必须是支持json格式化的结构
// method为空表示注册所有方法
func RegJsonHandler[Req any, Resp any](gs *GinServer, method, path string, fun func(ctx context.Context, c *gin.Context, req *Req, resp *Resp), optionsHandlers ...gin.HandlerFunc) {
	if fun == nil {
		return
	}
	ginFun := func(c *gin.Context) {
		req := new(Req)
		resp := new(Resp)
		c.Set("req", req) // 日志使用
		if err := c.ShouldBind(req); err != nil {
			c.Set("err", err)
			if JsonParamBindError != nil {
				c.Set("resp", JsonParamBindError) // 日志使用
				c.JSON(http.StatusBadRequest, JsonParamBindError)
			} else {
				c.AbortWithStatus(http.StatusBadRequest)
			}
			return
		}
		fun(getCtx(c), c, req, resp)
		c.Set("resp", resp) // 日志使用
		c.JSON(http.StatusOK, resp)
	}
	optionsHandlers = append(optionsHandlers, ginFun)
	if len(method) == 0 {
		gs.engine.Any(path, optionsHandlers...)
	} else {
		gs.engine.Handle(method, path, optionsHandlers...)
	}
}

func (gs *GinServer) RegHook(f func(ctx context.Context, c *gin.Context, elapsed time.Duration)) {
	gs.hook = append(gs.hook, f)
}

func getCtx(c *gin.Context) context.Context {
	ctxv, _ := c.Get("ctx")
	if ctx, ok := ctxv.(context.Context); ok {
		return ctx
	}
	return context.TODO()
}

// hystrix 配置了熔断的路径走熔断器
func (gs *GinServer) hystrix(c *gin.Context) {
	ctx := context.TODO()
	c.Set("ctx", ctx)

	if name, ok := ParamConf.Get().IsHystrixPath(c.Request.URL.Path); ok {
		hystrix.DoC(ctx, name, func(ctx context.Context) error {
			c.Next()
			return nil
		}, func(ctx context.Context, err error) error {
			// 出现了熔断
			c.String(http.StatusServiceUnavailable, err.Error())
			c.Error(err)
			c.Abort()
			// 熔断也会调用回调
			gs.callhook(ctx, c, 0)
			return err
		})
	}
}

func (gs *GinServer) handle(c *gin.Context) {
	ctx := getCtx(c)

	entry := time.Now()
	// 调用外部的逻辑
	gs.handleNext(c)
	elapsed := time.Since(entry)

	// 忽略的路径不落日志
	if !ParamConf.Get().IsIgnorePath(c.Request.URL.Path) {
		l := log.Info().Str("clientIP", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path)
		if err, ok := c.Get("err"); ok {
			l = l.Interface("err", err)
		}
		if req, ok := c.Get("req"); ok {
			l = l.Interface("req", req)
		} else if len(c.Request.URL.RawQuery) > 0 {
			l = l.Str("req", c.Request.URL.RawQuery)
		}
		if resp, ok := c.Get("resp"); ok {
			l = l.Interface("resp", resp)
		}
		l.Int("status", c.Writer.Status()).
			Int("elapsed", int(elapsed/time.Millisecond)).
			Msg("GinServer handle")
	}

	gs.callhook(ctx, c, elapsed)
}

func (gs *GinServer) handleNext(c *gin.Context) {
	// 外层部分的panic
	defer utils.HandlePanic2(func() {
		if PanicError != nil {
			c.Set("resp", PanicError) // 日志使用
			c.JSON(http.StatusInternalServerError, PanicError)
		} else {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	})

	c.Next()
}

func (gs *GinServer) callhook(ctx context.Context, c *gin.Context, elapsed time.Duration) {
	defer utils.HandlePanic()
	for _, f := range gs.hook {
		f(ctx, c, elapsed)
	}
}
