package main

// https://github.com/yuwf/spellcheck

import (
	"context"
	"strings"
	"time"

	"github.com/yuwf/spellcheck/dict"
	"github.com/yuwf/spellcheck/ginserver"
	"github.com/yuwf/spellcheck/metrics"

	"github.com/gin-gonic/gin"
)

// 对外接口参数

type CorrectReq struct {
	Word string `form:"word" json:"word"`
}

type CorrectResp struct {
	Word        string   `json:"word"`
	Exact       bool     `json:"exact"`       // 词本身就在词典里
	Suggestions []string `json:"suggestions"` // 候选纠正 字典序
	Elapsed     int64    `json:"elapsed"`     // 微秒
}

type SearchReq struct {
	Word string `form:"word" json:"word"`
}

type SearchResp struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
}

type StatsResp struct {
	Words       int   `json:"words"`
	Nodes       int   `json:"nodes"`
	LoadElapsed int64 `json:"loadelapsed"` // 毫秒
}

func regHandlers(gs *ginserver.GinServer, d *dict.Dictionary) {
	ginserver.RegJsonHandler(gs, "", "/v1/correct", func(ctx context.Context, c *gin.Context, req *CorrectReq, resp *CorrectResp) {
		entry := time.Now()
		resp.Word = req.Word
		resp.Suggestions = d.Correct(ctx, req.Word)
		resp.Exact = len(resp.Suggestions) == 1 && resp.Suggestions[0] == strings.ToLower(req.Word)
		resp.Elapsed = int64(time.Since(entry) / time.Microsecond)
		if resp.Suggestions == nil {
			resp.Suggestions = []string{} // json里保持[]
		}
	})

	ginserver.RegJsonHandler(gs, "", "/v1/search", func(ctx context.Context, c *gin.Context, req *SearchReq, resp *SearchResp) {
		resp.Word = req.Word
		resp.Found = d.Find(ctx, req.Word)
	})

	ginserver.RegJsonHandler(gs, "GET", "/v1/stats", func(ctx context.Context, c *gin.Context, req *struct{}, resp *StatsResp) {
		resp.Words = d.WordCount()
		resp.Nodes = d.NodeCount()
		resp.LoadElapsed = int64(d.LoadElapsed() / time.Millisecond)
	})

	metricsHandler := metrics.Handler()
	gs.RegHandler("GET", "/metrics", func(ctx context.Context, c *gin.Context) {
		metricsHandler(c)
	})
}
