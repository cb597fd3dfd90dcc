package dict

// https://github.com/yuwf/spellcheck

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/yuwf/spellcheck/trie"
	"github.com/yuwf/spellcheck/utils"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// 查询词的合法形式 纯字母，模型不认识别的字符
var wordRegexp *regexp2.Regexp

func init() {
	var err error
	wordRegexp, err = regexp2.Compile(`^[A-Za-z]+$`, regexp2.None)
	if err != nil {
		panic(err.Error())
	}
}

// IsValidWord 查询词是否是合法形式
func IsValidWord(word string) bool {
	ok, _ := wordRegexp.MatchString(word)
	return ok
}

// DictCommond 一次查询的封装 回调hook时使用
type DictCommond struct {
	Cmd     string            // 命令名 search correct
	Word    string            // 查询词
	Results []string          // 候选纠正 search时为空
	Found   bool              // search的结果 correct时表示精确命中
	Elapsed time.Duration     // 本次查询耗时
	Caller  *utils.CallerDesc // 调用位置 指标统计使用
}

// Dictionary 字典 内部持有一棵字典树
// 加载构建一棵新树后原子替换，查询永远看不到半截的树
// 查询词先做合法性校验，不合法的词直接按查无结果处理，不报错
type Dictionary struct {
	tree atomic.Pointer[trie.Trie]

	wordCount   atomic.Int64 // 最近一次加载的词数
	loadElapsed atomic.Int64 // 最近一次加载耗时 纳秒

	// 查询完成后回调 不加锁，要求查询开始前注册好
	hook []func(ctx context.Context, cmd *DictCommond)
}

func NewDictionary() *Dictionary {
	d := &Dictionary{}
	d.tree.Store(trie.NewTrie())
	return d
}

// RegHook 注册查询完成的回调 测量、统计用
func (d *Dictionary) RegHook(f func(ctx context.Context, cmd *DictCommond)) {
	d.hook = append(d.hook, f)
}

// Load 批量构建 words为字典词流，大小写混合和非字母字符都能容忍
// 构建期间旧树继续提供查询，构建完成整体替换
func (d *Dictionary) Load(words []string) {
	entry := time.Now()
	tree := trie.NewTrie()
	count := 0
	for _, w := range words {
		if w == "" {
			continue
		}
		tree.Insert(w)
		count++
	}
	elapsed := time.Since(entry)

	d.tree.Store(tree)
	d.wordCount.Store(int64(count))
	d.loadElapsed.Store(int64(elapsed))

	log.Info().Int("words", count).Int("nodes", tree.NodeCount()).
		Int64("elapsed", int64(elapsed/time.Millisecond)).
		Msg("Dictionary Load")
}

// LoadFile 从本地词表加载 一行一个词
func (d *Dictionary) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Dictionary LoadFile error")
		return errors.Wrap(err, "dictionary open")
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Dictionary LoadFile scan error")
		return errors.Wrap(err, "dictionary scan")
	}

	d.Load(words)
	return nil
}

// Find 精确查找
func (d *Dictionary) Find(ctx context.Context, word string) bool {
	entry := time.Now()
	found := d.tree.Load().Find(word)

	cmd := &DictCommond{
		Cmd:     "search",
		Word:    word,
		Found:   found,
		Elapsed: time.Since(entry),
		Caller:  utils.GetCallerDesc(1),
	}
	d.callhook(ctx, cmd)
	return found
}

// Correct 返回候选纠正集合 字典序去重
// 不合法的查询词（空、含非字母）返回空集合，永远不报错
func (d *Dictionary) Correct(ctx context.Context, word string) []string {
	entry := time.Now()

	var results []string
	if IsValidWord(word) {
		results = d.tree.Load().Correct(word)
	}

	cmd := &DictCommond{
		Cmd:     "correct",
		Word:    word,
		Results: results,
		Found:   len(results) == 1 && results[0] == strings.ToLower(word),
		Elapsed: time.Since(entry),
		Caller:  utils.GetCallerDesc(1),
	}
	d.callhook(ctx, cmd)
	return results
}

// WordCount 最近一次加载的词数
func (d *Dictionary) WordCount() int {
	return int(d.wordCount.Load())
}

// NodeCount 当前树的节点数
func (d *Dictionary) NodeCount() int {
	return d.tree.Load().NodeCount()
}

// LoadElapsed 最近一次加载耗时
func (d *Dictionary) LoadElapsed() time.Duration {
	return time.Duration(d.loadElapsed.Load())
}

func (d *Dictionary) callhook(ctx context.Context, cmd *DictCommond) {
	defer utils.HandlePanic()
	for _, f := range d.hook {
		f(ctx, cmd)
	}
}
