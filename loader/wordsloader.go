package loader

// https://github.com/yuwf/spellcheck

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"sync"

	"github.com/yuwf/spellcheck/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// WordsLoader 词表加载对象 一行一个词 协程安全
// 空行跳过，行内前后空白去掉，不做大小写和字符集处理，那是字典树关心的事
type WordsLoader struct {
	sync.RWMutex
	words      []string                   // 解析出的词流
	src        []byte                     // 原始值
	updateHook []func(old, new []string) // 词表更新后的回调
}

// Get 获取词表 返回的切片只读，更新时整体替换不原地改
func (l *WordsLoader) Get() []string {
	l.RLock()
	defer l.RUnlock()
	return l.words
}

// RegHook 注册词表更新Hook
func (l *WordsLoader) RegHook(hook func(old, new []string)) {
	l.Lock()
	defer l.Unlock()
	l.updateHook = append(l.updateHook, hook)
}

func (l *WordsLoader) GetSrc() []byte {
	l.RLock()
	defer l.RUnlock()
	return l.src
}

func (l *WordsLoader) Load(src []byte, path string) error {
	defer utils.HandlePanic()

	// 检查
	if bytes.Equal(l.GetSrc(), src) && l.GetSrc() != nil {
		return nil
	}

	words, err := parseWords(src)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("WordsLoader Load error")
		return err
	}

	log.Info().Str("path", path).Int("words", len(words)).Msg("WordsLoader Load Success")

	old := l.Get()
	// 替换值
	l.Lock()
	l.words = words
	l.src = make([]byte, len(src)) // 深拷贝 防止传入的src会修改
	copy(l.src, src)
	hook := l.updateHook // 拷贝出一份来
	l.Unlock()

	// 回调
	for _, f := range hook {
		f(old, words)
	}
	return nil
}

func (l *WordsLoader) LoadFile(path string) error {
	defer utils.HandlePanic()

	// 读取文件
	src, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("WordsLoader LoadFile ReadFile error")
		return errors.Wrap(err, "wordsloader read")
	}
	return l.Load(src, path)
}

func (l *WordsLoader) SaveFile(path string) error {
	src := l.GetSrc()
	if src == nil {
		err := errors.New("src is nil")
		log.Error().Err(err).Str("path", path).Msg("WordsLoader SaveFile error")
		return err
	}
	err := os.WriteFile(path, src, 0644)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("WordsLoader SaveFile error")
	}
	return err
}

func parseWords(src []byte) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(src))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "wordsloader scan")
	}
	return words, nil
}
