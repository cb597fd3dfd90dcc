package loader

// https://github.com/yuwf/spellcheck

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"

	"github.com/yuwf/spellcheck/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// JsonLoader json配置加载对象 协程安全
// 如果T有成员函数Create，构造对象后调用
// 如果T有成员函数Normalize，加载完配置后调用
type JsonLoader[T any] struct {
	sync.RWMutex
	conf       *T                  // 配置对象
	src        []byte              // 原始值
	updateHook []func(old, new *T) // 配置更新后的回调
}

// Get 获取配置 返回的指针一定不为nil 外层不需要再判断
func (l *JsonLoader[T]) Get() *T {
	l.RLock()
	if l.conf != nil {
		defer l.RUnlock()
		return l.conf
	}
	l.RUnlock()

	l.Lock()
	defer l.Unlock()
	if l.conf == nil {
		l.conf = newConf[T]()
	}
	return l.conf
}

// RegHook 注册配置修改Hook
func (l *JsonLoader[T]) RegHook(hook func(old, new *T)) {
	l.Lock()
	defer l.Unlock()
	l.updateHook = append(l.updateHook, hook)
}

func (l *JsonLoader[T]) GetSrc() []byte {
	l.RLock()
	defer l.RUnlock()
	return l.src
}

func (l *JsonLoader[T]) Load(src []byte, path string) error {
	defer utils.HandlePanic()

	// 检查
	if bytes.Equal(l.GetSrc(), src) && l.GetSrc() != nil {
		return nil
	}

	// 构造一个T对象
	conf := newConf[T]()
	err := json.Unmarshal(src, conf)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("JsonLoader Load Unmarshal error")
		return errors.Wrap(err, "jsonloader unmarshal")
	}
	// 调用对象的Normalize函数
	if normalizer, ok := any(conf).(Normalizer); ok {
		normalizer.Normalize()
	}

	log.Info().Str("path", path).Msg("JsonLoader Load Success")

	old := l.Get()
	// 替换值
	l.Lock()
	l.conf = conf
	l.src = make([]byte, len(src)) // 深拷贝 防止传入的src会修改
	copy(l.src, src)
	hook := l.updateHook // 拷贝出一份来
	l.Unlock()

	// 回调
	for _, f := range hook {
		f(old, conf)
	}
	return nil
}

func (l *JsonLoader[T]) LoadFile(path string) error {
	defer utils.HandlePanic()

	src, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("JsonLoader LoadFile ReadFile error")
		return errors.Wrap(err, "jsonloader read")
	}
	return l.Load(src, path)
}

func (l *JsonLoader[T]) SaveFile(path string) error {
	src := l.GetSrc()
	if src == nil {
		err := errors.New("src is nil")
		log.Error().Err(err).Str("path", path).Msg("JsonLoader SaveFile error")
		return err
	}
	err := os.WriteFile(path, src, 0644)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("JsonLoader SaveFile error")
	}
	return err
}

// newConf 构造配置对象 依次调用Create和Normalize
func newConf[T any]() *T {
	conf := new(T)
	if creater, ok := any(conf).(Creater); ok {
		creater.Create()
	}
	if normalizer, ok := any(conf).(Normalizer); ok {
		normalizer.Normalize()
	}
	return conf
}
