package loader

// https://github.com/yuwf/spellcheck

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yuwf/spellcheck/utils"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// LocalWatch 本地文件监控器
// 监控的是文件所在的目录不是文件本身 linux下很多编辑工具改文件是删掉重命名，监控文件收不到Write
type LocalWatch struct {
	sync.RWMutex
	watchers map[string]*fileWatcher // 文件绝对路径 -> 监控器
	watcher  *fsnotify.Watcher       // 全局fsnotify监控器

	quit  chan int // 退出使用
	state int32    // 运行状态 0:未运行 1:loop中
}

// fileWatcher 单个文件监控器
type fileWatcher struct {
	path          string        // 监控的文件路径
	watchDir      string        // 监控的目录
	loader        Loader        // 加载器
	debounceTimer *time.Timer   // 防抖定时器
	debounceDelay time.Duration // 防抖延迟
}

// NewLocalWatch 创建本地文件监控器
func NewLocalWatch() (*LocalWatch, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error().Err(err).Msg("LocalWatch NewWatcher error")
		return nil, err
	}

	w := &LocalWatch{
		watchers: make(map[string]*fileWatcher),
		watcher:  watcher,
		quit:     make(chan int),
		state:    1,
	}
	go w.loop()

	return w, nil
}

// ListenFile 监听本地文件变化
// immediately: 是否立即加载一次，加载失败就不再监控
func (w *LocalWatch) ListenFile(path string, loader Loader, immediately bool) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("LocalWatch ListenFile Abs error")
		return err
	}
	watchDir := filepath.Dir(absPath)

	if immediately {
		if err := loader.LoadFile(absPath); err != nil {
			return err
		}
	}

	w.Lock()
	defer w.Unlock()

	if _, exists := w.watchers[absPath]; exists {
		log.Warn().Str("path", absPath).Msg("LocalWatch ListenFile already watching")
		return nil
	}

	// 同一个目录只向fsnotify注册一次
	if !w.dirWatched(watchDir) {
		if err := w.watcher.Add(watchDir); err != nil {
			log.Error().Err(err).Str("path", absPath).Msg("LocalWatch ListenFile Add error")
			return err
		}
	}

	fw := &fileWatcher{
		path:          absPath,
		watchDir:      watchDir,
		loader:        loader,
		debounceDelay: 100 * time.Millisecond,
	}
	w.watchers[absPath] = fw

	// 没要求立即加载 文件已经存在的话延迟读一次
	if !immediately {
		if _, err := os.Stat(absPath); err == nil {
			fw.reload()
		}
	}

	log.Info().Str("path", absPath).Msg("LocalWatch ListenFile")
	return nil
}

// CancelListenFile 取消监听本地文件
func (w *LocalWatch) CancelListenFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("LocalWatch CancelListenFile Abs error")
		return err
	}

	w.Lock()
	defer w.Unlock()

	fw, exists := w.watchers[absPath]
	if !exists {
		log.Warn().Str("path", absPath).Msg("LocalWatch CancelListenFile not watching")
		return nil
	}
	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	delete(w.watchers, absPath)

	// 目录下没有别的监控文件了才从fsnotify移除
	if !w.dirWatched(fw.watchDir) {
		w.watcher.Remove(fw.watchDir)
	}

	log.Info().Str("path", absPath).Msg("LocalWatch CancelListenFile stopped")
	return nil
}

// IsWatching 检查是否正在监控指定文件
func (w *LocalWatch) IsWatching(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	w.RLock()
	defer w.RUnlock()
	_, exists := w.watchers[absPath]
	return exists
}

func (w *LocalWatch) Close() {
	if !atomic.CompareAndSwapInt32(&w.state, 1, 0) {
		return
	}

	w.quit <- 1
	<-w.quit

	log.Info().Msg("LocalWatch Quit")
}

// 调用方需持有锁
func (w *LocalWatch) dirWatched(dir string) bool {
	for _, v := range w.watchers {
		if v.watchDir == dir {
			return true
		}
	}
	return false
}

// reload 防抖后重新加载 再次触发会把之前的定时器顶掉
func (fw *fileWatcher) reload() {
	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	fw.debounceTimer = time.AfterFunc(fw.debounceDelay, func() {
		defer utils.HandlePanic()
		fw.loader.LoadFile(fw.path)
	})
}

// loop 全局文件监控循环
func (w *LocalWatch) loop() {
	defer utils.HandlePanic()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				log.Error().Msg("LocalWatch events channel closed")
				w.exit()
				return
			}
			// 只处理写 重命名 创建
			if event.Op&(fsnotify.Write|fsnotify.Rename|fsnotify.Create) == 0 {
				continue
			}
			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				log.Error().Msg("LocalWatch errors channel closed")
				w.exit()
				return
			}
			log.Error().Err(err).Msg("LocalWatch error")

		case <-w.quit:
			w.exit()
			w.quit <- 1 // 反写下
			return
		}
	}
}

func (w *LocalWatch) exit() {
	atomic.StoreInt32(&w.state, 0) // 先标记
	defer utils.HandlePanic()

	w.Lock()
	defer w.Unlock()

	for _, fw := range w.watchers {
		if fw.debounceTimer != nil {
			fw.debounceTimer.Stop()
		}
	}
	w.watcher.Close()
	w.watchers = make(map[string]*fileWatcher)
}

func (w *LocalWatch) handle(event fsnotify.Event) {
	defer utils.HandlePanic()

	w.RLock()
	defer w.RUnlock()

	absPath, err := filepath.Abs(event.Name)
	if err != nil {
		absPath = event.Name
	}
	if fw, ok := w.watchers[absPath]; ok {
		fw.reload()
	}
}
