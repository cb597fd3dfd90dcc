package loader

// https://github.com/yuwf/spellcheck

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	_ "github.com/yuwf/spellcheck/log"
)

func TestWordsLoader(t *testing.T) {
	var wl WordsLoader

	var hookOld, hookNew []string
	wl.RegHook(func(old, new []string) {
		hookOld, hookNew = old, new
	})

	err := wl.Load([]byte("cat\n cot \n\ncut\n"), "test")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"cat", "cot", "cut"}
	if !reflect.DeepEqual(wl.Get(), want) {
		t.Errorf("Get() = %v, want %v", wl.Get(), want)
	}
	if hookOld != nil || !reflect.DeepEqual(hookNew, want) {
		t.Errorf("hook got old=%v new=%v", hookOld, hookNew)
	}

	// 内容没变不触发回调
	hookNew = nil
	wl.Load([]byte("cat\n cot \n\ncut\n"), "test")
	if hookNew != nil {
		t.Error("hook fired on identical content")
	}
}

func TestWordsLoaderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var wl WordsLoader
	if err := wl.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if len(wl.Get()) != 2 {
		t.Errorf("Get() = %v, want 2 words", wl.Get())
	}

	save := filepath.Join(t.TempDir(), "save")
	if err := wl.SaveFile(save); err != nil {
		t.Fatal(err)
	}
	src, _ := os.ReadFile(save)
	if string(src) != "alpha\nbeta\n" {
		t.Errorf("saved %q", src)
	}
}

type confTest struct {
	Name  string   `json:"name"`
	Paths []string `json:"paths"`
}

func (c *confTest) Create() {
	c.Name = "default"
}

var normalized int

func (c *confTest) Normalize() {
	normalized++
}

func TestJsonLoader(t *testing.T) {
	var jl JsonLoader[confTest]

	// 未加载时Get返回Create出的默认值
	if jl.Get().Name != "default" {
		t.Errorf("default Name = %q", jl.Get().Name)
	}

	err := jl.Load([]byte(`{"name":"spelld","paths":["/v1/*"]}`), "test")
	if err != nil {
		t.Fatal(err)
	}
	if jl.Get().Name != "spelld" || len(jl.Get().Paths) != 1 {
		t.Errorf("Get() = %+v", jl.Get())
	}
	if normalized == 0 {
		t.Error("Normalize not called")
	}

	if err := jl.Load([]byte(`{bad json`), "test"); err == nil {
		t.Error("Load(bad json) = nil, want error")
	}
	// 失败不影响已有配置
	if jl.Get().Name != "spelld" {
		t.Errorf("Name = %q after failed load", jl.Get().Name)
	}
}

func TestLocalWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words")
	if err := os.WriteFile(path, []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}

	watch, err := NewLocalWatch()
	if err != nil {
		t.Fatal(err)
	}
	defer watch.Close()

	var wl WordsLoader
	updated := make(chan []string, 4)
	wl.RegHook(func(old, new []string) {
		updated <- new
	})

	if err := watch.ListenFile(path, &wl, true); err != nil {
		t.Fatal(err)
	}
	if !watch.IsWatching(path) {
		t.Error("IsWatching = false")
	}
	select {
	case words := <-updated:
		if !reflect.DeepEqual(words, []string{"one"}) {
			t.Errorf("initial load = %v", words)
		}
	case <-time.After(time.Second):
		t.Fatal("initial load hook not fired")
	}

	// 改写文件触发重载
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case words := <-updated:
		if !reflect.DeepEqual(words, []string{"one", "two"}) {
			t.Errorf("reload = %v", words)
		}
	case <-time.After(time.Second * 3):
		t.Fatal("reload hook not fired")
	}

	if err := watch.CancelListenFile(path); err != nil {
		t.Fatal(err)
	}
	if watch.IsWatching(path) {
		t.Error("IsWatching = true after cancel")
	}
}
