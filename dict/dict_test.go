package dict

// https://github.com/yuwf/spellcheck

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	_ "github.com/yuwf/spellcheck/log"
)

func TestLoadAndQuery(t *testing.T) {
	d := NewDictionary()
	d.Load([]string{"cat", "cot", "cut", "cast"})

	ctx := context.TODO()
	if d.WordCount() != 4 {
		t.Errorf("WordCount = %d, want 4", d.WordCount())
	}
	if d.NodeCount() == 0 {
		t.Error("NodeCount = 0 after load")
	}
	if !d.Find(ctx, "cat") {
		t.Error("Find(cat) = false")
	}
	if d.Find(ctx, "ca") {
		t.Error("Find(ca) = true, prefix is not a word")
	}
	got := d.Correct(ctx, "cit")
	want := []string{"cat", "cot", "cut"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Correct(cit) = %v, want %v", got, want)
	}
}

func TestCorrectValidation(t *testing.T) {
	d := NewDictionary()
	d.Load([]string{"cat"})

	ctx := context.TODO()
	// 不合法的查询词一律空集合 不报错
	for _, w := range []string{"", "c4t", "c-t", "猫"} {
		if got := d.Correct(ctx, w); len(got) != 0 {
			t.Errorf("Correct(%q) = %v, want empty", w, got)
		}
	}
	if got := d.Correct(ctx, "CAT"); !reflect.DeepEqual(got, []string{"cat"}) {
		t.Errorf("Correct(CAT) = %v, want [cat]", got)
	}
}

func TestReloadSwap(t *testing.T) {
	d := NewDictionary()
	d.Load([]string{"cat"})

	ctx := context.TODO()
	if !d.Find(ctx, "cat") {
		t.Fatal("Find(cat) = false")
	}

	// 重新加载整棵树替换 旧词消失
	d.Load([]string{"dog"})
	if d.Find(ctx, "cat") {
		t.Error("Find(cat) = true after reload")
	}
	if !d.Find(ctx, "dog") {
		t.Error("Find(dog) = false after reload")
	}
	if d.WordCount() != 1 {
		t.Errorf("WordCount = %d, want 1", d.WordCount())
	}
}

func TestHook(t *testing.T) {
	d := NewDictionary()
	d.Load([]string{"book"})

	var cmds []*DictCommond
	d.RegHook(func(ctx context.Context, cmd *DictCommond) {
		cmds = append(cmds, cmd)
	})

	ctx := context.TODO()
	d.Find(ctx, "book")
	d.Correct(ctx, "boook")

	if len(cmds) != 2 {
		t.Fatalf("hook called %d times, want 2", len(cmds))
	}
	if cmds[0].Cmd != "search" || !cmds[0].Found {
		t.Errorf("first cmd = %+v, want search found", cmds[0])
	}
	if cmds[1].Cmd != "correct" || len(cmds[1].Results) != 1 {
		t.Errorf("second cmd = %+v, want correct with 1 result", cmds[1])
	}
	if cmds[1].Caller == nil || cmds[1].Caller.Name() == "" {
		t.Error("caller desc missing")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	err := os.WriteFile(path, []byte("Cat\ncot\n\ndon't\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	d := NewDictionary()
	if err := d.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	ctx := context.TODO()
	if d.WordCount() != 3 {
		t.Errorf("WordCount = %d, want 3", d.WordCount())
	}
	if !d.Find(ctx, "cat") || !d.Find(ctx, "dont") {
		t.Error("words from file not found")
	}

	if err := d.LoadFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("LoadFile(missing) = nil, want error")
	}
}
