package trie

// https://github.com/yuwf/spellcheck

import (
	"reflect"
	"testing"
)

func build(words ...string) *Trie {
	t := NewTrie()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func TestInsertFind(t *testing.T) {
	tr := build("cat", "cot", "cut", "cast")

	for _, w := range []string{"cat", "cot", "cut", "cast"} {
		if !tr.Find(w) {
			t.Errorf("Find(%q) = false, want true", w)
		}
	}
	// 前缀不是词尾
	if tr.Find("ca") {
		t.Error("Find(\"ca\") = true, want false")
	}
	if tr.Find("dog") {
		t.Error("Find(\"dog\") = true, want false")
	}
	// 大小写不敏感
	if !tr.Find("CAT") || !tr.Find("Cat") {
		t.Error("Find should be case-insensitive")
	}
}

func TestInsertSkipsNonAlpha(t *testing.T) {
	tr := build("don't")

	if !tr.Find("dont") {
		t.Error("Find(\"dont\") = false after Insert(\"don't\")")
	}
	if !tr.Find("don't") {
		t.Error("Find(\"don't\") = false after Insert(\"don't\")")
	}
	n := tr.NodeCount()
	tr.Insert("dont")
	if tr.NodeCount() != n {
		t.Errorf("Insert(\"dont\") allocated nodes, count %d -> %d", n, tr.NodeCount())
	}
}

func TestInsertIdempotent(t *testing.T) {
	tr := build("book")
	n := tr.NodeCount()
	tr.Insert("book")
	tr.Insert("BOOK")
	if tr.NodeCount() != n {
		t.Errorf("duplicate insert changed node count %d -> %d", n, tr.NodeCount())
	}
	if got := tr.Correct("book"); !reflect.DeepEqual(got, []string{"book"}) {
		t.Errorf("Correct(\"book\") = %v, want [book]", got)
	}
}

func TestNodeCount(t *testing.T) {
	tr := NewTrie()
	if tr.NodeCount() != 0 {
		t.Errorf("empty trie node count = %d, want 0", tr.NodeCount())
	}
	tr.Insert("cat")
	if tr.NodeCount() != 3 {
		t.Errorf("node count = %d, want 3", tr.NodeCount())
	}
	tr.Insert("cot") // 共享c 新增o t
	if tr.NodeCount() != 5 {
		t.Errorf("node count = %d, want 5", tr.NodeCount())
	}
}

func TestCorrectExactShortCircuit(t *testing.T) {
	tr := build("receive", "recieve")

	if !tr.Find("receive") || !tr.Find("recieve") {
		t.Fatal("both spellings should be endpoints")
	}
	// 精确命中短路，不做任何元音替换展开
	if got := tr.Correct("recieve"); !reflect.DeepEqual(got, []string{"recieve"}) {
		t.Errorf("Correct(\"recieve\") = %v, want [recieve]", got)
	}
	if got := tr.Correct("RECEIVE"); !reflect.DeepEqual(got, []string{"receive"}) {
		t.Errorf("Correct(\"RECEIVE\") = %v, want [receive]", got)
	}
}

func TestCorrectVowelSubstitution(t *testing.T) {
	tr := build("cat", "cot", "cut", "cast")

	got := tr.Correct("cit")
	want := []string{"cat", "cot", "cut"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Correct(\"cit\") = %v, want %v", got, want)
	}
}

func TestCorrectDoubledLetter(t *testing.T) {
	tr := build("book")

	// 查询里多敲的重复字母可以折叠
	if got := tr.Correct("boook"); !reflect.DeepEqual(got, []string{"book"}) {
		t.Errorf("Correct(\"boook\") = %v, want [book]", got)
	}
	// 反方向不支持 缺一个重复字母不补
	if got := tr.Correct("bok"); len(got) != 0 {
		t.Errorf("Correct(\"bok\") = %v, want empty", got)
	}
}

func TestCorrectDoubledConsonant(t *testing.T) {
	tr := build("later")

	if got := tr.Correct("latter"); !reflect.DeepEqual(got, []string{"later"}) {
		t.Errorf("Correct(\"latter\") = %v, want [later]", got)
	}
}

func TestCorrectConsonantDeadPath(t *testing.T) {
	tr := build("cat")

	// 辅音错误不在模型内
	if got := tr.Correct("bat"); len(got) != 0 {
		t.Errorf("Correct(\"bat\") = %v, want empty", got)
	}
	if got := tr.Correct("cats"); len(got) != 0 {
		t.Errorf("Correct(\"cats\") = %v, want empty", got)
	}
}

func TestCorrectEmptyAndInvalid(t *testing.T) {
	tr := build("cat")

	if got := tr.Correct(""); len(got) != 0 {
		t.Errorf("Correct(\"\") = %v, want empty", got)
	}
	if got := tr.Correct("zzz"); len(got) != 0 {
		t.Errorf("Correct(\"zzz\") = %v, want empty", got)
	}
	// 非字母在入口被丢弃 不会崩
	if got := tr.Correct("c-a-t"); !reflect.DeepEqual(got, []string{"cat"}) {
		t.Errorf("Correct(\"c-a-t\") = %v, want [cat]", got)
	}
}

func TestCorrectIdempotent(t *testing.T) {
	tr := build("cat", "cot", "cut")

	first := tr.Correct("cit")
	for i := 0; i < 3; i++ {
		if got := tr.Correct("cit"); !reflect.DeepEqual(got, first) {
			t.Errorf("Correct not idempotent: %v != %v", got, first)
		}
	}
}

func TestCorrectMixedErrors(t *testing.T) {
	tr := build("feel")

	// 元音替换和重复折叠在一次遍历里独立组合
	if got := tr.Correct("fool"); !reflect.DeepEqual(got, []string{"feel"}) {
		t.Errorf("Correct(\"fool\") = %v, want [feel]", got)
	}
	if got := tr.Correct("fel"); len(got) != 0 {
		t.Errorf("Correct(\"fel\") = %v, want empty", got)
	}
}

func BenchmarkCorrect(b *testing.B) {
	tr := build("cat", "cot", "cut", "cast", "book", "boot", "bout",
		"receive", "recieve", "later", "latter", "letter")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Correct("cit")
		tr.Correct("boook")
		tr.Correct("lettar")
	}
}
