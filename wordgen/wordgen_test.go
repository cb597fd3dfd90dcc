package wordgen

// https://github.com/yuwf/spellcheck

import (
	"bytes"
	"strings"
	"testing"

	_ "github.com/yuwf/spellcheck/log"
)

func TestMangleKeepsShape(t *testing.T) {
	g := NewGenerator([]string{"banana"})
	for i := 0; i < 100; i++ {
		got := g.Mangle("banana")
		if len(got) < len("banana") || len(got) > 2*len("banana") {
			t.Fatalf("Mangle len out of range %v", got)
		}
		// 只会换元音 写双 变大写 小写后去重不会引入新辅音
		for j := 0; j < len(got); j++ {
			c := got[j] | 0x20
			if c < 'a' || c > 'z' {
				t.Fatalf("Mangle non alpha %v", got)
			}
		}
	}
}

func TestGenerateN(t *testing.T) {
	g := NewGenerator([]string{"cat", "dog", "fish"})
	out := g.GenerateN(50)
	if len(out) != 50 {
		t.Fatalf("GenerateN len %v", len(out))
	}
	for _, w := range out {
		if w == "" {
			t.Fatal("GenerateN empty word")
		}
	}
	if g.GenerateN(0) != nil {
		t.Fatal("GenerateN 0 not nil")
	}
}

func TestGenerateTo(t *testing.T) {
	g := NewGenerator([]string{"hello"})
	var buf bytes.Buffer
	if err := g.GenerateTo(&buf, 5); err != nil {
		t.Fatalf("GenerateTo %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("GenerateTo lines %v", lines)
	}
	if lines[5] != "-1" {
		t.Fatalf("GenerateTo no terminator %v", lines)
	}
}
