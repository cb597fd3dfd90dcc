package utils

// https://github.com/yuwf/spellcheck

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestIsMatch(t *testing.T) {
	cases := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"*", "anything", true},
		{"", "", true},
		{"", "a", false},
		{"/v1/*", "/v1/correct", true},
		{"/v1/*", "/v2/correct", false},
		{"c?t", "cat", true},
		{"c?t", "cast", false},
		{"*rect*", "/v1/correct", true},
	}
	for _, c := range cases {
		if got := IsMatch(c.pattern, c.s); got != c.want {
			t.Errorf("IsMatch(%q, %q) = %v, want %v", c.pattern, c.s, got, c.want)
		}
	}
}

func TestRandPick(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := RandPick(VowelsCharset)
		switch c {
		case 'a', 'e', 'i', 'o', 'u':
		default:
			t.Fatalf("RandPick returned %q, not a vowel", c)
		}
	}
	if c := RandPick(nil); c != 0 {
		t.Errorf("RandPick(nil) = %q, want 0", c)
	}
}

func TestSubmitProcess(t *testing.T) {
	var cnt int32
	for i := 0; i < 20; i++ {
		SubmitProcess(func() {
			atomic.AddInt32(&cnt, 1)
		})
	}
	WaitProcess(time.Second * 5)
	if atomic.LoadInt32(&cnt) != 20 {
		t.Errorf("processed %d tasks, want 20", cnt)
	}
}
