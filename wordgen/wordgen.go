package wordgen

// https://github.com/yuwf/spellcheck

import (
	"bufio"
	"bytes"
	"io"

	"github.com/yuwf/spellcheck/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// 错词生成 给测试和压测造样本用
// 按字符注错：元音随机换元音 字母随机写两遍 随机变大写

type Generator struct {
	words []string // 候选词表
}

func NewGenerator(words []string) *Generator {
	return &Generator{words: words}
}

func isVowel(c byte) bool {
	switch c | 0x20 {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// Mangle 对一个词注入随机拼写错误
func (g *Generator) Mangle(word string) string {
	var buf bytes.Buffer
	buf.Grow(len(word) + 2)
	for i := 0; i < len(word); i++ {
		c := word[i]
		r := utils.RandIntn(10)
		switch {
		case r < 3 && isVowel(c):
			buf.WriteByte(utils.RandPick(utils.VowelsCharset))
		case r == 4 || r == 5:
			buf.WriteByte(c)
			buf.WriteByte(c)
		case r > 7 && c >= 'a' && c <= 'z':
			buf.WriteByte(c - 'a' + 'A')
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

// GenerateN 随机挑n个词注错 任务丢进协程池 按下标写回保证顺序稳定
func (g *Generator) GenerateN(n int) []string {
	if n <= 0 || len(g.words) == 0 {
		return nil
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		i := i
		word := g.words[utils.RandIntn(len(g.words))]
		err := utils.SubmitProcess(func() {
			out[i] = g.Mangle(word)
		})
		if err != nil {
			log.Error().Err(err).Msg("Generate Submit")
			out[i] = g.Mangle(word)
		}
	}
	utils.WaitProcess(0)
	return out
}

// GenerateTo 生成n个错词写入w 每行一个 末尾补一行-1做结束标记
func (g *Generator) GenerateTo(w io.Writer, n int) error {
	bw := bufio.NewWriter(w)
	for _, word := range g.GenerateN(n) {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return errors.Wrap(err, "GenerateTo")
		}
	}
	if _, err := bw.WriteString("-1\n"); err != nil {
		return errors.Wrap(err, "GenerateTo")
	}
	return errors.Wrap(bw.Flush(), "GenerateTo")
}
