package main

// https://github.com/yuwf/spellcheck

import (
	"flag"
	"fmt"
	"os"

	"github.com/yuwf/spellcheck/loader"
	"github.com/yuwf/spellcheck/log"
	"github.com/yuwf/spellcheck/wordgen"
)

// 错词样本生成 从词表随机挑词注错 写一个测试输入文件

var (
	dictPath = flag.String("dict", "/usr/share/dict/words", "dictionary file, one word per line")
	outPath  = flag.String("out", "wordsgenerated.txt", "output file")
	count    = flag.Int("n", 50, "number of misspelled words to generate")
)

func main() {
	flag.Parse()
	log.DisableStdout()

	words := &loader.WordsLoader{}
	if err := words.LoadFile(*dictPath); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open %s!\n", *dictPath)
		os.Exit(1)
	}

	file, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to create %s!\n", *outPath)
		os.Exit(1)
	}
	defer file.Close()

	g := wordgen.NewGenerator(words.Get())
	if err := g.GenerateTo(file, *count); err != nil {
		fmt.Fprintf(os.Stderr, "Generate failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d word(s) written to %s\n", *count, *outPath)
}
