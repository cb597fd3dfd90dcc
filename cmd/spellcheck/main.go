package main

// https://github.com/yuwf/spellcheck

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yuwf/spellcheck/dict"
	"github.com/yuwf/spellcheck/log"
)

// 交互式拼写检查 从本地词表建树，stdin逐词查询，-1退出

var dictPath = flag.String("dict", "/usr/share/dict/words", "dictionary file, one word per line")

func main() {
	flag.Parse()
	log.DisableStdout() // 交互模式下日志不要混进提示输出

	fmt.Println("Welcome to the Spell Checker.")

	d := dict.NewDictionary()
	if err := d.LoadFile(*dictPath); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open %s!\n", *dictPath)
		os.Exit(1)
	}
	fmt.Printf("%d word(s) loaded into %d node(s) in %d millisecond(s).\n\n",
		d.WordCount(), d.NodeCount(), d.LoadElapsed()/time.Millisecond)

	ctx := context.TODO()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("Enter a word ('-1' to quit):")
		fmt.Print(" > ")
		if !scanner.Scan() {
			break
		}
		word := strings.TrimSpace(scanner.Text())
		if word == "-1" {
			break
		}
		if !dict.IsValidWord(word) {
			fmt.Println("Invalid input! Please try again with a word containing only [a-z].")
			continue
		}
		entry := time.Now()
		corrections := d.Correct(ctx, word)
		elapsed := time.Since(entry)
		if len(corrections) > 0 {
			fmt.Printf("%d possible correction(s) found in %d microsecond(s).\n",
				len(corrections), elapsed/time.Microsecond)
			fmt.Printf("Suggestion(s): %s\n", strings.Join(corrections, " "))
		} else {
			fmt.Println("No Suggestions")
		}
	}
	fmt.Println("Terminating program execution...")
}
