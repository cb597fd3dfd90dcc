package utils

// https://github.com/yuwf/spellcheck

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// 标准库内的函数 过渡下，加下判断，防止panic

// RandIntn [0,n)的随机数
func RandIntn(n int) int {
	if n <= 0 {
		caller := GetCallerDesc(1)
		log.Error().Int("n", n).Str("pos", caller.Pos()).Msg("RandParamErr")
		return 0
	}
	return rand.Intn(n)
}

// RandIntnm2 [n,m]的随机数
func RandIntnm2(n, m int) int {
	if !(n >= 0 && m >= n) {
		caller := GetCallerDesc(1)
		log.Error().Int("n", n).Int("m", m).Str("pos", caller.Pos()).Msg("RandParamErr")
		return 0
	}
	return rand.Int()%(m-n+1) + n
}

func RandShuffleSlice[T any](collection []T) []T {
	rand.Shuffle(len(collection), func(i, j int) {
		collection[i], collection[j] = collection[j], collection[i]
	})
	return collection
}

var (
	LowerCaseLettersCharset = []byte("abcdefghijklmnopqrstuvwxyz")
	UpperCaseLettersCharset = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	VowelsCharset           = []byte("aeiou")
)

// RandPick 从字符集里随机取一个字符
func RandPick(charset []byte) byte {
	if len(charset) == 0 {
		caller := GetCallerDesc(1)
		log.Error().Str("pos", caller.Pos()).Msg("RandPick empty charset")
		return 0
	}
	return charset[RandIntn(len(charset))]
}

// RandString2 用指定字符集生成随机字符串
func RandString2(size int, charset []byte) string {
	if size <= 0 || len(charset) == 0 {
		caller := GetCallerDesc(1)
		log.Error().Int("size", size).Int("charset", len(charset)).Str("pos", caller.Pos()).Msg("RandString2")
		return ""
	}
	b := make([]byte, size)
	for i := range b {
		b[i] = charset[RandIntn(len(charset))]
	}
	return string(b)
}
