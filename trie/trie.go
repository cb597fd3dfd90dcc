package trie

// https://github.com/yuwf/spellcheck

import (
	"sort"
)

// Trie 字典容器
// 构建阶段单协程Insert，构建完成后只读，查询之间无需加锁
// 没有删除操作，节点数只增不减
type Trie struct {
	root      *Node
	nodeCount int // 除根以外分配过的节点总数 重复插入同一个词不会产生新节点
}

func NewTrie() *Trie {
	return &Trie{root: &Node{}}
}

// NodeCount 当前节点数量 不含根节点
func (t *Trie) NodeCount() int {
	return t.nodeCount
}

// Insert 插入一个词 大小写不敏感，非字母字符直接跳过不占树层
// 插入"don't"和插入"dont"生成同一条路径
func (t *Trie) Insert(word string) {
	node := t.root
	prefix := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !isAlpha(c) {
			continue
		}
		c = lower(c)
		prefix = append(prefix, c)
		idx := int(c - 'a')
		if node.children[idx] == nil {
			node.children[idx] = &Node{}
			t.nodeCount++
		}
		node = node.children[idx]
		// 每个途经节点都落一份前缀，word和节点位置始终一致
		if node.word == "" {
			node.word = string(prefix)
		}
	}
	// 根节点永远不是词尾 纯非字母的输入等价于没插入
	if node != t.root {
		node.isEndpoint = true
	}
}

// Find 精确查找 词只是更长词的前缀时按不存在处理
func (t *Trie) Find(word string) bool {
	node := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !isAlpha(c) {
			continue
		}
		child := node.child(c)
		if child == nil {
			return false
		}
		node = child
	}
	return node.isEndpoint
}

// Correct 返回word的候选纠正集合 字典序排列且去重，查不到返回空
// 纠错模型只覆盖两类笔误：元音敲错、同一个字母多敲了一遍
// 精确命中时直接短路，返回只含word本身的单元素集合
func (t *Trie) Correct(word string) []string {
	w := normalize(word)
	if t.Find(w) {
		return []string{w}
	}
	results := make(map[string]struct{})
	t.fuzzy(w, t.root, results)
	if len(results) == 0 {
		return nil
	}
	out := make([]string, 0, len(results))
	for s := range results {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// fuzzy 已知错误模型的递归遍历
// suffix是查询词还没消费的后缀，node是当前字典节点
// 每层递归suffix至少缩短一个字符，深度不超过查询词长度
func (t *Trie) fuzzy(suffix string, node *Node, results map[string]struct{}) {
	if len(suffix) == 0 {
		// 搜索的叶子 当前节点是词尾就收集，不是也正常返回
		if node.isEndpoint {
			results[node.word] = struct{}{}
		}
		return
	}

	c := suffix[0]
	child := node.child(c)
	if child != nil {
		// 实际敲的字母就是一条合法的继续路径
		t.fuzzy(suffix[1:], child, results)
		// 同一个字母连敲了两次 折叠成一次，树上不多走一层
		if len(suffix) >= 2 && suffix[1] == c {
			t.fuzzy(suffix[2:], child, results)
		}
	}
	if isVowel(c) {
		// 元音敲错 所有存在子节点的元音都按等价的纠正路径展开
		// 敲的元音本身没有子节点时也一样尝试
		for _, v := range vowels {
			if vc := node.children[v-'a']; vc != nil {
				t.fuzzy(suffix[1:], vc, results)
			}
		}
	}
	// 辅音没有对应子节点时该路径静默终止
	// 辅音的插入/缺失/换位不在模型覆盖范围内
}

// normalize 转小写并丢掉非字母字符 让Correct对任意字符串都是全函数
func normalize(word string) string {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !isAlpha(c) || (c >= 'A' && c <= 'Z') {
			goto rebuild
		}
	}
	return word
rebuild:
	b := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		if isAlpha(c) {
			b = append(b, lower(c))
		}
	}
	return string(b)
}
