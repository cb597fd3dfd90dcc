package trie

// https://github.com/yuwf/spellcheck

// 字母表大小 字典只处理26个小写拉丁字母，其他字符在入口处全部被丢弃
const Alphabet = 26

var vowels = [5]byte{'a', 'e', 'i', 'o', 'u'}

// Node 字典树的一个节点，对应某一组词里的一个字母位置
// 节点只能从根沿唯一的字母路径到达，父节点独占子节点的所有权
type Node struct {
	children   [Alphabet]*Node // 每个字母一个子节点槽位 nil表示没有词在这个位置用该字母继续
	isEndpoint bool            // 根到该节点的路径是否拼出一个完整的词
	word       string          // 根到该节点的路径拼出的小写字符串 插入时维护，节点不存父指针无法回溯
}

// child 字符c对应的子节点 c必须是字母，入口函数负责过滤，这里不做检查
func (n *Node) child(c byte) *Node {
	return n.children[index(c)]
}

// index 字母到槽位的映射 大写一并转小写
func index(c byte) int {
	return int(lower(c) - 'a')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isVowel(c byte) bool {
	return c == 'a' || c == 'e' || c == 'i' || c == 'o' || c == 'u'
}
