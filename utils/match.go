package utils

// https://github.com/yuwf/spellcheck

// IsMatch 通配符匹配 pattern支持?和*，?匹配单个字符 *匹配任意长度
// 大小写敏感，调用方需要的话自己先转小写
func IsMatch(pattern, s string) bool {
	pLen, sLen := len(pattern), len(s)
	// dp[i][j] pattern前i个是否能匹配s前j个
	dp := make([][]bool, pLen+1)
	for i := range dp {
		dp[i] = make([]bool, sLen+1)
	}
	dp[0][0] = true
	for i := 1; i <= pLen; i++ {
		if pattern[i-1] != '*' {
			break
		}
		dp[i][0] = true
	}
	for i := 1; i <= pLen; i++ {
		for j := 1; j <= sLen; j++ {
			switch pattern[i-1] {
			case '*':
				dp[i][j] = dp[i-1][j] || dp[i][j-1]
			case '?':
				dp[i][j] = dp[i-1][j-1]
			default:
				dp[i][j] = dp[i-1][j-1] && pattern[i-1] == s[j-1]
			}
		}
	}
	return dp[pLen][sLen]
}
