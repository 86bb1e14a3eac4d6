package textmatch

import (
	"strings"
	"unicode/utf8"
)

// Pattern 带权重的匹配短语
type Pattern struct {
	Phrase string
	Weight int
}

// Match 对文本做大小写不敏感的子串匹配，返回命中的短语和权重之和。
// 刻意不做词边界切分（"mad" 会命中 "madness"），与既有判定行为保持一致。
func Match(text string, table []Pattern) (matched []string, total int) {
	lower := strings.ToLower(text)
	for _, p := range table {
		if p.Phrase == "" {
			continue
		}
		if strings.Contains(lower, p.Phrase) {
			matched = append(matched, p.Phrase)
			total += p.Weight
		}
	}
	return matched, total
}

// ContainsAny 判断文本是否包含任一短语（大小写不敏感）
func ContainsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// CountMatches 统计命中的短语个数（按短语计，不按权重）
func CountMatches(text string, phrases []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			count++
		}
	}
	return count
}

// Truncate 截取前 max 个字符，按 rune 计数，不会把多字节字符截成非法 UTF-8
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// FindAll 返回文本中出现的所有短语（保持表内顺序）
func FindAll(text string, phrases []string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			found = append(found, p)
		}
	}
	return found
}
