package ast

import "strings"

// splitComment 分离行尾注释
func splitComment(line string) (code, comment string, ok bool) {
	i := strings.Index(line, tokenCommentHash)
	if j := strings.Index(line, tokenCommentLine); j >= 0 && (i < 0 || j < i) {
		return line[:j], strings.TrimSpace(line[j+len(tokenCommentLine):]), true
	}
	if i >= 0 {
		return line[:i], strings.TrimSpace(line[i+len(tokenCommentHash):]), true
	}
	return line, "", false
}

// isExpression 在参数列表之前出现 = 的行是表达式
func isExpression(line string) bool {
	i := strings.IndexAny(line, tokenAssign+tokenLBracket)
	return i >= 0 && line[i] == tokenAssign[0]
}

func isUnary(s string) bool {
	switch s {
	case OpNeg, OpConj, OpPF, OpPower:
		return true
	}
	return false
}

func isBinary(s string) bool {
	switch s {
	case "+", "-", "*", "/", "^", "**":
		return true
	}
	return false
}

// isLetter 检查是否是字母
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isIdent 名称以字母开头，由字母、数字和下划线组成
func isIdent(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if c := s[i]; !isLetter(c) && c != '_' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
