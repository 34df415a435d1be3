package phasor

import (
	"phasor/types"
	"strconv"
	"strings"
	"unicode"
)

// Normalize 将直角坐标字符串规范化为 "a+bj" 形式：
// 去掉空白并转小写，位于开头或符号之后且后面不是数字的 j 补 1，
// 再把 j 移到其后的系数之后。
func Normalize(s string) string {
	s = strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != 'j' {
			b.WriteByte(c)
			continue
		}
		boundary := i == 0 || strings.ContainsRune("+-(", rune(s[i-1]))
		if boundary && (i+1 == len(s) || !isDigit(s[i+1])) {
			b.WriteByte('1')
		}
		n := coefficientLen(s[i+1:])
		b.WriteString(s[i+1 : i+1+n])
		b.WriteByte('j')
		i += n
	}
	return b.String()
}

// coefficientLen 返回开头的系数长度：数字与小数点，可带指数
func coefficientLen(s string) int {
	n := 0
	for n < len(s) && (isDigit(s[n]) || s[n] == '.') {
		n++
	}
	if n == 0 || n >= len(s) || s[n] != 'e' {
		return n
	}
	m := n + 1
	if m < len(s) && (s[m] == '+' || s[m] == '-') {
		m++
	}
	if m < len(s) && isDigit(s[m]) {
		for m < len(s) && isDigit(s[m]) {
			m++
		}
		return m
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Parse 解析直角坐标字符串，如 "5+j3"、"5+3j"、"-8"、"j"、"5-j"
func Parse(s string) (Phasor, error) {
	norm := Normalize(s)
	// strconv 使用 i 作为虚数单位，并接受十六进制与下划线写法，这里只接受 j 与十进制
	if norm == "" || strings.ContainsAny(stripInf(norm), "ix_") {
		return Phasor{}, &types.ParseError{Original: s, Normalized: norm}
	}
	z, err := strconv.ParseComplex(strings.ReplaceAll(norm, "j", "i"), 128)
	if err != nil {
		return Phasor{}, &types.ParseError{Original: s, Normalized: norm, Err: err}
	}
	return FromComplex(z), nil
}

// stripInf 去掉 inf/infinity，剩下的 i 都是非法虚数单位
func stripInf(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "infinity", ""), "inf", "")
}
