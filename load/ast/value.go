package ast

import (
	"strconv"
	"strings"
)

// Value 表示一个值，可以是数字、名称或变量引用
type Value struct {
	Key   string // 参数名，表达式运算数为空
	Value string // 原始值（变量已去掉 % 前缀）
	IsVar bool   // 是否为变量
	Line  int    // 行号
}

func newValue(key, val string, lineNum int) Value {
	isVar := strings.HasPrefix(val, tokenVar)
	return Value{
		Key:   key,
		Value: strings.TrimPrefix(val, tokenVar),
		IsVar: isVar,
		Line:  lineNum,
	}
}

// ParseFloat64 解析64位浮点数
func (value Value) ParseFloat64() (float64, bool) {
	if value.IsVar {
		return 0, false
	}
	val, err := strconv.ParseFloat(value.Value, 64)
	return val, err == nil
}

// String 还原为网表文本
func (value Value) String() string {
	s := value.Value
	if value.IsVar {
		s = tokenVar + s
	}
	if value.Key != "" {
		s = value.Key + tokenAssign + s
	}
	return s
}
