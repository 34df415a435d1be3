package types

import (
	"errors"
	"fmt"
)

// 错误类型定义，调用方通过 errors.Is 判断
var (
	ErrInvalidInput   = errors.New("输入无效")  // 构造参数组合不满足
	ErrParse          = errors.New("解析失败")  // 直角坐标字符串无法解析
	ErrType           = errors.New("类型不支持") // 运算数类型不兼容或指数不是实数
	ErrDivisionByZero = errors.New("除数为零")  // 模或功率为零的除法
)

// ParseError 直角坐标字符串解析错误，同时保留原始与处理后的字符串
type ParseError struct {
	Original   string // 原始输入
	Normalized string // 内部规范化后的字符串
	Err        error  // 底层错误
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("直角坐标字符串 '%s' 格式无效, 处理后字符串: '%s'", e.Original, e.Normalized)
}

// Unwrap 使 errors.Is(err, ErrParse) 成立
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// InvalidInput 生成输入无效错误
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotSupported 生成运算不支持错误
func NotSupported(op string, a, b any) error {
	return fmt.Errorf("%w: 不支持的运算 %T %s %T", ErrType, a, op, b)
}

// DivisionByZero 生成除零错误
func DivisionByZero(what string) error {
	return fmt.Errorf("%w: %s", ErrDivisionByZero, what)
}
