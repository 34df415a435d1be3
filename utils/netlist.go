package utils

import (
	"fmt"
	"phasor/types"
	"strconv"
	"strings"
)

// NetList 网表值列表（方括号内以逗号分隔的内容）
type NetList []string

// SplitNetList 按逗号分割值列表并去掉首尾空白
func SplitNetList(s string) NetList {
	if strings.TrimSpace(s) == "" {
		return NetList{}
	}
	parts := strings.Split(s, ",")
	result := make(NetList, len(parts))
	for i, p := range parts {
		result[i] = strings.TrimSpace(p)
	}
	return result
}

// KeyValue 解析第 i 项的 key=value
func (value NetList) KeyValue(i int) (key, val string, ok bool) {
	if i >= len(value) {
		return "", "", false
	}
	key, val, ok = strings.Cut(value[i], "=")
	return strings.TrimSpace(key), strings.TrimSpace(val), ok && strings.TrimSpace(key) != ""
}

// ValueMap 将整个列表转换为关键字参数
func (value NetList) ValueMap() (types.ValueMap, error) {
	result := make(types.ValueMap, len(value))
	for i := range value {
		key, val, ok := value.KeyValue(i)
		if !ok {
			return nil, fmt.Errorf("参数 '%s' 不是 key=value 形式", value[i])
		}
		if _, dup := result[key]; dup {
			return nil, fmt.Errorf("参数 '%s' 重复定义", key)
		}
		result[key] = val
	}
	return result, nil
}

// ParseFloat64 解析可选的浮点参数，不存在时返回 nil
func ParseFloat64(value types.ValueMap, key string) (*float64, error) {
	s, ok := value[key]
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("参数 %s=%s 不是实数: %w", key, s, types.ErrType)
	}
	return &v, nil
}

// ParseString 解析可选的字符串参数，不存在时返回 nil
func ParseString(value types.ValueMap, key string) *string {
	if s, ok := value[key]; ok {
		return &s
	}
	return nil
}

// FormatFloat 导出浮点数，保留完整精度
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Ptr 返回值的指针，用于构造可选参数
func Ptr[T any](v T) *T { return &v }
