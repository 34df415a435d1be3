package types

import (
	"fmt"
	"sort"
	"strings"
)

// ElementType 元件类型
type ElementType int

// 元件类型常量定义
const (
	TypeUnknown ElementType = iota // 未知类型
)

// ValueMap 关键字参数列表，键区分大小写（mod, gr, Rect ...）
type ValueMap map[string]string

// Keys 按字典序返回参数名
func (value ValueMap) Keys() []string {
	keys := make([]string, 0, len(value))
	for k := range value {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ElementConfig 元件配置，负责网表值与元件之间的转换
type ElementConfig interface {
	Build(value ValueMap) (any, error)      // 通过关键字参数创建元件
	Export(v any) (value ValueMap, ok bool) // 导出元件为关键字参数
}

// slementTypeString 元件映射
var slementTypeString = map[ElementType]struct {
	Name          string
	ElementConfig ElementConfig
}{
	TypeUnknown: {Name: "unknown", ElementConfig: nil},
}

// String 返回元件类型的字符串表示
func (t ElementType) String() string {
	if et, ok := slementTypeString[t]; ok {
		return et.Name
	}
	return "unknown"
}

// Config 返回元件配置
func (t ElementType) Config() ElementConfig {
	if et, ok := slementTypeString[t]; ok {
		return et.ElementConfig
	}
	return nil
}

// Build 通过类型创建元件
func (t ElementType) Build(value ValueMap) (any, error) {
	config := t.Config()
	if config == nil {
		return nil, fmt.Errorf("未知元件类型: %d", t)
	}
	return config.Build(value)
}

var mapName = map[string]ElementType{
	"unknown": TypeUnknown,
}

// GetNameType 通过名称获取类型
func GetNameType(name string) ElementType {
	return mapName[strings.ToLower(name)]
}

// GetValueType 查找能导出指定值的元件类型
func GetValueType(v any) (ElementType, ValueMap) {
	for et, e := range slementTypeString {
		if e.ElementConfig == nil {
			continue
		}
		if value, ok := e.ElementConfig.Export(v); ok {
			return et, value
		}
	}
	return TypeUnknown, nil
}

// ElementRegister 注册元件类型
func ElementRegister(et ElementType, name string, config ElementConfig) {
	name = strings.ToLower(name)
	if _, ok := slementTypeString[et]; ok {
		panic(fmt.Errorf("指定元件类型已经注册: %s:%d", name, et))
	}
	mapName[name] = et
	slementTypeString[et] = struct {
		Name          string
		ElementConfig ElementConfig
	}{
		Name:          name,
		ElementConfig: config,
	}
}
