package load

import (
	"fmt"
	"phasor/element/phasor"
	"phasor/element/wattmeter"
)

// Context 网表计算结果，按定义顺序保存命名值。
// 值的类型为 phasor.Phasor、*wattmeter.Wattmeter、float64 或 PowerFactor。
type Context struct {
	Names  []string       // 定义顺序
	Values map[string]any // 名称对应的值
}

// NewContext 创建空上下文
func NewContext() *Context {
	return &Context{Values: map[string]any{}}
}

// Set 定义新名称，名称不能重复
func (con *Context) Set(name string, v any) error {
	if _, ok := con.Values[name]; ok {
		return fmt.Errorf("名称 '%s' 重复定义", name)
	}
	con.Names = append(con.Names, name)
	con.Values[name] = v
	return nil
}

// Get 获取命名值
func (con *Context) Get(name string) (any, bool) {
	v, ok := con.Values[name]
	return v, ok
}

// Phasor 获取相量
func (con *Context) Phasor(name string) (phasor.Phasor, bool) {
	v, ok := con.Values[name].(phasor.Phasor)
	return v, ok
}

// Wattmeter 获取功率表
func (con *Context) Wattmeter(name string) (*wattmeter.Wattmeter, bool) {
	v, ok := con.Values[name].(*wattmeter.Wattmeter)
	return v, ok
}

// Float 获取标量
func (con *Context) Float(name string) (float64, bool) {
	v, ok := con.Values[name].(float64)
	return v, ok
}

// Len 命名值数量
func (con *Context) Len() int { return len(con.Names) }
