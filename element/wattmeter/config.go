package wattmeter

import (
	"phasor/maths"
	"phasor/types"
	"phasor/utils"
)

// Type 元件类型
const Type types.ElementType = 2

func init() {
	types.ElementRegister(Type, "watt", Config{})
}

// Config 网表配置，关键字为 modV、modI、rad、gr
type Config struct{}

// Build 通过关键字参数创建功率表
func (Config) Build(value types.ValueMap) (any, error) {
	for _, key := range value.Keys() {
		switch key {
		case "modV", "modI", "rad", "gr":
		default:
			return nil, types.InvalidInput("未知参数 '%s'", key)
		}
	}
	var args Args
	var err error
	if args.ModV, err = utils.ParseFloat64(value, "modV"); err != nil {
		return nil, err
	}
	if args.ModI, err = utils.ParseFloat64(value, "modI"); err != nil {
		return nil, err
	}
	if args.Rad, err = utils.ParseFloat64(value, "rad"); err != nil {
		return nil, err
	}
	if args.Gr, err = utils.ParseFloat64(value, "gr"); err != nil {
		return nil, err
	}
	return args.New()
}

// Export 导出为角度参数
func (Config) Export(v any) (types.ValueMap, bool) {
	w, ok := v.(*Wattmeter)
	if !ok {
		return nil, false
	}
	return types.ValueMap{
		"modV": utils.FormatFloat(w.modV),
		"modI": utils.FormatFloat(w.modI),
		"gr":   utils.FormatFloat(maths.Degrees(w.rad)),
	}, true
}
