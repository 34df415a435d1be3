package phasor

import (
	"phasor/maths"
	"phasor/types"
	"phasor/utils"
)

// Type 元件类型
const Type types.ElementType = 1

func init() {
	types.ElementRegister(Type, "phasor", Config{})
}

// Config 网表配置，关键字为 mod、rad、gr、a、b、Rect
type Config struct{}

// Build 通过关键字参数创建相量
func (Config) Build(value types.ValueMap) (any, error) {
	for _, key := range value.Keys() {
		switch key {
		case "mod", "rad", "gr", "a", "b", "Rect":
		default:
			return nil, types.InvalidInput("未知参数 '%s'", key)
		}
	}
	args := Args{Rect: utils.ParseString(value, "Rect")}
	var err error
	if args.Mod, err = utils.ParseFloat64(value, "mod"); err != nil {
		return nil, err
	}
	if args.Rad, err = utils.ParseFloat64(value, "rad"); err != nil {
		return nil, err
	}
	if args.Gr, err = utils.ParseFloat64(value, "gr"); err != nil {
		return nil, err
	}
	if args.A, err = utils.ParseFloat64(value, "a"); err != nil {
		return nil, err
	}
	if args.B, err = utils.ParseFloat64(value, "b"); err != nil {
		return nil, err
	}
	return args.New()
}

// Export 导出为极坐标（角度）参数
func (Config) Export(v any) (types.ValueMap, bool) {
	p, ok := v.(Phasor)
	if !ok {
		return nil, false
	}
	return types.ValueMap{
		"mod": utils.FormatFloat(p.mod),
		"gr":  utils.FormatFloat(maths.Degrees(p.rad)),
	}, true
}
