package wattmeter

import (
	"fmt"
	"math"
	"phasor/maths"
	"phasor/types"
)

// Wattmeter 功率表，保存 |V|、|I| 与相位（弧度），按需计算有功功率
type Wattmeter struct {
	modV float64
	modI float64
	rad  float64
}

// Reading 读数
type Reading struct {
	V     float64 `json:"V"`     // 电压模
	I     float64 `json:"I"`     // 电流模
	Alpha float64 `json:"Alpha"` // 相位（角度）
	W     float64 `json:"W"`     // 有功功率
}

// Input 构造方式
type Input interface {
	wattmeter() *Wattmeter
}

// Radians 相位以弧度给出
type Radians struct {
	V, I, Rad float64
}

// Degrees 相位以角度给出
type Degrees struct {
	V, I, Deg float64
}

func (in Radians) wattmeter() *Wattmeter { return &Wattmeter{modV: in.V, modI: in.I, rad: in.Rad} }
func (in Degrees) wattmeter() *Wattmeter {
	return &Wattmeter{modV: in.V, modI: in.I, rad: maths.Radians(in.Deg)}
}

// New 创建功率表
func New(in Input) (*Wattmeter, error) {
	if in == nil {
		return nil, types.InvalidInput(`需要 "modV" 与 "modI" 与 ("rad" 或 "gr")`)
	}
	return in.wattmeter(), nil
}

// Args 关键字参数形式的构造参数
type Args struct {
	ModV *float64
	ModI *float64
	Rad  *float64
	Gr   *float64
}

// Input 三项必须同时给出，同时给出 rad 与 gr 时以 gr 为准
func (args Args) Input() (Input, error) {
	if args.ModV == nil || args.ModI == nil || (args.Rad == nil && args.Gr == nil) {
		return nil, types.InvalidInput(`需要 "modV" 与 "modI" 与 ("rad" 或 "gr")`)
	}
	if args.Gr != nil {
		return Degrees{V: *args.ModV, I: *args.ModI, Deg: *args.Gr}, nil
	}
	return Radians{V: *args.ModV, I: *args.ModI, Rad: *args.Rad}, nil
}

// New 通过关键字参数创建功率表
func (args Args) New() (*Wattmeter, error) {
	in, err := args.Input()
	if err != nil {
		return nil, err
	}
	return New(in)
}

// Value 计算读数，每次调用都重新计算：W = |V| * |I| * cos(α)
func (w *Wattmeter) Value() Reading {
	return Reading{
		V:     w.modV,
		I:     w.modI,
		Alpha: maths.Degrees(w.rad),
		W:     w.Power(),
	}
}

// Power 有功功率
func (w *Wattmeter) Power() float64 {
	return w.modV * w.modI * math.Cos(w.rad)
}

// String 读数形式
func (w *Wattmeter) String() string {
	return fmt.Sprintf("V = %.4f, I = %.4f, α = %.4f° | w = %.4f W", w.modV, w.modI, maths.Degrees(w.rad), w.Power())
}

// GoString 调试形式
func (w *Wattmeter) GoString() string {
	return fmt.Sprintf("Wattmeter(modV=%.4f, modI=%.4f, gr=%.4f)", w.modV, w.modI, maths.Degrees(w.rad))
}
