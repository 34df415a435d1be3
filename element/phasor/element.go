// Package phasor 实现交流电路计算用的相量（复数）类型。
//
// 相量同时保存极坐标（模、弧度）与直角坐标两种形式，二者始终表示同一个复数。
// 相位不做任何归一化，运算结果的相位就是原始的和、差或积。
package phasor

import (
	"math"
	"math/cmplx"
	"phasor/maths"
	"phasor/types"
)

// Phasor 相量，不可变值对象
type Phasor struct {
	mod  float64    // 模，按给定值保存（允许为负）
	rad  float64    // 相位（弧度）
	rect complex128 // 直角坐标缓存
}

// Input 构造方式，每种方式只携带自身需要的字段
type Input interface {
	phasor() (Phasor, error)
}

// PolarRadians 极坐标（弧度）
type PolarRadians struct {
	Mod float64
	Rad float64
}

// PolarDegrees 极坐标（角度）
type PolarDegrees struct {
	Mod float64
	Deg float64
}

// Rectangular 直角坐标
type Rectangular struct {
	A float64 // 实部
	B float64 // 虚部
}

// RectangularString 直角坐标字符串，如 "5+j3"、"10 - 5j"
type RectangularString struct {
	Rect string
}

func (in PolarRadians) phasor() (Phasor, error)      { return FromPolar(in.Mod, in.Rad), nil }
func (in PolarDegrees) phasor() (Phasor, error)      { return FromDegrees(in.Mod, in.Deg), nil }
func (in Rectangular) phasor() (Phasor, error)       { return FromRect(in.A, in.B), nil }
func (in RectangularString) phasor() (Phasor, error) { return Parse(in.Rect) }

// New 通过指定构造方式创建相量
func New(in Input) (Phasor, error) {
	if in == nil {
		return Phasor{}, types.InvalidInput("需要 (mod 与 rad/gr) 或 (a 与 b) 或 Rect")
	}
	return in.phasor()
}

// Args 关键字参数形式的构造参数，未提供的字段为 nil
type Args struct {
	Mod  *float64
	Rad  *float64
	Gr   *float64
	A    *float64
	B    *float64
	Rect *string
}

// Input 按 Rect、(mod, rad/gr)、(a, b) 的优先级选择构造方式
func (args Args) Input() (Input, error) {
	switch {
	case args.Rect != nil:
		return RectangularString{Rect: *args.Rect}, nil
	case args.Mod != nil:
		switch {
		case args.Rad != nil:
			return PolarRadians{Mod: *args.Mod, Rad: *args.Rad}, nil
		case args.Gr != nil:
			return PolarDegrees{Mod: *args.Mod, Deg: *args.Gr}, nil
		}
		return nil, types.InvalidInput("模 mod 缺少相位 (rad 或 gr)")
	case args.A != nil && args.B != nil:
		return Rectangular{A: *args.A, B: *args.B}, nil
	}
	return nil, types.InvalidInput("需要 (mod 与 rad/gr) 或 (a 与 b) 或 Rect")
}

// New 通过关键字参数创建相量
func (args Args) New() (Phasor, error) {
	in, err := args.Input()
	if err != nil {
		return Phasor{}, err
	}
	return New(in)
}

// FromPolar 通过模与弧度创建
func FromPolar(mod, rad float64) Phasor {
	return Phasor{mod: mod, rad: rad, rect: cmplx.Rect(mod, rad)}
}

// FromDegrees 通过模与角度创建
func FromDegrees(mod, deg float64) Phasor {
	return FromPolar(mod, maths.Radians(deg))
}

// FromRect 通过实部与虚部创建
func FromRect(a, b float64) Phasor {
	return FromComplex(complex(a, b))
}

// FromComplex 通过复数创建，模与相位由复数计算
func FromComplex(z complex128) Phasor {
	mod, rad := cmplx.Polar(z)
	return Phasor{mod: mod, rad: rad, rect: z}
}

// Zero 加法单位元 0∠0
func Zero() Phasor { return Phasor{} }

// Complex 直角坐标形式
func (p Phasor) Complex() complex128 { return p.rect }

// Rect 实部与虚部
func (p Phasor) Rect() (re, im float64) { return real(p.rect), imag(p.rect) }

// Polar 模与弧度
func (p Phasor) Polar() (mod, rad float64) { return p.mod, p.rad }

// PolarDeg 模与角度
func (p Phasor) PolarDeg() (mod, deg float64) { return p.mod, maths.Degrees(p.rad) }

// Character 负载性质
type Character string

const (
	Inductive  Character = "inductive"  // 感性
	Capacitive Character = "capacitive" // 容性
)

// PowerFactor 功率因数 cos(θ) 及负载性质。
// 仅对阻抗或功率相量有意义。
func (p Phasor) PowerFactor() (float64, Character) {
	if imag(p.rect) > 0 {
		return math.Cos(p.rad), Inductive
	}
	return math.Cos(p.rad), Capacitive
}
