package phasor

import (
	"math"
	"math/cmplx"
	"phasor/types"
)

// Conjugate 共轭：模不变，相位取反
func (p Phasor) Conjugate() Phasor {
	return FromPolar(p.mod, -p.rad)
}

// Neg 取负：模不变，相位加 π。
// 相位不回绕，多次取负会持续增长。
func (p Phasor) Neg() Phasor {
	return FromPolar(p.mod, p.rad+math.Pi)
}

// Add 加法，在直角坐标下计算
func (p Phasor) Add(other Phasor) Phasor {
	return FromPolar(cmplx.Polar(p.rect + other.rect))
}

// Sub 减法，在直角坐标下计算
func (p Phasor) Sub(other Phasor) Phasor {
	return FromPolar(cmplx.Polar(p.rect - other.rect))
}

// Mul 乘法：|Z1|*|Z2| ∠ (θ1 + θ2)
func (p Phasor) Mul(other Phasor) Phasor {
	return FromPolar(p.mod*other.mod, p.rad+other.rad)
}

// Div 除法：|Z1|/|Z2| ∠ (θ1 - θ2)，除数模为零时返回 ErrDivisionByZero
func (p Phasor) Div(other Phasor) (Phasor, error) {
	if other.mod == 0 {
		return Phasor{}, types.DivisionByZero("相量模为零")
	}
	return FromPolar(p.mod/other.mod, p.rad-other.rad), nil
}

// Pow 棣莫弗公式：|Z|^n ∠ (n·θ)，n 可以是任意实数。
// 模为零且 n 为负时返回 ErrDivisionByZero；
// 负模的非整数次幂不是实数模，返回 ErrType。
func (p Phasor) Pow(n float64) (Phasor, error) {
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return Phasor{}, types.NotSupported("**", p, n)
	case p.mod == 0 && n < 0:
		return Phasor{}, types.DivisionByZero("零模相量的负次幂")
	case p.mod < 0 && n != math.Trunc(n):
		return Phasor{}, types.NotSupported("**", p, n)
	}
	return FromPolar(math.Pow(p.mod, n), p.rad*n), nil
}

// Sum 求和。空输入返回 Zero()，否则以第一个相量为初值依次相加，
// 因此单个相量求和结果与其自身完全相同。
func Sum(ps ...Phasor) Phasor {
	if len(ps) == 0 {
		return Zero()
	}
	sum := ps[0]
	for _, p := range ps[1:] {
		sum = sum.Add(p)
	}
	return sum
}
