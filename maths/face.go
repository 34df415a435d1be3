package maths

import (
	"math"
	"math/cmplx"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// 浮点比较阈值（绝对与相对误差共用）
const Epsilon = 1e-9

// Number 是一个约束，允许任何浮点或复数类型
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Abs 返回任何支持的 Number 类型的绝对值。
func Abs[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// Radians 角度转弧度
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees 弧度转角度
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Equal 在默认容差内比较两个数
func Equal[T Number](a, b T) bool {
	return EqualWithin(a, b, Epsilon)
}

// EqualWithin 在指定容差内比较两个数，复数按差值的模比较
func EqualWithin[T Number](a, b T, tol float64) bool {
	switch x := any(a).(type) {
	case float32:
		return scalar.EqualWithinAbsOrRel(float64(x), float64(any(b).(float32)), tol, tol)
	case float64:
		return scalar.EqualWithinAbsOrRel(x, any(b).(float64), tol, tol)
	}
	d := Abs(a - b)
	return d <= tol || d <= tol*math.Max(Abs(a), Abs(b))
}

// EqualAngle 比较两个弧度角（模 2π）
func EqualAngle(a, b float64) bool {
	return scalar.EqualWithinAbs(math.Remainder(a-b, 2*math.Pi), 0, Epsilon)
}

// Round 按小数位四舍五入，用于输出精度
func Round(x float64, prec int) float64 {
	return scalar.Round(x, prec)
}

// Format 按小数位格式化，prec 小于 0 时保留完整精度
func Format(x float64, prec int) string {
	if prec < 0 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', prec, 64)
}
