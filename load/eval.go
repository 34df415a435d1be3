package load

import (
	"fmt"
	"math"
	"phasor/element/phasor"
	"phasor/element/wattmeter"
	"phasor/load/ast"
	"phasor/types"
)

// PowerFactor 功率因数及负载性质
type PowerFactor struct {
	Value     float64
	Character phasor.Character
}

func (pf PowerFactor) String() string {
	return fmt.Sprintf("%.4f (%s)", pf.Value, pf.Character)
}

// Apply 按运算数类型执行二元运算。
// 相量之间支持 + - * /，相量 ^ 实数；功率表运算作用于有功功率并返回标量；
// 0 + 相量 返回相量本身，标量 + 功率表 返回标量与有功功率之和。
// 其他组合返回 ErrType。
func Apply(op string, a, b any) (any, error) {
	switch x := a.(type) {
	case phasor.Phasor:
		return applyPhasor(op, x, b)
	case *wattmeter.Wattmeter:
		return applyWattmeter(op, x, b)
	case float64:
		return applyFloat(op, x, b)
	}
	return nil, types.NotSupported(op, a, b)
}

func applyPhasor(op string, x phasor.Phasor, b any) (any, error) {
	if op == "^" {
		n, ok := b.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: 指数必须是实数, 实际为 %T", types.ErrType, b)
		}
		return x.Pow(n)
	}
	y, ok := b.(phasor.Phasor)
	if !ok {
		return nil, types.NotSupported(op, x, b)
	}
	switch op {
	case "+":
		return x.Add(y), nil
	case "-":
		return x.Sub(y), nil
	case "*":
		return x.Mul(y), nil
	case "/":
		return x.Div(y)
	}
	return nil, types.NotSupported(op, x, b)
}

func applyWattmeter(op string, x *wattmeter.Wattmeter, b any) (any, error) {
	switch y := b.(type) {
	case *wattmeter.Wattmeter:
		switch op {
		case "+":
			return x.Add(y), nil
		case "-":
			return x.Sub(y), nil
		case "*":
			return x.Mul(y), nil
		case "/":
			return x.Div(y)
		}
	case float64:
		switch op {
		case "*":
			return x.Scale(y), nil
		case "/":
			return x.DivScalar(y)
		}
	}
	return nil, types.NotSupported(op, x, b)
}

func applyFloat(op string, x float64, b any) (any, error) {
	switch y := b.(type) {
	case float64:
		switch op {
		case "+":
			return x + y, nil
		case "-":
			return x - y, nil
		case "*":
			return x * y, nil
		case "/":
			if y == 0 {
				return nil, types.DivisionByZero("标量为零")
			}
			return x / y, nil
		case "^":
			return math.Pow(x, y), nil
		}
	case *wattmeter.Wattmeter:
		switch op {
		case "+":
			return x + y.Power(), nil
		case "*":
			return y.Scale(x), nil
		case "/":
			return y.ScalarDiv(x)
		}
	case phasor.Phasor:
		if op == "+" && x == 0 {
			return y, nil
		}
	}
	return nil, types.NotSupported(op, x, b)
}

// Unary 一元运算：neg、conj、pf、power，空运算直接返回原值
func Unary(fn string, a any) (any, error) {
	switch fn {
	case ast.OpCopy:
		return a, nil
	case ast.OpNeg:
		switch x := a.(type) {
		case phasor.Phasor:
			return x.Neg(), nil
		case float64:
			return -x, nil
		}
	case ast.OpConj:
		if x, ok := a.(phasor.Phasor); ok {
			return x.Conjugate(), nil
		}
	case ast.OpPF:
		if x, ok := a.(phasor.Phasor); ok {
			v, c := x.PowerFactor()
			return PowerFactor{Value: v, Character: c}, nil
		}
	case ast.OpPower:
		if x, ok := a.(*wattmeter.Wattmeter); ok {
			return x.Power(), nil
		}
	}
	return nil, fmt.Errorf("%w: 不支持的运算 %s %T", types.ErrType, fn, a)
}

// Sum 求和。全部为相量时使用 phasor.Sum；
// 否则以 0 为初值依次相加，结果为标量，此时出现相量返回 ErrType。空输入返回 0。
func Sum(vals ...any) (any, error) {
	ps := make([]phasor.Phasor, 0, len(vals))
	for _, v := range vals {
		if p, ok := v.(phasor.Phasor); ok {
			ps = append(ps, p)
		}
	}
	switch {
	case len(vals) > 0 && len(ps) == len(vals):
		return phasor.Sum(ps...), nil
	case len(ps) > 0:
		return nil, fmt.Errorf("%w: sum 不能混合相量与标量或功率表", types.ErrType)
	}
	var sum any = 0.0
	for _, v := range vals {
		var err error
		if sum, err = Apply("+", sum, v); err != nil {
			return nil, err
		}
	}
	return sum, nil
}
