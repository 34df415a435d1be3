package wattmeter

import "phasor/types"

// 以下运算都作用于有功功率，返回浮点数而不是功率表

// Add W1 + W2
func (w *Wattmeter) Add(other *Wattmeter) float64 { return w.Power() + other.Power() }

// Sub W1 - W2
func (w *Wattmeter) Sub(other *Wattmeter) float64 { return w.Power() - other.Power() }

// Mul W1 * W2
func (w *Wattmeter) Mul(other *Wattmeter) float64 { return w.Power() * other.Power() }

// Div W1 / W2
func (w *Wattmeter) Div(other *Wattmeter) (float64, error) {
	d := other.Power()
	if d == 0 {
		return 0, types.DivisionByZero("有功功率为零")
	}
	return w.Power() / d, nil
}

// Scale W * k，与 k * W 相同
func (w *Wattmeter) Scale(k float64) float64 { return w.Power() * k }

// DivScalar W / k
func (w *Wattmeter) DivScalar(k float64) (float64, error) {
	if k == 0 {
		return 0, types.DivisionByZero("标量为零")
	}
	return w.Power() / k, nil
}

// ScalarDiv k / W
func (w *Wattmeter) ScalarDiv(k float64) (float64, error) {
	d := w.Power()
	if d == 0 {
		return 0, types.DivisionByZero("有功功率为零")
	}
	return k / d, nil
}

// SumPower 有功功率求和，初值为 0
func SumPower(ws ...*Wattmeter) float64 {
	sum := 0.0
	for _, w := range ws {
		sum += w.Power()
	}
	return sum
}
