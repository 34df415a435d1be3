package maths

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{1, 1 + 1e-12, true},
		{1e12, 1e12 + 1, true},
		{0, 1e-10, true},
		{1, 1.001, false},
		{-1, 1, false},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%g, %g): 期望 %v, 实际 %v", tt.a, tt.b, tt.want, got)
		}
	}
	if !Equal(complex(3, 4), complex(3, 4+1e-12)) {
		t.Errorf("复数比较失败")
	}
	if Equal(complex(3, 4), complex(3, -4)) {
		t.Errorf("共轭复数不应相等")
	}
	if !EqualWithin(float32(1), float32(1.0001), 1e-3) {
		t.Errorf("float32 容差比较失败")
	}
}

func TestAngle(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > Epsilon {
		t.Errorf("Radians(180): 期望 %v, 实际 %v", math.Pi, got)
	}
	if got := Degrees(math.Pi / 2); math.Abs(got-90) > Epsilon {
		t.Errorf("Degrees(π/2): 期望 90, 实际 %v", got)
	}
	if !EqualAngle(-math.Pi/2, 3*math.Pi/2) {
		t.Errorf("-π/2 与 3π/2 应为同一角度")
	}
	if EqualAngle(0, math.Pi) {
		t.Errorf("0 与 π 不应为同一角度")
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(complex(3, -4)); got != 5 {
		t.Errorf("Abs(3-4i): 期望 5, 实际 %v", got)
	}
	if got := Abs(float32(-2)); got != 2 {
		t.Errorf("Abs(-2): 期望 2, 实际 %v", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		x    float64
		prec int
		want string
	}{
		{8.660254037844387, 4, "8.6603"},
		{2.5, 0, "2"},
		{2.5, -1, "2.5"},
		{-0.1, 2, "-0.10"},
	}
	for _, tt := range tests {
		if got := Format(tt.x, tt.prec); got != tt.want {
			t.Errorf("Format(%v, %d): 期望 %s, 实际 %s", tt.x, tt.prec, tt.want, got)
		}
	}
	if got := Round(53.13010235, 4); got != 53.1301 {
		t.Errorf("Round: 期望 53.1301, 实际 %v", got)
	}
}
