package phasor

import (
	"errors"
	"math"
	"phasor/maths"
	"phasor/types"
	"testing"
)

// samePhasor 比较模与相位（相位按 2π 取模）
func samePhasor(a, b Phasor) bool {
	return maths.Equal(a.mod, b.mod) && maths.EqualAngle(a.rad, b.rad)
}

func TestArithmetic(t *testing.T) {
	a := FromDegrees(10, 0)
	b := FromDegrees(5, 90)

	if got := a.Add(b).String(); got != "11.1803 ∠ 26.5651°" {
		t.Errorf("加法: %s", got)
	}
	if got := a.Sub(b).String(); got != "11.1803 ∠ -26.5651°" {
		t.Errorf("减法: %s", got)
	}
	if got := a.Mul(b).String(); got != "50.0000 ∠ 90.0000°" {
		t.Errorf("乘法: %s", got)
	}
	q, err := a.Div(b)
	if err != nil {
		t.Fatal(err)
	}
	if got := q.String(); got != "2.0000 ∠ -90.0000°" {
		t.Errorf("除法: %s", got)
	}
}

func TestMultiplyPhaseUnwrapped(t *testing.T) {
	p := FromDegrees(1, 270).Mul(FromDegrees(1, 180))
	if _, deg := p.PolarDeg(); !maths.Equal(deg, 450.0) {
		t.Errorf("相位不应回绕: 期望 450, 实际 %v", deg)
	}
}

func TestDivideByZero(t *testing.T) {
	if _, err := FromRect(3, 4).Div(Zero()); !errors.Is(err, types.ErrDivisionByZero) {
		t.Errorf("除以零模相量应返回 ErrDivisionByZero, 实际 %v", err)
	}
	if _, err := FromPolar(0, 1.2).Div(FromPolar(0, 0)); !errors.Is(err, types.ErrDivisionByZero) {
		t.Errorf("除以零模相量应返回 ErrDivisionByZero, 实际 %v", err)
	}
}

func TestMultiplicativeIdentity(t *testing.T) {
	one := FromPolar(1, 0)
	for _, z := range []Phasor{FromRect(3, 4), FromDegrees(380, 30), FromPolar(2, -7), Zero()} {
		if got := z.Mul(one); !samePhasor(got, z) {
			t.Errorf("Z*1 != Z: %#v -> %#v", z, got)
		}
	}
}

func TestPow(t *testing.T) {
	z := FromDegrees(2, 30)
	cases := []struct {
		n    float64
		want string
	}{
		{2, "4.0000 ∠ 60.0000°"},
		{-1, "0.5000 ∠ -30.0000°"},
		{0.5, "1.4142 ∠ 15.0000°"},
		{0, "1.0000 ∠ 0.0000°"},
	}
	for _, c := range cases {
		p, err := z.Pow(c.n)
		if err != nil {
			t.Fatalf("Z**%v 失败: %v", c.n, err)
		}
		if got := p.String(); got != c.want {
			t.Errorf("Z**%v: 期望 %s, 实际 %s", c.n, c.want, got)
		}
	}
}

func TestPowDeMoivre(t *testing.T) {
	for _, z := range []Phasor{FromDegrees(2, 30), FromRect(-1, 1), FromRect(0.5, -3)} {
		for n := -4; n <= 6; n++ {
			want := FromPolar(1, 0)
			for i := 0; i < n; i++ {
				want = want.Mul(z)
			}
			for i := 0; i > n; i-- {
				var err error
				if want, err = want.Div(z); err != nil {
					t.Fatal(err)
				}
			}
			got, err := z.Pow(float64(n))
			if err != nil {
				t.Fatal(err)
			}
			if !maths.EqualWithin(got.Complex(), want.Complex(), 1e-9) {
				t.Errorf("%#v ** %d: 期望 %v, 实际 %v", z, n, want.Complex(), got.Complex())
			}
		}
	}
}

func TestPowError(t *testing.T) {
	if _, err := Zero().Pow(-1); !errors.Is(err, types.ErrDivisionByZero) {
		t.Errorf("0**-1 应返回 ErrDivisionByZero, 实际 %v", err)
	}
	if _, err := FromPolar(-4, 0).Pow(0.5); !errors.Is(err, types.ErrType) {
		t.Errorf("负模的分数次幂应返回 ErrType, 实际 %v", err)
	}
	if _, err := FromPolar(2, 0).Pow(math.NaN()); !errors.Is(err, types.ErrType) {
		t.Errorf("NaN 指数应返回 ErrType, 实际 %v", err)
	}
	if p, err := FromPolar(-2, 0).Pow(2); err != nil || !maths.Equal(p.mod, 4.0) {
		t.Errorf("负模整数次幂: %v %v", p, err)
	}
}

func TestConjugate(t *testing.T) {
	z := FromDegrees(10, 45)
	if got := z.Conjugate().String(); got != "10.0000 ∠ -45.0000°" {
		t.Errorf("共轭: %s", got)
	}
	re, im := z.Conjugate().Rect()
	zr, zi := z.Rect()
	if !maths.Equal(re, zr) || !maths.Equal(im, -zi) {
		t.Errorf("共轭应翻转虚部: (%v, %v)", re, im)
	}
	for _, z := range []Phasor{FromRect(3, 4), FromDegrees(2, 300), FromPolar(1, 9)} {
		if got := z.Conjugate().Conjugate(); !samePhasor(got, z) {
			t.Errorf("共轭两次应还原: %#v -> %#v", z, got)
		}
	}
}

func TestNeg(t *testing.T) {
	z := FromDegrees(10, 45)
	if got := z.Neg().String(); got != "10.0000 ∠ 225.0000°" {
		t.Errorf("取负: %s", got)
	}
	// 相位持续增长
	if _, deg := z.Neg().Neg().PolarDeg(); !maths.Equal(deg, 405.0) {
		t.Errorf("两次取负: 期望 405, 实际 %v", deg)
	}
	if !maths.EqualWithin(z.Neg().Complex(), -z.Complex(), 1e-9) {
		t.Errorf("取负后复数应为 -Z")
	}
}

func TestSum(t *testing.T) {
	if got := Sum(); got != Zero() {
		t.Errorf("空求和应为 Zero: %#v", got)
	}
	z := FromDegrees(10, 225)
	if got := Sum(z); got != z {
		t.Errorf("单个相量求和应保持不变: %#v", got)
	}
	got := Sum(FromRect(1, 2), FromRect(3, 4), FromRect(-1, 0))
	if !maths.EqualWithin(got.Complex(), complex(3, 6), 1e-12) {
		t.Errorf("求和: 期望 3+6i, 实际 %v", got.Complex())
	}
	if !samePhasor(Zero().Add(z), z) {
		t.Errorf("Zero 应为加法单位元")
	}
}
