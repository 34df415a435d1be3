package phasor

import (
	"fmt"
	"phasor/maths"
)

// String 极坐标（角度）形式 "5.0000 ∠ 30.0000°"
func (p Phasor) String() string {
	return fmt.Sprintf("%.4f ∠ %.4f°", p.mod, maths.Degrees(p.rad))
}

// GoString 调试形式
func (p Phasor) GoString() string {
	return fmt.Sprintf("Phasor(mod=%.4f, gr=%.4f)", p.mod, maths.Degrees(p.rad))
}

// DisplayPolarR 极坐标（弧度）形式
func (p Phasor) DisplayPolarR() string {
	return fmt.Sprintf("Módulo: %.4f ∡ Fase: %.4f rad", p.mod, p.rad)
}
