package debug

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Diagram 相量图，输出 png、svg、pdf 等格式
type Diagram struct {
	Record
	Width  float64 // 宽度 (cm)
	Height float64 // 高度 (cm)
	Format string  // 输出格式
}

// Plot 生成相量图
func (d *Diagram) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Phasor " + d.RunID.String()[:8]
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	p.Add(plotter.NewGrid())
	tips := plotter.XYLabels{}
	for i, e := range d.Phasors() {
		xys := plotter.XYs{{X: 0, Y: 0}, {X: e.Phasor.Re, Y: e.Phasor.Im}}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("相量 %s: %w", e.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		points.Color = plotutil.Color(i)
		points.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(e.Name, line)
		tips.XYs = append(tips.XYs, xys[1])
		tips.Labels = append(tips.Labels, e.Name)
	}
	if len(tips.XYs) > 0 {
		labels, err := plotter.NewLabels(tips)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}
	p.Legend.Top = true
	return p, nil
}

// Render 按格式输出
func (d *Diagram) Render(w io.Writer) error {
	p, err := d.Plot()
	if err != nil {
		return err
	}
	width, height := d.Width, d.Height
	if width <= 0 {
		width = 16
	}
	if height <= 0 {
		height = 16
	}
	format := d.Format
	if format == "" {
		format = "png"
	}
	wt, err := p.WriterTo(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
