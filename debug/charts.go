package debug

import (
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 相量图与功率图绘制
type Charts struct {
	Record
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	legend := opts.Legend{
		Type:   "scroll",
		Orient: "vertical",
		Right:  "10",
		Top:    "20",
		Bottom: "20",
	}
	// 相量图：每个相量是从原点到端点的线段
	lineP := charts.NewLine()
	lineP.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "相量图",
			Subtitle: "复平面上的相量 (实部, 虚部)",
		}),
		charts.WithLegendOpts(legend),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:  "Re",
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Im",
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	// 功率图
	barW := charts.NewBar()
	barW.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "有功功率",
			Subtitle: "功率表读数 W = V·I·cos(α)",
		}),
		charts.WithLegendOpts(legend),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "W",
			Scale: opts.Bool(true),
		}),
		charts.WithAnimation(true),
	)
	// 处理数据
	{
		for _, e := range c.Phasors() {
			lineP.AddSeries(e.Name, []opts.LineData{
				{Name: "0", Value: []float64{0, 0}},
				{Name: e.Text, Value: []float64{e.Phasor.Re, e.Phasor.Im}},
			}, charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(true),
			}))
		}
		names := make([]string, 0)
		items := make([]opts.BarData, 0)
		for _, e := range c.Entries {
			if e.Reading == nil {
				continue
			}
			names = append(names, e.Name)
			items = append(items, opts.BarData{Name: e.Text, Value: e.Reading.W})
		}
		barW.SetXAxis(names).AddSeries("W", items,
			charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}))
	}
	// 构建界面
	page := components.NewPage()
	page.SetPageTitle("phasor " + c.RunID.String())
	page.AddCharts(
		lineP,
		barW,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}
