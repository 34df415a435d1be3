package main

import (
	"fmt"
	"io"
	"phasor/config"
	"phasor/element/phasor"
	"phasor/maths"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	nameColor  = color.New(color.FgCyan, color.Bold)
	faintColor = color.New(color.Faint)
	okColor    = color.New(color.FgGreen)
)

// app 命令行共享状态
type app struct {
	cfgPath string
	noColor bool
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "phasor",
		Short: "交流电路相量与功率表计算",
		Long: `交流电路相量与功率表计算

示例:
  phasor new --mod 380 --gr 30
  phasor new --rect "5+j3"
  phasor parse "10 - 5j"
  phasor watt --modV 10 --modI 2 --gr 60
  phasor sheet load.net --html load.html --plot load.png`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.noColor || !cfg.Color {
				color.NoColor = true
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", config.DefaultPath(), "配置文件路径")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "禁用彩色输出")
	root.AddCommand(
		a.newCmd(),
		a.parseCmd(),
		a.wattCmd(),
		a.sheetCmd(),
	)
	return root
}

// polar 按配置的角度单位显示相量
func (a *app) polar(p phasor.Phasor) string {
	if a.cfg.Angle == config.AngleRad {
		return p.DisplayPolarR()
	}
	return p.String()
}

// rect 直角坐标形式 "a+bj"
func (a *app) rect(p phasor.Phasor) string {
	re, im := p.Rect()
	sign := "+"
	if im < 0 {
		sign = "-"
	}
	return maths.Format(re, a.cfg.Precision) + sign + maths.Format(maths.Abs(im), a.cfg.Precision) + "j"
}

func (a *app) printPhasor(w io.Writer, name string, p phasor.Phasor) {
	pf, character := p.PowerFactor()
	nameColor.Fprint(w, name)
	fmt.Fprintf(w, " = %s\n", a.polar(p))
	faintColor.Fprintf(w, "  %#v\n", p)
	fmt.Fprintf(w, "  %s\n", p.DisplayPolarR())
	fmt.Fprintf(w, "  直角坐标: %s\n", a.rect(p))
	fmt.Fprintf(w, "  功率因数: %s (%s)\n", maths.Format(pf, a.cfg.Precision), character)
}
