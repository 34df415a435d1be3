package main

import (
	"phasor/element/phasor"

	"github.com/spf13/cobra"
)

func (a *app) newCmd() *cobra.Command {
	var mod, rad, gr, re, im float64
	var rect string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "通过关键字参数创建相量",
		Long: `通过关键字参数创建相量，优先级为 --rect、(--mod 与 --rad/--gr)、(--a 与 --b)。

示例:
  phasor new --mod 10 --gr 30
  phasor new --mod 2 --rad 1.5708
  phasor new --a 3 --b -4
  phasor new --rect "5+j3"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in phasor.Args
			flags := cmd.Flags()
			if flags.Changed("mod") {
				in.Mod = &mod
			}
			if flags.Changed("rad") {
				in.Rad = &rad
			}
			if flags.Changed("gr") {
				in.Gr = &gr
			}
			if flags.Changed("a") {
				in.A = &re
			}
			if flags.Changed("b") {
				in.B = &im
			}
			if flags.Changed("rect") {
				in.Rect = &rect
			}
			p, err := in.New()
			if err != nil {
				return err
			}
			a.printPhasor(cmd.OutOrStdout(), "z", p)
			return nil
		},
	}
	cmd.Flags().Float64Var(&mod, "mod", 0, "模")
	cmd.Flags().Float64Var(&rad, "rad", 0, "相位 (弧度)")
	cmd.Flags().Float64Var(&gr, "gr", 0, "相位 (角度)")
	cmd.Flags().Float64Var(&re, "a", 0, "实部")
	cmd.Flags().Float64Var(&im, "b", 0, "虚部")
	cmd.Flags().StringVar(&rect, "rect", "", "直角坐标字符串，如 5+j3")
	return cmd
}
