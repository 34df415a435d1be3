package main

import (
	"encoding/json"
	"fmt"
	"phasor/element/wattmeter"
	"phasor/maths"

	"github.com/spf13/cobra"
)

func (a *app) wattCmd() *cobra.Command {
	var modV, modI, rad, gr float64
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "watt",
		Short: "计算功率表读数",
		Long: `计算功率表读数 W = V·I·cos(α)，同时给出 --gr 与 --rad 时使用 --gr。

示例:
  phasor watt --modV 10 --modI 2 --gr 60
  phasor watt --modV 5 --modI 3 --rad 0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in wattmeter.Args
			flags := cmd.Flags()
			if flags.Changed("modV") {
				in.ModV = &modV
			}
			if flags.Changed("modI") {
				in.ModI = &modI
			}
			if flags.Changed("rad") {
				in.Rad = &rad
			}
			if flags.Changed("gr") {
				in.Gr = &gr
			}
			w, err := in.New()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(w.Value())
			}
			nameColor.Fprint(out, "w")
			fmt.Fprintf(out, " = %s W\n", maths.Format(w.Power(), a.cfg.Precision))
			faintColor.Fprintf(out, "  %#v\n", w)
			fmt.Fprintf(out, "  %s\n", w)
			return nil
		},
	}
	cmd.Flags().Float64Var(&modV, "modV", 0, "电压有效值")
	cmd.Flags().Float64Var(&modI, "modI", 0, "电流有效值")
	cmd.Flags().Float64Var(&rad, "rad", 0, "电压与电流夹角 (弧度)")
	cmd.Flags().Float64Var(&gr, "gr", 0, "电压与电流夹角 (角度)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "以 JSON 输出读数")
	return cmd
}
