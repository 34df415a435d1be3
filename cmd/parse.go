package main

import (
	"fmt"
	"phasor/element/phasor"

	"github.com/spf13/cobra"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <rect>",
		Short: "解析直角坐标字符串",
		Long: `解析直角坐标字符串，虚数单位为 j，可写在系数前或后。

示例:
  phasor parse "5+j3"
  phasor parse "10 - 5j"
  phasor parse "-j"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := phasor.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "规范化: %s\n", phasor.Normalize(args[0]))
			a.printPhasor(out, "z", p)
			return nil
		},
	}
}
