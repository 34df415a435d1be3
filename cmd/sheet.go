package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"phasor/debug"
	"phasor/element/phasor"
	"phasor/element/wattmeter"
	"phasor/load"
	"phasor/maths"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) sheetCmd() *cobra.Command {
	var asJSON bool
	var htmlOut, plotOut, exportOut, serve string
	cmd := &cobra.Command{
		Use:   "sheet <file>",
		Short: "计算网表文件",
		Long: `按顺序计算网表文件中的元件定义与表达式。

网表格式:
  .value k 2.5                  标量
  phasor z1 [Rect=5+j3]         相量
  phasor z2 [mod=380, gr=30]
  watt   w1 [modV=10, modI=2, gr=60]
  r1 = z1 * z2                  二元运算: + - * / ^
  r2 = conj z1                  一元运算: neg conj pf power
  s  = sum z1 z2 r1             求和

示例:
  phasor sheet load.net
  phasor sheet load.net --json
  phasor sheet load.net --html load.html --plot load.svg --export out.net`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := load.LoadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			record := debug.NewRecord(a.cfg.Precision)
			record.Init(con)
			if asJSON {
				if err := record.Render(out); err != nil {
					return err
				}
			} else {
				a.printContext(out, con)
			}
			if htmlOut != "" {
				if err := writeFile(htmlOut, &debug.Charts{Record: *record}); err != nil {
					return err
				}
				okColor.Fprintf(cmd.ErrOrStderr(), "✓ 已写入 %s\n", htmlOut)
			}
			if plotOut != "" {
				format := strings.TrimPrefix(filepath.Ext(plotOut), ".")
				if format == "" {
					format = a.cfg.Plot.Format
				}
				diagram := &debug.Diagram{
					Record: *record,
					Width:  a.cfg.Plot.Width,
					Height: a.cfg.Plot.Height,
					Format: format,
				}
				if err := writeFile(plotOut, diagram); err != nil {
					return err
				}
				okColor.Fprintf(cmd.ErrOrStderr(), "✓ 已写入 %s\n", plotOut)
			}
			if exportOut != "" {
				if err := con.ExportFile(exportOut); err != nil {
					return err
				}
				okColor.Fprintf(cmd.ErrOrStderr(), "✓ 已写入 %s\n", exportOut)
			}
			if serve != "" {
				charts := &debug.Charts{Record: *record}
				mux := http.NewServeMux()
				mux.HandleFunc("/", charts.Handler)
				log.Printf("相量图页面: http://%s/", serve)
				return http.ListenAndServe(serve, mux)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "以 JSON 输出计算记录")
	cmd.Flags().StringVar(&htmlOut, "html", "", "输出相量图与功率图 HTML 页面")
	cmd.Flags().StringVar(&plotOut, "plot", "", "输出相量图 (png、svg、pdf ...)")
	cmd.Flags().StringVar(&exportOut, "export", "", "将计算结果导出为网表")
	cmd.Flags().StringVar(&serve, "serve", "", "在指定地址发布 HTML 页面，如 localhost:8080")
	return cmd
}

func (a *app) printContext(w io.Writer, con *load.Context) {
	for _, name := range con.Names {
		nameColor.Fprint(w, name)
		switch v := con.Values[name].(type) {
		case phasor.Phasor:
			fmt.Fprintf(w, " = %s", a.polar(v))
			faintColor.Fprintf(w, "  (%s)\n", a.rect(v))
		case *wattmeter.Wattmeter:
			fmt.Fprintf(w, " = %s\n", v)
		case float64:
			fmt.Fprintf(w, " = %s\n", maths.Format(v, a.cfg.Precision))
		default:
			fmt.Fprintf(w, " = %v\n", v)
		}
	}
}

// writeFile 渲染到文件
func writeFile(filename string, r interface{ Render(io.Writer) error }) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return r.Render(file)
}
