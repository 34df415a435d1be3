package load

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"phasor/types"
	"phasor/utils"
)

// ExportFile 导出网表文件
func (con *Context) ExportFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return con.Export(file)
}

// Export 将所有命名值导出为网表定义，重新加载后得到相同的值
func (con *Context) Export(w io.Writer) error {
	writer := bufio.NewWriter(w)
	for _, name := range con.Names {
		switch v := con.Values[name].(type) {
		case float64:
			fmt.Fprintf(writer, ".value %s %s\n", name, utils.FormatFloat(v))
		case PowerFactor:
			fmt.Fprintf(writer, "# %s = %s\n", name, v)
		default:
			et, value := types.GetValueType(v)
			if et == types.TypeUnknown {
				return fmt.Errorf("无法导出 '%s': %T", name, v)
			}
			writer.WriteString(et.String())
			writer.WriteRune(' ')
			writer.WriteString(name)
			writer.WriteString(" [")
			for i, key := range value.Keys() {
				if i > 0 {
					writer.WriteString(", ")
				}
				writer.WriteString(key)
				writer.WriteRune('=')
				writer.WriteString(value[key])
			}
			writer.WriteString("]\n")
		}
	}
	return writer.Flush()
}
