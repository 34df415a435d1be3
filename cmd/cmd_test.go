package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phasor/debug"
	"phasor/element/wattmeter"
	"phasor/load"
	"phasor/types"

	"github.com/stretchr/testify/require"
)

// execute 使用临时配置运行命令
func execute(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	if cfg == "" {
		cfg = filepath.Join(t.TempDir(), "none.yaml")
	}
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfg, "--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestNewCmd(t *testing.T) {
	out, err := execute(t, "", "new", "--mod", "10", "--gr", "30")
	require.NoError(t, err)
	require.Contains(t, out, "z = 10.0000 ∠ 30.0000°")
	require.Contains(t, out, "Phasor(mod=10.0000, gr=30.0000)")
	require.Contains(t, out, "Módulo: 10.0000 ∡ Fase: 0.5236 rad")
	require.Contains(t, out, "直角坐标: 8.6603+5.0000j")
	require.Contains(t, out, "功率因数: 0.8660 (inductive)")

	out, err = execute(t, "", "new", "--a", "3", "--b", "-4")
	require.NoError(t, err)
	require.Contains(t, out, "直角坐标: 3.0000-4.0000j")
	require.Contains(t, out, "(capacitive)")

	out, err = execute(t, "", "new", "--rect", "5+j3", "--mod", "1", "--gr", "0")
	require.NoError(t, err)
	require.Contains(t, out, "直角坐标: 5.0000+3.0000j")
}

func TestNewCmdInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"new"},
		{"new", "--mod", "10"},
		{"new", "--a", "1"},
	} {
		_, err := execute(t, "", args...)
		require.ErrorIs(t, err, types.ErrInvalidInput, "%v", args)
	}
	_, err := execute(t, "", "new", "--rect", "5+i3")
	require.ErrorIs(t, err, types.ErrParse)
}

func TestParseCmd(t *testing.T) {
	out, err := execute(t, "", "parse", "10 - 5j")
	require.NoError(t, err)
	require.Contains(t, out, "规范化: 10-5j")
	require.Contains(t, out, "z = 11.1803 ∠ -26.5651°")

	_, err = execute(t, "", "parse", "abc")
	require.ErrorIs(t, err, types.ErrParse)

	_, err = execute(t, "", "parse")
	require.Error(t, err)
}

func TestWattCmd(t *testing.T) {
	out, err := execute(t, "", "watt", "--modV", "10", "--modI", "2", "--gr", "60")
	require.NoError(t, err)
	require.Contains(t, out, "w = 10.0000 W")
	require.Contains(t, out, "Wattmeter(modV=10.0000, modI=2.0000, gr=60.0000)")

	out, err = execute(t, "", "watt", "--modV", "5", "--modI", "3", "--rad", "0", "--json")
	require.NoError(t, err)
	var r wattmeter.Reading
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Equal(t, wattmeter.Reading{V: 5, I: 3, Alpha: 0, W: 15}, r)

	_, err = execute(t, "", "watt", "--modV", "5", "--gr", "0")
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

const sheet = `# 测试
phasor z [Rect=3+j4]
phasor v [mod=10, gr=90]
s = z + v
watt w [modV=10, modI=2, gr=60]
p = 2 * w
`

func writeSheet(t *testing.T) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "load.net")
	require.NoError(t, os.WriteFile(filename, []byte(sheet), 0o644))
	return filename
}

func TestSheetCmd(t *testing.T) {
	filename := writeSheet(t)
	dir := t.TempDir()
	htmlOut := filepath.Join(dir, "load.html")
	plotOut := filepath.Join(dir, "load.svg")
	exportOut := filepath.Join(dir, "out.net")

	out, err := execute(t, "", "sheet", filename,
		"--html", htmlOut, "--plot", plotOut, "--export", exportOut)
	require.NoError(t, err)
	require.Contains(t, out, "z = 5.0000 ∠ 53.1301°  (3.0000+4.0000j)")
	require.Contains(t, out, "w = V = 10.0000, I = 2.0000, α = 60.0000° | w = 10.0000 W")
	require.Contains(t, out, "p = 20.0000")
	require.Contains(t, out, "✓ 已写入 "+htmlOut)

	html, err := os.ReadFile(htmlOut)
	require.NoError(t, err)
	require.Contains(t, string(html), "相量图")

	svg, err := os.ReadFile(plotOut)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(svg), "<?xml"))

	con, err := load.LoadFile(exportOut)
	require.NoError(t, err)
	require.Equal(t, []string{"z", "v", "s", "w", "p"}, con.Names)
}

func TestSheetCmdJSON(t *testing.T) {
	out, err := execute(t, "", "sheet", writeSheet(t), "--json")
	require.NoError(t, err)
	var rec debug.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	require.Len(t, rec.Entries, 5)
	require.Equal(t, debug.KindWattmeter, rec.Entries[3].Kind)
}

func TestSheetCmdErrors(t *testing.T) {
	_, err := execute(t, "", "sheet", filepath.Join(t.TempDir(), "missing.net"))
	require.ErrorIs(t, err, os.ErrNotExist)

	filename := filepath.Join(t.TempDir(), "bad.net")
	require.NoError(t, os.WriteFile(filename, []byte("phasor z [a=1, b=1]\nr = z / 0\n"), 0o644))
	_, err = execute(t, "", "sheet", filename)
	require.ErrorIs(t, err, types.ErrType)
	require.Contains(t, err.Error(), "第 2 行")
}

func TestConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("precision: 2\nangle: rad\n"), 0o644))

	out, err := execute(t, cfg, "new", "--a", "1", "--b", "1")
	require.NoError(t, err)
	require.Contains(t, out, "z = Módulo: 1.4142 ∡ Fase: 0.7854 rad")
	require.Contains(t, out, "直角坐标: 1.00+1.00j")

	require.NoError(t, os.WriteFile(cfg, []byte("angle: grad\n"), 0o644))
	_, err = execute(t, cfg, "new", "--a", "1", "--b", "1")
	require.ErrorIs(t, err, types.ErrInvalidInput)
}
