// Package config 命令行配置，保存为 YAML 文件。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"phasor/types"
	"strings"

	"gopkg.in/yaml.v3"
)

// 角度单位
const (
	AngleDeg = "deg" // 角度
	AngleRad = "rad" // 弧度
)

// Plot 相量图输出设置
type Plot struct {
	Width  float64 `yaml:"width"`  // 宽度 (cm)
	Height float64 `yaml:"height"` // 高度 (cm)
	Format string  `yaml:"format"` // png、svg、pdf、eps、jpg、tif
}

// Config 配置
type Config struct {
	Precision int    `yaml:"precision"` // 输出小数位，-1 保留完整精度
	Color     bool   `yaml:"color"`     // 彩色输出
	Angle     string `yaml:"angle"`     // 相位显示单位
	Plot      Plot   `yaml:"plot"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Precision: types.Precision,
		Color:     true,
		Angle:     AngleDeg,
		Plot: Plot{
			Width:  16,
			Height: 16,
			Format: "png",
		},
	}
}

// DefaultPath 默认配置文件路径 $XDG_CONFIG_HOME/phasor/config.yaml
func DefaultPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "phasor", "config.yaml")
}

// Load 读取配置，文件不存在时返回默认配置。
// 文件中未出现的字段保持默认值。
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("配置文件 %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置文件 %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 检查配置
func (c *Config) Validate() error {
	if c.Precision < -1 || c.Precision > 15 {
		return types.InvalidInput("precision 必须在 -1 到 15 之间, 实际为 %d", c.Precision)
	}
	c.Angle = strings.ToLower(c.Angle)
	if c.Angle != AngleDeg && c.Angle != AngleRad {
		return types.InvalidInput("angle 必须是 %s 或 %s, 实际为 '%s'", AngleDeg, AngleRad, c.Angle)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return types.InvalidInput("plot 尺寸必须为正数: %gx%g", c.Plot.Width, c.Plot.Height)
	}
	c.Plot.Format = strings.ToLower(c.Plot.Format)
	switch c.Plot.Format {
	case "png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
	default:
		return types.InvalidInput("不支持的 plot 格式 '%s'", c.Plot.Format)
	}
	return nil
}

// Save 写入配置文件
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
