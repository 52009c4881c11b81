package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// LogConfig 日誌設定
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text", "json"
}

// Config 應用程式設定
type Config struct {
	Log LogConfig `yaml:"log"`
	// Script 操作腳本路徑，空字串時使用內建示範腳本
	Script string `yaml:"script"`
}

// Default 回傳預設設定
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load 讀取 YAML 設定檔，檔案不存在時回傳預設設定
//
// 參數:
//
//	path: 設定檔路徑
//
// 回傳:
//
//	Config: 補全預設值後的設定
//	error: 讀取或解析錯誤
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse 解析 YAML 設定內容
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults 補全 yaml 沒寫的欄位
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
