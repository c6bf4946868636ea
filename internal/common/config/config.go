package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound возвращается, если YAML-файл конфигурации отсутствует.
var ErrConfigNotFound = errors.New("configuration file not found")

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port          string `yaml:"port"`
	Environment   string `yaml:"env"`
	ReadTimeout   int    `yaml:"read_timeout"`
	WriteTimeout  int    `yaml:"write_timeout"`
	OutputDir     string `yaml:"output_dir"`
	HistoryDBPath string `yaml:"history_db_path"`
	KeyOrder      string `yaml:"key_order"`
	LabelLang     string `yaml:"label_lang"`
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3001"),
		Environment:   getEnv("ENV", "development"),
		ReadTimeout:   getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout:  getEnvAsInt("WRITE_TIMEOUT", 10),
		OutputDir:     getEnv("OUTPUT_DIR", ""),
		HistoryDBPath: getEnv("HISTORY_DB_PATH", "data/db/history.db"),
		KeyOrder:      getEnv("KEY_ORDER", "numeric"),
		LabelLang:     getEnv("LABEL_LANG", "en"),
	}
}

// LoadFile накладывает значения из YAML-файла поверх env-конфигурации.
// Пустые поля файла не перетирают текущие значения.
func LoadFile(path string) (*Config, error) {
	cfg := Load()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.merge(&fileCfg)
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Port != "" {
		c.Port = o.Port
	}
	if o.Environment != "" {
		c.Environment = o.Environment
	}
	if o.ReadTimeout > 0 {
		c.ReadTimeout = o.ReadTimeout
	}
	if o.WriteTimeout > 0 {
		c.WriteTimeout = o.WriteTimeout
	}
	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}
	if o.HistoryDBPath != "" {
		c.HistoryDBPath = o.HistoryDBPath
	}
	if o.KeyOrder != "" {
		c.KeyOrder = o.KeyOrder
	}
	if o.LabelLang != "" {
		c.LabelLang = o.LabelLang
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
