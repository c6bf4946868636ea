package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "READ_TIMEOUT", "WRITE_TIMEOUT", "OUTPUT_DIR", "HISTORY_DB_PATH", "KEY_ORDER", "LABEL_LANG"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "3001" {
		t.Errorf("Port = %q, want 3001", cfg.Port)
	}
	if cfg.ReadTimeout != 10 || cfg.WriteTimeout != 10 {
		t.Errorf("timeouts = %d/%d, want 10/10", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.OutputDir != "" {
		t.Errorf("OutputDir = %q, want empty (Downloads)", cfg.OutputDir)
	}
	if cfg.KeyOrder != "numeric" || cfg.LabelLang != "en" {
		t.Errorf("KeyOrder/LabelLang = %q/%q", cfg.KeyOrder, cfg.LabelLang)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("READ_TIMEOUT", "30")
	t.Setenv("WRITE_TIMEOUT", "not-a-number")
	t.Setenv("KEY_ORDER", "lexical")

	cfg := Load()
	if cfg.Port != "8080" || cfg.ReadTimeout != 30 || cfg.KeyOrder != "lexical" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.WriteTimeout != 10 {
		t.Errorf("WriteTimeout = %d, want default 10 for invalid value", cfg.WriteTimeout)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LABEL_LANG", "")

	path := filepath.Join(t.TempDir(), "blk2json.yaml")
	content := "output_dir: /srv/out\nlabel_lang: ru\nread_timeout: 5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.OutputDir != "/srv/out" || cfg.LabelLang != "ru" || cfg.ReadTimeout != 5 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, env value should survive an empty file field", cfg.Port)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want ErrConfigNotFound", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("port: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("LoadFile(bad) succeeded, want error")
	}
}
