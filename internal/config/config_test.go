package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/gridmem/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.TableSize != nil || cfg.Game.Mode != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[game]
table-size = 7
mode = "mixed"
mixed-alphabets = ["Thai", "Lao"]
no-timer = true
dark-theme = true
feedback = "tone"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Feedback == nil || *cfg.Game.Feedback != "tone" {
		t.Fatalf("unexpected feedback: %v", cfg.Game.Feedback)
	}

	base := model.Settings{TableSize: 5, Mode: model.ModeDigits, Language: "Russian", MemorizeSeconds: 5, Vibration: true}
	got, err := cfg.Game.Apply(base)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.TableSize != 7 || got.Mode != model.ModeMixed || !got.NoTimer || !got.DarkTheme {
		t.Fatalf("unexpected settings: %+v", got)
	}
	if got.Language != "Russian" || got.MemorizeSeconds != 5 || !got.Vibration {
		t.Fatalf("unset keys should keep base values: %+v", got)
	}
	if len(got.MixedAlphabets) != 2 || got.MixedAlphabets[1] != "Lao" {
		t.Fatalf("unexpected mixed alphabets: %v", got.MixedAlphabets)
	}
}

func TestApplyRejectsBadValues(t *testing.T) {
	size := 20
	if _, err := (GameConfig{TableSize: &size}).Apply(model.Settings{}); err == nil {
		t.Fatalf("expected error for table-size 20")
	}
	mode := "emoji"
	if _, err := (GameConfig{Mode: &mode}).Apply(model.Settings{}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	secs := 0
	if _, err := (GameConfig{MemorizeSeconds: &secs}).Apply(model.Settings{}); err == nil {
		t.Fatalf("expected error for zero memorize-seconds")
	}
}

func TestLoadConfigRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "gridmem", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "gridmem", "gridmem.db") {
		t.Fatalf("unexpected db path %q", got)
	}
	if got := DefaultAlphabetsPath(); got != filepath.Join("/cfg", "gridmem", "alphabets.yaml") {
		t.Fatalf("unexpected alphabets path %q", got)
	}
}
