//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/llehouerou/portrait/internal/header"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/logs",
			expected: filepath.Join(home, "logs"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/portrait.log",
			expected: "/var/log/portrait.log",
		},
		{
			name:     "relative path unchanged",
			input:    "cache/photos",
			expected: "cache/photos",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	if last := paths[len(paths)-1]; last != "config.toml" {
		t.Errorf("last config path = %q, want %q", last, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "portrait", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

// isolate points HOME and the working directory at empty temp dirs so the
// developer's own config files do not leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
}

func TestLoad_EmptyConfig(t *testing.T) {
	isolate(t)
	writeConfig(t, "config.toml", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HeaderTunables() != header.DefaultTunables() {
		t.Error("empty config should keep default tunables")
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	isolate(t)
	writeConfig(t, "config.toml", `
default_subject = "@ada"
icons = "nerd"

[header]
pull_threshold = 6
expand_ms = 800

[log]
file = "~/portrait.log"
level = "DEBUG"
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultSubject != "ada" {
		t.Errorf("DefaultSubject = %q, want %q", cfg.DefaultSubject, "ada")
	}

	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "nerd")
	}

	tun := cfg.HeaderTunables()
	if tun.PullThreshold != 6 {
		t.Errorf("PullThreshold = %v, want 6", tun.PullThreshold)
	}
	if tun.ExpandDuration != 800*time.Millisecond {
		t.Errorf("ExpandDuration = %v, want 800ms", tun.ExpandDuration)
	}

	home, _ := os.UserHomeDir()
	if cfg.Log.File != filepath.Join(home, "portrait.log") {
		t.Errorf("Log.File = %q, want expanded path", cfg.Log.File)
	}
	if lc := cfg.GetLogConfig(); lc.Level != "debug" {
		t.Errorf("GetLogConfig().Level = %q, want %q", lc.Level, "debug")
	}
}

func TestLoad_ExtraPathWins(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, "config.toml", `default_subject = "local"`)
	extra := filepath.Join(dir, "extra.toml")
	writeConfig(t, extra, `default_subject = "extra"`)

	cfg, err := Load(extra)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultSubject != "extra" {
		t.Errorf("DefaultSubject = %q, want %q", cfg.DefaultSubject, "extra")
	}
}

func TestLoad_MissingExtraPath(t *testing.T) {
	isolate(t)
	if _, err := Load("does-not-exist.toml"); err == nil {
		t.Error("Load() expected error for missing explicit config")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	isolate(t)
	writeConfig(t, "config.toml", "invalid = [[[")

	if _, err := Load(""); err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}

func TestHeaderTunables_IgnoresInvalidValues(t *testing.T) {
	cfg := Config{Header: HeaderConfig{
		PullThreshold:        -1,
		ExpandCommitProgress: 1.5,
		CollapseMS:           0,
		MinimizeDistance:     9,
	}}

	got := cfg.HeaderTunables()
	want := header.DefaultTunables()
	want.MinimizeDistance = 9

	if got != want {
		t.Errorf("HeaderTunables() = %+v, want %+v", got, want)
	}
}

func TestGetLogConfig_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		input LogConfig
		want  LogConfig
	}{
		{
			name:  "all defaults",
			input: LogConfig{},
			want:  LogConfig{Level: "info", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28},
		},
		{
			name:  "unknown level falls back",
			input: LogConfig{Level: "verbose", MaxSizeMB: 5},
			want:  LogConfig{Level: "info", MaxSizeMB: 5, MaxBackups: 3, MaxAgeDays: 28},
		},
		{
			name:  "custom values kept",
			input: LogConfig{File: "/tmp/p.log", Level: "warn", MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
			want:  LogConfig{File: "/tmp/p.log", Level: "warn", MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Log: tt.input}
			if got := cfg.GetLogConfig(); got != tt.want {
				t.Errorf("GetLogConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
