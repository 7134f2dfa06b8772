package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	xdg := t.TempDir()

	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{"default under home", "", filepath.Join(home, ".cache", appName)},
		{"XDG_CACHE_HOME", xdg, filepath.Join(xdg, appName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", tt.xdg)
			dir, err := cacheDir()
			if err != nil {
				t.Fatalf("cacheDir() error: %v", err)
			}
			if dir != tt.want {
				t.Errorf("cacheDir() = %q, want %q", dir, tt.want)
			}
		})
	}
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "glyphfall.toml")

	if err := runCLI(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if err := runCLI(t, "--config", path, "config", "init"); err == nil {
		t.Error("second init without --force should fail")
	}
	if err := runCLI(t, "--config", path, "config", "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}

	// The written file renders like the defaults.
	out := filepath.Join(t.TempDir(), "a.tex")
	if err := runCLI(t, "--config", path, "render", "-o", out, "--seed", "3"); err != nil {
		t.Fatalf("render with written config: %v", err)
	}
}

func TestMissingConfigFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if err := runCLI(t, "--config", missing, "render", "-o", filepath.Join(t.TempDir(), "x.tex")); err == nil {
		t.Error("expected error for missing --config file")
	}
}

func TestCacheClearCommand(t *testing.T) {
	if err := runCLI(t, "cache", "clear"); err != nil {
		t.Errorf("clearing a missing cache: %v", err)
	}
}
