package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphfall/pkg/observability"
	"github.com/matzehuels/glyphfall/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to latex", "", []string{"latex"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,json,xlsx", []string{"svg", "json", "xlsx"}},
		{"spaces and empties dropped", " svg, ,json ", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	artifacts := map[string][]byte{
		"latex": []byte("tex"),
		"json":  []byte("{}"),
	}

	t.Run("single format uses output verbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "frame.txt")
		paths, err := writeArtifacts(artifacts, []string{"latex"}, path)
		if err != nil {
			t.Fatalf("writeArtifacts: %v", err)
		}
		if !slices.Equal(paths, []string{path}) {
			t.Errorf("paths = %v, want %v", paths, []string{path})
		}
		if data, _ := os.ReadFile(path); string(data) != "tex" {
			t.Errorf("content = %q, want %q", data, "tex")
		}
	})

	t.Run("multiple formats use base path", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "rain.svg")
		paths, err := writeArtifacts(artifacts, []string{"latex", "json"}, base)
		if err != nil {
			t.Fatalf("writeArtifacts: %v", err)
		}
		stem := strings.TrimSuffix(base, ".svg")
		want := []string{stem + ".tex", stem + ".json"}
		if !slices.Equal(paths, want) {
			t.Errorf("paths = %v, want %v", paths, want)
		}
	})
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

// runCLI executes the root command with args in an isolated environment.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	captureOutput(t)
	t.Cleanup(observability.Reset)

	var logs bytes.Buffer
	root := New(&logs, log.InfoLevel).RootCommand()
	root.SetArgs(args)
	root.SetOut(&logs)
	root.SetErr(&logs)
	return root.ExecuteContext(context.Background())
}

func TestRenderCommandWritesFiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "rain")
	err := runCLI(t, "render", "-f", "latex,json", "-o", base,
		"--rows", "6", "--cols", "4", "--seed", "7", "--no-cache")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	tex, err := os.ReadFile(base + ".tex")
	if err != nil {
		t.Fatalf("read tex: %v", err)
	}
	if !strings.HasPrefix(string(tex), `\(\arraycolsep=0em\def\arraystretch{1}`) {
		t.Errorf("tex output starts with %q", string(tex)[:min(40, len(tex))])
	}
	if !strings.Contains(string(tex), `\begin{array}{cccc}`) {
		t.Error("tex output should declare 4 columns")
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var doc struct {
		Rows int    `json:"rows"`
		Cols int    `json:"cols"`
		Seed uint64 `json:"seed"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if doc.Rows != 6 || doc.Cols != 4 || doc.Seed != 7 {
		t.Errorf("json header = %+v, want 6x4 seed 7", doc)
	}
}

func TestRenderCommandDeterministic(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.tex", "b.tex"} {
		err := runCLI(t, "render", "-o", filepath.Join(dir, name), "--rows", "8", "--cols", "5", "--seed", "99")
		if err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
	}
	a, _ := os.ReadFile(filepath.Join(dir, "a.tex"))
	b, _ := os.ReadFile(filepath.Join(dir, "b.tex"))
	if len(a) == 0 || !bytes.Equal(a, b) {
		t.Error("same seed should render identical output")
	}
}

func TestRenderCommandRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"render", "-f", "gif", "-o", "x"}},
		{"negative rows", []string{"render", "--rows=-1", "-o", "x"}},
		{"bad scan", []string{"render", "--scan", "sideways", "-o", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runCLI(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGenFlagsApplyOnlyChanged(t *testing.T) {
	var f genFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags([]string{"--hue", "120", "--symbols", "a,b"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	opts := pipeline.DefaultOptions()
	opts.Rows = 3
	f.apply(cmd, &opts)

	if opts.Hue != 120 {
		t.Errorf("Hue = %d, want 120", opts.Hue)
	}
	if !slices.Equal(opts.Symbols, []string{"a", "b"}) {
		t.Errorf("Symbols = %v, want [a b]", opts.Symbols)
	}
	if opts.Rows != 3 {
		t.Errorf("Rows = %d, unset flag should keep 3", opts.Rows)
	}
}
