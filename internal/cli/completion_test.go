package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/glyphfall/pkg/observability"
)

func runCLIOutput(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	var stdout bytes.Buffer
	root := New(io.Discard, log.InfoLevel).RootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestCompletionScripts(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "__start_glyphfall"},
		{"zsh", "#compdef glyphfall"},
		{"fish", "complete -c glyphfall"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			got, err := runCLIOutput(t, "completion", tt.shell)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("%s script missing %q", tt.shell, tt.want)
			}
		})
	}
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	if _, err := runCLIOutput(t, "completion", "tcsh"); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

func TestFlagValueCompletions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"render formats", []string{"__complete", "render", "--format", ""}, []string{"latex", "svg", "xlsx"}},
		{"scan modes", []string{"__complete", "show", "--scan", ""}, []string{"head", "wrap"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLIOutput(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w+"\n") {
					t.Errorf("completions %q missing %q", got, w)
				}
			}
		})
	}
}
