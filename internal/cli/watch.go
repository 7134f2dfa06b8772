package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphfall/pkg/observability"
	"github.com/matzehuels/glyphfall/pkg/pipeline"
	"github.com/matzehuels/glyphfall/pkg/render/sink"
)

const (
	defaultInterval = 150 * time.Millisecond
	minInterval     = 20 * time.Millisecond
	maxInterval     = 5 * time.Second
)

// watchCommand creates the watch command, a full-screen view that draws a
// freshly seeded grid on every tick.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		gen      genFlags
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Redraw a new grid on every tick until quit",
		Long: `Watch fills the terminal with a new grid on every tick.

Keys: space pause/resume, r reseed now, +/- change speed, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, &gen)
			if err != nil {
				return err
			}
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}
			return c.runWatch(cmd.Context(), opts, interval)
		},
	}

	gen.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", defaultInterval, "time between frames")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, opts pipeline.Options, interval time.Duration) error {
	// Log output would tear the alternate screen.
	observability.Reset()
	runner := pipeline.NewRunner(nil, nil, newLogger(io.Discard, c.Logger.GetLevel()))
	defer runner.Close()

	m := newWatchModel(ctx, runner, opts, interval, termenv.EnvColorProfile(), randomSeed)
	if m.err != nil {
		return m.err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if wm, ok := final.(watchModel); ok {
		loggerFromContext(ctx).Info("watch ended", "frames", wm.frames, "last_seed", wm.opts.Seed)
	}
	return nil
}

// =============================================================================
// watchModel - Bubbletea model for watch mode
// =============================================================================

type tickMsg time.Time

// watchModel regenerates the grid with a new seed on each tick.
type watchModel struct {
	ctx      context.Context
	runner   *pipeline.Runner
	opts     pipeline.Options
	profile  termenv.Profile
	nextSeed func() uint64

	interval time.Duration
	paused   bool
	frame    string
	frames   int
	err      error
}

// newWatchModel builds the model and draws its first frame with opts.Seed.
func newWatchModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, interval time.Duration, profile termenv.Profile, nextSeed func() uint64) watchModel {
	m := watchModel{
		ctx:      ctx,
		runner:   runner,
		opts:     opts,
		profile:  profile,
		nextSeed: nextSeed,
		interval: interval,
	}
	m.draw()
	return m
}

func (m watchModel) Init() tea.Cmd {
	return m.tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.reseed()
		case "+", "=":
			m.interval = max(m.interval/2, minInterval)
		case "-":
			m.interval = min(m.interval*2, maxInterval)
		}
	case tickMsg:
		if !m.paused {
			m.reseed()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder
	b.WriteString(m.frame)
	if m.err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error() + "\n")
	}

	state := "running"
	if m.paused {
		state = "paused"
	}
	status := fmt.Sprintf("seed %d · frame %d · %s · %s", m.opts.Seed, m.frames, m.interval, state)
	b.WriteString(StyleDim.Render(status))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space pause  r reseed  +/- speed  q quit"))
	return b.String()
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *watchModel) reseed() {
	m.opts.Seed = m.nextSeed()
	m.draw()
}

// draw generates the grid for the current seed. On failure the previous
// frame stays on screen and the error is shown below it.
func (m *watchModel) draw() {
	g, err := m.runner.Generate(m.ctx, m.opts)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.frame = string(sink.RenderANSI(g, sink.WithANSIText(m.opts.Text), sink.WithColorProfile(m.profile)))
	m.frames++
}
