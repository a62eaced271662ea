package ui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"dashring/internal/logging"
	"dashring/internal/model"
)

// Run launches the interactive program, falling back to plain line output
// when stdout is not a terminal or --no-ui was requested. src may be nil;
// keys can still trigger the simulated scenarios.
func Run(ctx context.Context, opts model.CLIOptions, src Source) error {
	if opts.NoUI || !stdoutIsTTY() {
		return RunPlain(ctx, os.Stdout, opts, src)
	}

	logging.L().Debug("starting TUI",
		zap.Bool("percent", opts.ShowPercent),
		zap.Int("diameter", opts.Diameter),
		zap.String("url", opts.URL))

	m := NewModel(ctx, opts, src)
	prog := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := prog.Run()
	if err != nil {
		logging.L().Error("TUI exited", zap.Error(err))
	}
	return err
}

func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
