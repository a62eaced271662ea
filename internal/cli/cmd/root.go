// Package cmd wires the dashring CLI: an interactive demo of the animated
// download indicator, a real HTTP download fronted by it, and the usual
// doctor/completion plumbing.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dashring/internal/config"
	"dashring/internal/logging"
	"dashring/internal/model"
	"dashring/internal/ui"
)

const (
	ExitOK            = 0
	ExitCLIError      = 1
	ExitDownloadError = 2
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var logFlush = func() {}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dashring",
		Short:         "Animated circular download indicator for the terminal",
		Long:          "Dashring renders the classic circular download indicator in your terminal: an indeterminate arc that sweeps while progress comes in, then morphs through a line into a tick, cross, or exclamation mark. Run it bare for the interactive demo, or point it at a URL to watch a real download.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Bare invocation is the interactive demo.
			return ui.Run(cmd.Context(), optionsFromViper(), nil)
		},
	}

	// Persistent flags available to all subcommands
	bindStyleFlags(root.PersistentFlags())

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := config.Init(cmd.Root()); err != nil {
			return &ExitError{Code: ExitCLIError, Err: err}
		}
		flush, err := logging.Setup(viper.GetBool("debug"))
		if err != nil {
			return &ExitError{Code: ExitCLIError, Err: err}
		}
		logFlush = flush
		return nil
	}

	// Subcommands
	root.AddCommand(newDemoCmd())
	root.AddCommand(newDownloadCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

func bindStyleFlags(fs *pflag.FlagSet) {
	fs.BoolP("percent", "p", true, "Show the percentage label while downloading")
	fs.IntP("diameter", "d", 0, "Indicator height in rows (0 = default)")
	fs.String("ring-color", "", "Ring color as hex (e.g. #0099cc)")
	fs.String("arc-color", "", "Sweeping arc color as hex")
	fs.String("success-color", "", "Success tick color as hex")
	fs.String("failure-color", "", "Failure cross color as hex")
	fs.String("unknown-color", "", "Unknown-error mark color as hex")
	fs.Float64("sweep-speed", 0, "Arc speed in degrees per frame at 0% progress (0 = default)")
	fs.Float64("arc-length", 0, "Arc sweep length in degrees (0 = default)")
	fs.Bool("debug", false, "Write a debug log to the state directory")
	fs.Bool("no-ui", false, "Disable TUI; use plain textual output")
}

// optionsFromViper collects the persistent style options after config.Init
// merged flags, env, and config file.
func optionsFromViper() model.CLIOptions {
	return model.CLIOptions{
		ShowPercent:  viper.GetBool("percent"),
		Diameter:     viper.GetInt("diameter"),
		RingColor:    viper.GetString("ring_color"),
		ArcColor:     viper.GetString("arc_color"),
		SuccessColor: viper.GetString("success_color"),
		FailureColor: viper.GetString("failure_color"),
		UnknownColor: viper.GetString("unknown_color"),
		SweepSpeed:   viper.GetFloat64("sweep_speed"),
		ArcLength:    viper.GetFloat64("arc_length"),
		Debug:        viper.GetBool("debug"),
		NoUI:         viper.GetBool("no_ui"),
	}
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	defer func() { logFlush() }()
	return root.ExecuteContext(ctx)
}
