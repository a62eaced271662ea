package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dashring/internal/dash"
	"dashring/internal/dirs"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose the terminal environment",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fd := os.Stdout.Fd()

			tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
			fmt.Fprintf(out, "TTY:        %v\n", tty)

			if w, h, err := term.GetSize(int(fd)); err == nil {
				fmt.Fprintf(out, "Size:       %dx%d cells\n", w, h)
				need := dash.DefaultDiameter
				if h < need+6 {
					fmt.Fprintf(out, "            warning: fewer than %d rows, the indicator will be cramped\n", need+6)
				}
			} else {
				fmt.Fprintf(out, "Size:       unknown (%v)\n", err)
			}

			if cfgDir, err := dirs.ConfigDir(); err == nil {
				fmt.Fprintf(out, "Config:     %s\n", cfgDir)
			}
			if logFile, err := dirs.LogFile(); err == nil {
				fmt.Fprintf(out, "Debug log:  %s\n", logFile)
			}
			return nil
		},
	}
}
