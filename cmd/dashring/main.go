package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	humane "github.com/sierrasoftworks/humane-errors-go"

	dashcmd "dashring/internal/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dashcmd.Execute(ctx); err != nil {
		code := dashcmd.ExitCLIError
		var ee *dashcmd.ExitError
		if errors.As(err, &ee) {
			code = ee.Code
			err = ee.Err
		}
		if err != nil {
			var he humane.Error
			if errors.As(err, &he) {
				fmt.Fprintln(os.Stderr, he.Display())
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		os.Exit(code)
	}
	os.Exit(dashcmd.ExitOK)
}
