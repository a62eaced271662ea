package ui

import (
	"context"

	"dashring/internal/progress"
)

type progressMsg struct {
	U progress.Update
}

type resultMsg struct {
	R progress.Result
}

// sourceStartedMsg carries the cancel handle for the run that was just
// launched; the model stores it so a reset or a new scenario can stop it.
type sourceStartedMsg struct {
	cancel context.CancelFunc
}
