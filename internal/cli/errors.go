package cli

import (
	"errors"
	"fmt"

	"github.com/llehouerou/tplay/internal/errmsg"
)

// errShutdownTimeout is returned when the audio device does not close
// within the grace period.
var errShutdownTimeout = errors.New("audio device did not close in time")

// errReported tells Execute that Run already printed the failure.
var errReported = errors.New("failure reported")

// StartupError is a fatal error, reported as "tplay: <op>: <err>".
type StartupError struct {
	Op  errmsg.Op
	Err error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

func fail(op errmsg.Op, err error) error {
	return &StartupError{Op: op, Err: err}
}
