// Package shellenv prepares container shell sessions: it resolves the home
// directory a shell should run under, mirrors the host uid/gid identity into
// docker containers, and assembles the environment (history, zsh config,
// user names) the entry command is launched with.
package shellenv

import (
	"errors"
	"fmt"
)

// ErrZshMissing indicates a zsh shell was requested in a container that has
// no zsh binary.
var ErrZshMissing = errors.New("zsh is not installed")

// ErrNoHome indicates a container defines no usable non-root home through
// HOST_HOME, HOME, or its default shell environment.
var ErrNoHome = errors.New("no non-root home directory defined")

// HomeError reports a shell home directory that is unusable before any
// container command runs.
type HomeError struct {
	Container string
	Home      string
	Reason    string
}

func (e *HomeError) Error() string {
	return fmt.Sprintf("container %q: shell home %q: %s", e.Container, e.Home, e.Reason)
}

// HomeNotWritableError reports a shell home that could not be created or
// written inside the container. ExitCode carries the probe's exit status.
type HomeNotWritableError struct {
	Container string
	Home      string
	ExitCode  int
}

func (e *HomeNotWritableError) Error() string {
	return fmt.Sprintf("container %q: shell home %q is not writable (exit code %d)",
		e.Container, e.Home, e.ExitCode)
}
