// Package runtimecmd resolves the configured container runtime binary and
// exposes the narrow command surface the rest of mimchine consumes: captured
// output for parsing, line-streamed output for long operations, and a
// foreground mode that hands the terminal to the runtime for interactive exec.
package runtimecmd

import (
	"fmt"
	"strings"
)

// Kind is the closed set of supported container runtimes. Behavioral
// differences between podman and docker (image existence checks, UID mapping,
// home provisioning) dispatch on this value.
type Kind int

const (
	Podman Kind = iota
	Docker
)

func (k Kind) String() string {
	switch k {
	case Podman:
		return "podman"
	case Docker:
		return "docker"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a runtime name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.TrimSpace(name) {
	case "podman":
		return Podman, nil
	case "docker":
		return Docker, nil
	default:
		return Podman, fmt.Errorf("unsupported container runtime %q (expected podman or docker)", name)
	}
}

// NotFoundError indicates the configured runtime binary is not on PATH.
type NotFoundError struct {
	Runtime string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("container runtime %q not found; ensure it is installed and on PATH", e.Runtime)
}

// CommandError reports a runtime invocation that exited nonzero. Callers that
// treat a nonzero exit as a valid negative signal (existence checks, probes)
// detect it with errors.As.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q failed with exit code %d", strings.Join(e.Args, " "), e.ExitCode)
	if trimmed := strings.TrimSpace(e.Stderr); trimmed != "" {
		msg += ": " + trimmed
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
