package runtimecmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner is the invocation contract consumed by the inventory, shell, and CLI
// layers. Tests substitute fakes; production code uses *Gateway.
type Runner interface {
	Kind() Kind
	// Output runs the runtime with args and returns captured stdout.
	Output(ctx context.Context, args ...string) (string, error)
	// Stream runs the runtime with args, forwarding stdout/stderr line by
	// line with a fixed indent.
	Stream(ctx context.Context, args ...string) error
	// Foreground hands the terminal to the runtime process until it exits.
	Foreground(ctx context.Context, args ...string) error
}

// Gateway invokes the resolved container runtime binary.
type Gateway struct {
	kind Kind
	bin  string
}

// New resolves the runtime binary once for this process invocation and fails
// fast with NotFoundError when it is absent from PATH.
func New(kind Kind) (*Gateway, error) {
	bin, err := exec.LookPath(kind.String())
	if err != nil {
		return nil, &NotFoundError{Runtime: kind.String()}
	}
	return &Gateway{kind: kind, bin: bin}, nil
}

func (g *Gateway) Kind() Kind {
	return g.kind
}

func (g *Gateway) Output(ctx context.Context, args ...string) (string, error) {
	log.Debug("running command", "cmd", g.commandLine(args))
	cmd := exec.CommandContext(ctx, g.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", g.wrapRunError(args, stderr.String(), err)
	}
	return stdout.String(), nil
}

func (g *Gateway) Stream(ctx context.Context, args ...string) error {
	log.Debug("running command", "cmd", g.commandLine(args))
	cmd := exec.CommandContext(ctx, g.bin, args...)
	cmd.Stdout = newIndentWriter(os.Stdout)
	cmd.Stderr = newIndentWriter(os.Stderr)
	if err := cmd.Run(); err != nil {
		return g.wrapRunError(args, "", err)
	}
	return nil
}

func (g *Gateway) wrapRunError(args []string, stderr string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{
			Args:     append([]string{g.kind.String()}, args...),
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr,
			Err:      err,
		}
	}
	return err
}

func (g *Gateway) commandLine(args []string) string {
	return g.kind.String() + " " + strings.Join(args, " ")
}
