package configstore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user which container runtime to persist on first run.
// Implementations must return one of the Runtime constants.
type Prompter interface {
	ChooseRuntime(ctx context.Context) (string, error)
}

type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter returns a plain line-oriented Prompter for terminals
// where the full-screen picker is unavailable.
func NewTerminalPrompter(in io.Reader, out io.Writer) Prompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) ChooseRuntime(ctx context.Context) (string, error) {
	fmt.Fprintf(p.out, "No mimchine config found; pick a container runtime.\n")
	fmt.Fprintf(p.out, "  1) %s (default)\n  2) %s\n", RuntimePodman, RuntimeDocker)

	for {
		fmt.Fprint(p.out, "Select an option [1-2]: ")
		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return DefaultRuntime, nil
			}
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "1", RuntimePodman:
			return RuntimePodman, nil
		case "2", RuntimeDocker:
			return RuntimeDocker, nil
		default:
			fmt.Fprintln(p.out, "Please respond with 1 or 2.")
		}
	}
}

// EnsureSaved persists cfg when no config file existed yet. When a prompter is
// provided it selects the runtime; otherwise defaults are written as-is.
func EnsureSaved(ctx context.Context, cfg Config, found bool, prompter Prompter) (Config, error) {
	if found {
		return cfg, nil
	}
	if prompter != nil {
		runtime, err := prompter.ChooseRuntime(ctx)
		if err != nil {
			return cfg, err
		}
		cfg.Container.Runtime = runtime
	}
	if err := Save(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
