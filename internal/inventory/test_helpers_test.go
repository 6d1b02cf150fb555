package inventory

import (
	"context"
	"strings"

	"github.com/mimchine/mimchine/internal/runtimecmd"
)

// fakeRunner routes Output calls to a handler and records every invocation.
type fakeRunner struct {
	kind   runtimecmd.Kind
	output func(args []string) (string, error)
	calls  [][]string
}

func (f *fakeRunner) Kind() runtimecmd.Kind {
	return f.kind
}

func (f *fakeRunner) Output(_ context.Context, args ...string) (string, error) {
	copied := make([]string, len(args))
	copy(copied, args)
	f.calls = append(f.calls, copied)
	if f.output == nil {
		return "", nil
	}
	return f.output(copied)
}

func (f *fakeRunner) Stream(_ context.Context, args ...string) error {
	copied := make([]string, len(args))
	copy(copied, args)
	f.calls = append(f.calls, copied)
	return nil
}

func (f *fakeRunner) Foreground(_ context.Context, args ...string) error {
	copied := make([]string, len(args))
	copy(copied, args)
	f.calls = append(f.calls, copied)
	return nil
}

func (f *fakeRunner) sawCommand(prefix ...string) bool {
	for _, call := range f.calls {
		if len(call) < len(prefix) {
			continue
		}
		if strings.Join(call[:len(prefix)], " ") == strings.Join(prefix, " ") {
			return true
		}
	}
	return false
}
