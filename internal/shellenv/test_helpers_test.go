package shellenv

import (
	"context"
	"strings"

	"github.com/mimchine/mimchine/internal/runtimecmd"
)

// fakeRunner dispatches Output calls to a handler and records every
// invocation for later assertions.
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
	f.calls = append(f.calls, append([]string(nil), args...))
	return nil
}

func (f *fakeRunner) Foreground(_ context.Context, args ...string) error {
	f.calls = append(f.calls, append([]string(nil), args...))
	return nil
}

// inspectJSON renders a minimal inspect document exposing the given
// container environment.
func inspectJSON(env ...string) string {
	quoted := make([]string, len(env))
	for i, e := range env {
		quoted[i] = `"` + e + `"`
	}
	return `[{"Name": "box", "State": {"Status": "running"}, "Config": {"Env": [` +
		strings.Join(quoted, ", ") + `], "Labels": {"mim": "1"}}, "Mounts": []}]`
}

func isInspect(args []string) bool {
	return len(args) > 0 && args[0] == "inspect"
}

// scriptOf returns the trailing sh -lc payload of an exec invocation, or ""
// when the call is not one.
func scriptOf(args []string) string {
	if len(args) < 3 || args[0] != "exec" {
		return ""
	}
	if args[len(args)-2] != "-lc" {
		return ""
	}
	return args[len(args)-1]
}
