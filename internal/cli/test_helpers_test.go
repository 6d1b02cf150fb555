package cli

import (
	"context"
	"strings"

	"github.com/mimchine/mimchine/internal/runtimecmd"
)

// call records one gateway invocation and the mode it used.
type call struct {
	mode string
	args []string
}

func (c call) joined() string {
	return strings.Join(c.args, " ")
}

// fakeRunner drives the run functions without a container runtime. All three
// modes share one respond handler; calls are recorded in order.
type fakeRunner struct {
	kind    runtimecmd.Kind
	respond func(args []string) (string, error)
	calls   []call
}

func (f *fakeRunner) Kind() runtimecmd.Kind {
	return f.kind
}

func (f *fakeRunner) record(mode string, args []string) []string {
	copied := make([]string, len(args))
	copy(copied, args)
	f.calls = append(f.calls, call{mode: mode, args: copied})
	return copied
}

func (f *fakeRunner) dispatch(mode string, args []string) (string, error) {
	copied := f.record(mode, args)
	if f.respond == nil {
		return "", nil
	}
	return f.respond(copied)
}

func (f *fakeRunner) Output(_ context.Context, args ...string) (string, error) {
	return f.dispatch("output", args)
}

func (f *fakeRunner) Stream(_ context.Context, args ...string) error {
	_, err := f.dispatch("stream", args)
	return err
}

func (f *fakeRunner) Foreground(_ context.Context, args ...string) error {
	_, err := f.dispatch("foreground", args)
	return err
}

func (f *fakeRunner) callsWithPrefix(prefix string) []call {
	var out []call
	for _, c := range f.calls {
		if strings.HasPrefix(c.joined(), prefix) {
			out = append(out, c)
		}
	}
	return out
}

func psJSON(entries ...string) string {
	return "[" + strings.Join(entries, ",") + "]"
}

func psEntry(name, state string, mim bool) string {
	label := "{}"
	if mim {
		label = `{"mim": "1"}`
	}
	return `{"Names": ["` + name + `"], "State": "` + state + `", "Labels": ` + label + `}`
}
