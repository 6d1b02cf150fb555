package shellenv

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/mimchine/mimchine/internal/runtimecmd"
)

func TestDockerIdentityScriptQuotesNamesAndHome(t *testing.T) {
	t.Parallel()

	id := HostIdentity{UID: 1000, GID: 100, Username: "dev", Groupname: "users"}
	script := dockerIdentityScript(id, "/home/with space")

	for _, want := range []string{
		"uid=1000",
		"gid=100",
		"user=dev",
		"group=users",
		"fallback_user=mimuser1000",
		"fallback_group=mimgroup100",
		"home='/home/with space'",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q", want)
		}
	}

	// Entries are appended only after a lookup misses, so reruns stay no-ops.
	if strings.Count(script, ">> /etc/group") != 1 || strings.Count(script, ">> /etc/passwd") != 1 {
		t.Fatal("script should append to each identity file exactly once")
	}
	if !strings.Contains(script, `'$3 == uid { print $1; exit }'`) {
		t.Fatal("script missing uid lookup")
	}
}

func TestEnsureDockerIdentityReturnsOwningUsername(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{
		kind: runtimecmd.Docker,
		output: func(args []string) (string, error) {
			return "dev\n", nil
		},
	}
	username, ok := EnsureDockerIdentity(context.Background(), run, "box", "/home/dev")
	if !ok || username != "dev" {
		t.Fatalf("EnsureDockerIdentity = %q, %v, want dev, true", username, ok)
	}
	if len(run.calls) != 1 {
		t.Fatalf("calls = %v", run.calls)
	}
	call := run.calls[0]
	if !slices.Contains(call, "--user") || !slices.Contains(call, "0:0") {
		t.Fatalf("identity script must run as uid 0: %v", call)
	}
	if !strings.Contains(scriptOf(call), "/etc/passwd") {
		t.Fatalf("unexpected script: %q", scriptOf(call))
	}
}

func TestEnsureDockerIdentityToleratesFailure(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{
		kind: runtimecmd.Docker,
		output: func(args []string) (string, error) {
			return "", &runtimecmd.CommandError{Args: args, ExitCode: 126}
		},
	}
	if _, ok := EnsureDockerIdentity(context.Background(), run, "box", "/home/dev"); ok {
		t.Fatal("EnsureDockerIdentity reported success for a failing exec")
	}

	empty := &fakeRunner{kind: runtimecmd.Docker}
	if _, ok := EnsureDockerIdentity(context.Background(), empty, "box", "/home/dev"); ok {
		t.Fatal("EnsureDockerIdentity reported success for empty output")
	}
}
