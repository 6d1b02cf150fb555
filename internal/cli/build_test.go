package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/mimchine/mimchine/internal/runtimecmd"
)

func TestRunBuildArgAssembly(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{kind: runtimecmd.Docker}
	opts := buildOptions{
		dockerfile: "images/dev.dockerfile",
		imageName:  "devimage",
		contextDir: "images",
		platform:   "linux/arm64",
		buildArgs:  []string{"BASE=fedora:42", "WITH_ZSH=1"},
	}
	if err := runBuild(context.Background(), run, opts); err != nil {
		t.Fatalf("runBuild returned error: %v", err)
	}

	if len(run.calls) != 1 || run.calls[0].mode != "stream" {
		t.Fatalf("calls = %v, want one streamed build", run.calls)
	}
	joined := run.calls[0].joined()
	want := "build -f images/dev.dockerfile -t devimage --platform linux/arm64" +
		" --build-arg BASE=fedora:42 --build-arg WITH_ZSH=1 images"
	if joined != want {
		t.Fatalf("build args = %q, want %q", joined, want)
	}
}

func TestRunBuildPropagatesFailure(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{kind: runtimecmd.Podman}
	run.respond = func(args []string) (string, error) {
		return "", &runtimecmd.CommandError{Args: args, ExitCode: 2}
	}
	err := runBuild(context.Background(), run, buildOptions{dockerfile: "f", imageName: "n", contextDir: "."})
	if err == nil || !strings.Contains(err.Error(), "build") {
		t.Fatalf("runBuild = %v, want wrapped build error", err)
	}
}
