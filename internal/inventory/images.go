package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/mimchine/mimchine/internal/mounts"
	"github.com/mimchine/mimchine/internal/runtimecmd"
)

// ImageExists reports whether the named image is present locally. Podman has
// a dedicated existence subcommand; docker only offers inspect, whose failure
// is taken as absence.
func ImageExists(ctx context.Context, run Runner, name string) (bool, error) {
	var err error
	switch run.Kind() {
	case runtimecmd.Podman:
		_, err = run.Output(ctx, "image", "exists", name)
	case runtimecmd.Docker:
		_, err = run.Output(ctx, "image", "inspect", name)
	default:
		return false, fmt.Errorf("unsupported runtime %v", run.Kind())
	}
	if err != nil {
		var cmdErr *runtimecmd.CommandError
		if errors.As(err, &cmdErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type imageInspectEntry struct {
	Config struct {
		Env []string `json:"Env"`
	} `json:"Config"`
}

// ImageHome resolves the home directory an image declares through its HOME
// environment variable, defaulting to the container root home. Home-share
// tilde mounts land under this directory.
func ImageHome(ctx context.Context, run Runner, name string) string {
	out, err := run.Output(ctx, "image", "inspect", name)
	if err != nil {
		return mounts.ContainerRootHome
	}
	entries, err := decodeList[imageInspectEntry]([]byte(out))
	if err != nil || len(entries) == 0 {
		return mounts.ContainerRootHome
	}
	env := parseEnvList(entries[0].Config.Env)
	if home := env["HOME"]; home != "" {
		return home
	}
	return mounts.ContainerRootHome
}
