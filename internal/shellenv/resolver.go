package shellenv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mimchine/mimchine/internal/inventory"
	"github.com/mimchine/mimchine/internal/mounts"
	"github.com/mimchine/mimchine/internal/runtimecmd"
)

// HostHomeEnvKey is set on containers created with home integration and
// names the container-side path of the integrated host home.
const HostHomeEnvKey = "HOST_HOME"

// Runner is the gateway surface shell preparation talks through.
type Runner = runtimecmd.Runner

// ShellHomeDir picks the home directory a shell session should start in.
// Root shells always use the container root home. Non-root shells prefer the
// integrated host home, then the container's HOME, then the default shell
// environment; a container offering none of these is rejected rather than
// dropped into a guessed directory.
func ShellHomeDir(ctx context.Context, run Runner, container string, asRoot bool) (string, error) {
	if asRoot {
		return mounts.ContainerRootHome, nil
	}

	env, err := inventory.ContainerEnv(ctx, run, container)
	if err != nil {
		return "", err
	}
	if home := strings.TrimSpace(env[HostHomeEnvKey]); home != "" {
		return home, nil
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return home, nil
	}
	if home := probeDefaultHome(ctx, run, container); home != "" {
		return home, nil
	}
	return "", fmt.Errorf("container %q (checked HOST_HOME, HOME, default shell HOME): %w",
		container, ErrNoHome)
}

func probeDefaultHome(ctx context.Context, run Runner, container string) string {
	out, err := run.Output(ctx, "exec", container, "sh", "-lc", `printf "%s" "${HOME:-}"`)
	if err != nil {
		log.Debug("could not probe default home", "container", container, "exit_code", exitCode(err))
		return ""
	}
	return strings.TrimSpace(out)
}

// IdentityArgs returns the exec flags that pin a non-root session to the
// host identity. Podman already maps the host user via keep-id, so only
// docker needs an explicit --user pair.
func IdentityArgs(kind runtimecmd.Kind) []string {
	if kind == runtimecmd.Docker {
		return []string{"--user", CurrentIdentity().UserSpec()}
	}
	return nil
}

const homeProbeScript = `set -eu

if [ -z "$HOME" ]; then
  echo "HOME is empty" >&2
  exit 1
fi

if ! mkdir -p "$HOME" 2>/dev/null; then
  echo "HOME [$HOME] could not be created" >&2
  exit 1
fi

if [ ! -w "$HOME" ]; then
  echo "HOME [$HOME] is not writable" >&2
  exit 1
fi

printf "%s\n" "$HOME"
`

// ResolveNonRootHome validates the candidate home directory and proves it is
// writable for the non-root identity before any shell is started. Under
// docker the directory is first created and chowned as root, since the exec
// user may not exist in the image at all.
func ResolveNonRootHome(ctx context.Context, run Runner, container, home string) (string, error) {
	switch {
	case strings.TrimSpace(home) == "":
		return "", &HomeError{Container: container, Home: home, Reason: "directory is empty"}
	case !strings.HasPrefix(home, "/"):
		return "", &HomeError{Container: container, Home: home, Reason: "directory must be absolute"}
	case home == "/" || home == mounts.ContainerRootHome:
		return "", &HomeError{Container: container, Home: home, Reason: "refusing to use for a non-root shell"}
	}

	if run.Kind() == runtimecmd.Docker {
		if err := prepareDockerHome(ctx, run, container, home); err != nil {
			return "", err
		}
	}

	args := []string{"exec"}
	args = append(args, IdentityArgs(run.Kind())...)
	args = append(args, "-e", "HOME="+home, container, "sh", "-lc", homeProbeScript)
	out, err := run.Output(ctx, args...)
	if err != nil {
		return "", &HomeNotWritableError{Container: container, Home: home, ExitCode: exitCode(err)}
	}

	resolved := lastNonEmptyLine(out)
	if resolved == "" {
		return "", &HomeError{Container: container, Home: home, Reason: "writability probe returned no path"}
	}
	return resolved, nil
}

func prepareDockerHome(ctx context.Context, run Runner, container, home string) error {
	id := CurrentIdentity()
	script := fmt.Sprintf("set -eu\n\nhome=%s\nuid=%d\ngid=%d\n\n", quoteShellArg(home), id.UID, id.GID) +
		`mkdir -p "$home"
chown "$uid:$gid" "$home"
chmod u+rwx "$home"
`
	_, err := run.Output(ctx, "exec", "--user", "0:0", container, "sh", "-lc", script)
	if err != nil {
		return &HomeNotWritableError{Container: container, Home: home, ExitCode: exitCode(err)}
	}
	return nil
}

func exitCode(err error) int {
	var cmdErr *runtimecmd.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return -1
}

func lastNonEmptyLine(out string) string {
	lines := strings.Split(out, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
