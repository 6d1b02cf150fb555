package shellenv

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mimchine/mimchine/internal/inventory"
	"github.com/mimchine/mimchine/internal/mounts"
	"github.com/mimchine/mimchine/internal/runtimecmd"
)

// ZdotdirEnvKey lets images publish a zsh config directory; when set on the
// container, ZDOTDIR for non-root zsh sessions points there.
const ZdotdirEnvKey = "MIM_ZDOTDIR"

// EnvVar is one environment assignment for the entry command. Order is
// preserved all the way to the exec flags.
type EnvVar struct {
	Key   string
	Value string
}

// PrepareNonRoot makes a container ready for a non-root shell: it proves the
// home directory writable, wires shell history, checks zsh availability, and
// under docker reconciles the uid/gid identity. It returns the resolved home
// and the ordered environment for the entry command.
func PrepareNonRoot(ctx context.Context, run Runner, container, home string, shellArgs []string) (string, []EnvVar, error) {
	resolvedHome, err := ResolveNonRootHome(ctx, run, container, home)
	if err != nil {
		return "", nil, err
	}

	env := historyEnv(shellArgs)
	if IsZshCommand(shellArgs) {
		if !HasCommand(ctx, run, container, "zsh") {
			return "", nil, fmt.Errorf("container %q: %w", container, ErrZshMissing)
		}
		zdotdir, err := zshEnv(ctx, run, container)
		if err != nil {
			return "", nil, err
		}
		env = append(env, zdotdir...)
	}

	if run.Kind() == runtimecmd.Docker {
		if username, ok := EnsureDockerIdentity(ctx, run, container, resolvedHome); ok {
			env = append(env,
				EnvVar{Key: "USER", Value: username},
				EnvVar{Key: "LOGNAME", Value: username},
			)
		}
	}

	return resolvedHome, env, nil
}

// HasCommand reports whether the container can resolve the named command
// through a login shell.
func HasCommand(ctx context.Context, run Runner, container, command string) bool {
	script := "command -v " + quoteShellArg(command) + " >/dev/null 2>&1"
	_, err := run.Output(ctx, "exec", container, "sh", "-lc", script)
	return err == nil
}

// IsZshCommand reports whether the entry command invokes zsh.
func IsZshCommand(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return filepath.Base(args[0]) == "zsh"
}

func historyEnv(shellArgs []string) []EnvVar {
	if len(shellArgs) == 0 {
		return nil
	}
	var historyFile string
	switch filepath.Base(shellArgs[0]) {
	case "zsh":
		historyFile = ".zsh_history"
	case "bash":
		historyFile = ".bash_history"
	default:
		return nil
	}
	histfile := path.Join(mounts.ShellHistoryDir, historyFile)
	log.Debug("using shell history file", "path", histfile)
	return []EnvVar{{Key: "HISTFILE", Value: histfile}}
}

func zshEnv(ctx context.Context, run Runner, container string) ([]EnvVar, error) {
	env, err := inventory.ContainerEnv(ctx, run, container)
	if err != nil {
		return nil, err
	}
	zdotdir := strings.TrimSpace(env[ZdotdirEnvKey])
	if zdotdir == "" {
		log.Debug("zsh config dir not published by container, leaving ZDOTDIR unchanged",
			"container", container)
		return nil, nil
	}
	log.Debug("using zsh config dir", "container", container, "path", zdotdir)
	return []EnvVar{{Key: "ZDOTDIR", Value: zdotdir}}, nil
}
