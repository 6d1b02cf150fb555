package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mimchine/mimchine/internal/inventory"
	"github.com/mimchine/mimchine/internal/mounts"
	"github.com/mimchine/mimchine/internal/runtimecmd"
	"github.com/mimchine/mimchine/internal/shellenv"
)

type shellOptions struct {
	containerName string
	shellCommand  string
	asRoot        bool

	// interactive adds -it; set when both stdin and stdout are terminals.
	interactive bool
	hostCwd     string
}

func newShellCmd(a *app) *cobra.Command {
	var opts shellOptions

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "get a shell in a running container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.runner(cmd.Context())
			if err != nil {
				return err
			}
			opts.interactive = term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
			if cwd, err := os.Getwd(); err == nil {
				opts.hostCwd = cwd
			}
			return runShell(cmd.Context(), run, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.containerName, "container-name", "c", "", "name of the container to get a shell in")
	cmd.Flags().StringVarP(&opts.shellCommand, "shell", "s", "zsh -l", "shell command to run in the container")
	cmd.Flags().BoolVar(&opts.asRoot, "as-root", false, "run the shell as root inside the container")
	cobra.CheckErr(cmd.MarkFlagRequired("container-name"))

	return cmd
}

func runShell(ctx context.Context, run runtimecmd.Runner, opts shellOptions) error {
	name := opts.containerName
	if err := inventory.RequireMim(ctx, run, name); err != nil {
		return err
	}

	shellArgs, err := shellquote.Split(opts.shellCommand)
	if err != nil {
		return fmt.Errorf("parse shell command: %w", err)
	}
	if len(shellArgs) == 0 {
		return fmt.Errorf("shell command cannot be empty")
	}

	running, err := inventory.IsRunning(ctx, run, name)
	if err != nil {
		return err
	}
	if !running {
		log.Info("container is not running, starting it", "container", name)
		if _, err := run.Output(ctx, "start", name); err != nil {
			return fmt.Errorf("start: %w", err)
		}
		running, err = inventory.IsRunning(ctx, run, name)
		if err != nil {
			return err
		}
		if !running {
			return fmt.Errorf("container %q could not be started (startup command exited)", name)
		}
	}

	containerMounts, err := inventory.ContainerMounts(ctx, run, name)
	if err != nil {
		return err
	}

	home, err := shellenv.ShellHomeDir(ctx, run, name, opts.asRoot)
	if err != nil {
		return err
	}

	var shellEnv []shellenv.EnvVar
	if !opts.asRoot {
		home, shellEnv, err = shellenv.PrepareNonRoot(ctx, run, name, home, shellArgs)
		if err != nil {
			return err
		}
	}

	log.Info("getting shell in container", "container", name)
	execArgs := []string{"exec"}
	if opts.interactive {
		execArgs = append(execArgs, "-it")
	}

	if opts.asRoot {
		log.Debug("running shell as root")
		execArgs = append(execArgs, "--user", "0:0")
	} else {
		execArgs = append(execArgs, shellenv.IdentityArgs(run.Kind())...)
		execArgs = append(execArgs, "-e", "HOME="+home)
		for _, env := range shellEnv {
			execArgs = append(execArgs, "-e", env.Key+"="+env.Value)
		}
	}

	if containerCwd, ok := mounts.MapToContainer(opts.hostCwd, containerMounts); ok {
		log.Debug("mapped cwd into container", "host", opts.hostCwd, "container", containerCwd)
		execArgs = append(execArgs, "-w", containerCwd)
	} else {
		log.Debug("cwd is not under mounted paths, using home", "host", opts.hostCwd, "home", home)
		execArgs = append(execArgs, "-w", home)
	}

	execArgs = append(execArgs, name)
	execArgs = append(execArgs, shellArgs...)

	return run.Foreground(ctx, execArgs...)
}
