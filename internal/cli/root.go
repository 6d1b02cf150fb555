// Package cli wires the mimchine commands. Each command parses its flags,
// builds a runtime gateway, and hands off to a run function that takes the
// gateway as an interface so tests can drive the flows without a container
// runtime installed.
package cli

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mimchine/mimchine/internal/configstore"
	"github.com/mimchine/mimchine/internal/runtimecmd"
	"github.com/mimchine/mimchine/internal/ui"
)

const appName = "mimchine"

// Version is stamped by the release build.
var Version = "dev"

type app struct {
	verbosity       int
	quiet           bool
	runtimeOverride string
}

// NewRootCmd assembles the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           appName,
		Short:         appName + ": integrated mini machines",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(a.verbosity, a.quiet)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	var versionLine strings.Builder
	ui.PrintVersion(&versionLine, appName, Version)
	root.SetVersionTemplate(versionLine.String())

	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "verbose output")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "quiet output")
	root.PersistentFlags().StringVar(&a.runtimeOverride, "runtime", "", "container runtime for this invocation (podman or docker)")
	root.Flags().BoolP("version", "V", false, "print the version")

	root.AddCommand(
		newBuildCmd(a),
		newCreateCmd(a),
		newDestroyCmd(a),
		newShellCmd(a),
		newStartCmd(a),
		newStopCmd(a),
		newListCmd(a),
	)
	return root
}

// Execute runs the CLI and returns the process exit code. Failures surface
// as a single error log line.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func configureLogging(verbosity int, quiet bool) {
	log.SetReportTimestamp(false)
	switch {
	case quiet:
		log.SetLevel(log.WarnLevel)
	case verbosity >= 1:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// runner resolves the configured runtime, prompting and persisting the
// choice on first run. A --runtime override applies to this invocation only
// and is never written back.
func (a *app) runner(ctx context.Context) (runtimecmd.Runner, error) {
	if a.runtimeOverride != "" {
		kind, err := runtimecmd.ParseKind(a.runtimeOverride)
		if err != nil {
			return nil, err
		}
		return runtimecmd.New(kind)
	}

	cfg, found, err := configstore.Load()
	if err != nil {
		return nil, err
	}
	cfg, err = configstore.EnsureSaved(ctx, cfg, found, ui.NewRuntimePrompter(os.Stdin, os.Stderr))
	if err != nil {
		return nil, err
	}
	kind, err := runtimecmd.ParseKind(cfg.Container.Runtime)
	if err != nil {
		return nil, err
	}
	return runtimecmd.New(kind)
}
