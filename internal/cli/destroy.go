package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mimchine/mimchine/internal/inventory"
	"github.com/mimchine/mimchine/internal/mounts"
	"github.com/mimchine/mimchine/internal/runtimecmd"
)

type destroyOptions struct {
	containerName string
	force         bool
}

func newDestroyCmd(a *app) *cobra.Command {
	var opts destroyOptions

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "destroy a container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.runner(cmd.Context())
			if err != nil {
				return err
			}
			dataRoot, err := mounts.AppDataDir()
			if err != nil {
				return err
			}
			return runDestroy(cmd.Context(), run, opts, dataRoot)
		},
	}

	cmd.Flags().StringVarP(&opts.containerName, "container-name", "c", "", "name of the container to destroy")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "force destroy the container")
	cobra.CheckErr(cmd.MarkFlagRequired("container-name"))

	return cmd
}

func runDestroy(ctx context.Context, run runtimecmd.Runner, opts destroyOptions, dataRoot string) error {
	name := opts.containerName
	if err := inventory.RequireMim(ctx, run, name); err != nil {
		return err
	}

	running, err := inventory.IsRunning(ctx, run, name)
	if err != nil {
		return err
	}
	if running {
		if !opts.force {
			return fmt.Errorf("container %q is running", name)
		}
		if _, err := run.Output(ctx, "stop", "-t", "1", name); err != nil {
			return fmt.Errorf("stop: %w", err)
		}
	}

	dataDir := filepath.Join(dataRoot, name)
	log.Info("destroying data directory", "container", name, "path", dataDir)
	if err := os.RemoveAll(dataDir); err != nil {
		return fmt.Errorf("remove data directory: %w", err)
	}

	log.Info("destroying mim container", "container", name)
	if _, err := run.Output(ctx, "rm", name); err != nil {
		return fmt.Errorf("destroy: %w", err)
	}

	log.Info("container destroyed", "container", name)
	return nil
}
