package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mimchine/mimchine/internal/inventory"
	"github.com/mimchine/mimchine/internal/runtimecmd"
)

func newStartCmd(a *app) *cobra.Command {
	var containerName string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "start a container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.runner(cmd.Context())
			if err != nil {
				return err
			}
			return runStart(cmd.Context(), run, containerName)
		},
	}

	cmd.Flags().StringVarP(&containerName, "container-name", "c", "", "name of the container to start")
	cobra.CheckErr(cmd.MarkFlagRequired("container-name"))

	return cmd
}

func runStart(ctx context.Context, run runtimecmd.Runner, name string) error {
	if err := inventory.RequireMim(ctx, run, name); err != nil {
		return err
	}

	running, err := inventory.IsRunning(ctx, run, name)
	if err != nil {
		return err
	}
	if running {
		log.Info("container is already running", "container", name)
		return nil
	}

	log.Info("starting container", "container", name)
	if err := run.Stream(ctx, "start", name); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	log.Info("container started", "container", name)
	return nil
}

func newStopCmd(a *app) *cobra.Command {
	var (
		containerName string
		timeout       int
	)

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "stop a container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.runner(cmd.Context())
			if err != nil {
				return err
			}
			return runStop(cmd.Context(), run, containerName, timeout)
		},
	}

	cmd.Flags().StringVarP(&containerName, "container-name", "c", "", "name of the container to stop")
	cmd.Flags().IntVarP(&timeout, "timeout", "t", 10, "seconds to wait before forcefully stopping the container")
	cobra.CheckErr(cmd.MarkFlagRequired("container-name"))

	return cmd
}

func runStop(ctx context.Context, run runtimecmd.Runner, name string, timeout int) error {
	if err := inventory.RequireMim(ctx, run, name); err != nil {
		return err
	}

	running, err := inventory.IsRunning(ctx, run, name)
	if err != nil {
		return err
	}
	if !running {
		log.Info("container is already stopped", "container", name)
		return nil
	}

	log.Info("stopping container", "container", name)
	if err := run.Stream(ctx, "stop", "-t", strconv.Itoa(timeout), name); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	log.Info("container stopped", "container", name)
	return nil
}
