package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mimchine/mimchine/internal/inventory"
	"github.com/mimchine/mimchine/internal/runtimecmd"
	"github.com/mimchine/mimchine/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list all mim containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.runner(cmd.Context())
			if err != nil {
				return err
			}
			theme := ui.NewTheme(ui.SupportsColor(os.Stdout))
			return runList(cmd.Context(), run, cmd.OutOrStdout(), theme)
		},
	}
}

func runList(ctx context.Context, run runtimecmd.Runner, w io.Writer, theme ui.Theme) error {
	containers, err := inventory.List(ctx, run, true)
	if err != nil {
		return err
	}

	rows := make([]ui.ContainerRow, 0, len(containers))
	for _, c := range containers {
		state := c.State
		if state == "" {
			state = "unknown"
		}
		rows = append(rows, ui.ContainerRow{Name: c.DisplayName(), State: state})
	}
	ui.PrintContainerList(w, theme, rows)
	return nil
}
