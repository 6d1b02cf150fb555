package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mimchine/mimchine/internal/runtimecmd"
)

type buildOptions struct {
	dockerfile string
	imageName  string
	contextDir string
	platform   string
	buildArgs  []string
}

func newBuildCmd(a *app) *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "build an image from a dockerfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.runner(cmd.Context())
			if err != nil {
				return err
			}
			return runBuild(cmd.Context(), run, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dockerfile, "dockerfile", "f", "", "path to the dockerfile to build an image from")
	cmd.Flags().StringVarP(&opts.imageName, "image-name", "n", "", "name of the image to build")
	cmd.Flags().StringVarP(&opts.contextDir, "context-dir", "C", ".", "path to the context directory for the build")
	cmd.Flags().StringVar(&opts.platform, "platform", "", "target platform for the build")
	cmd.Flags().StringArrayVar(&opts.buildArgs, "build-arg", nil, "build-time variables")
	cobra.CheckErr(cmd.MarkFlagRequired("dockerfile"))
	cobra.CheckErr(cmd.MarkFlagRequired("image-name"))

	return cmd
}

func runBuild(ctx context.Context, run runtimecmd.Runner, opts buildOptions) error {
	log.Info("building image", "dockerfile", opts.dockerfile)

	args := []string{"build", "-f", opts.dockerfile, "-t", opts.imageName}
	if opts.platform != "" {
		args = append(args, "--platform", opts.platform)
	}
	for _, buildArg := range opts.buildArgs {
		args = append(args, "--build-arg", buildArg)
	}
	args = append(args, opts.contextDir)

	if err := run.Stream(ctx, args...); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	log.Info("build complete", "image", opts.imageName)
	return nil
}
