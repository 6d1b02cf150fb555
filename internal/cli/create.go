package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/mimchine/mimchine/internal/inventory"
	"github.com/mimchine/mimchine/internal/mounts"
	"github.com/mimchine/mimchine/internal/runtimecmd"
)

type createOptions struct {
	imageName        string
	containerName    string
	homeShares       []string
	portBinds        []string
	customMounts     []string
	devices          []string
	hostPID          bool
	privileged       bool
	keepaliveCommand string
	keepaliveSet     bool
	integrateHome    bool
}

func newCreateCmd(a *app) *cobra.Command {
	var opts createOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "create a container from an image",
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
			opts.keepaliveSet = cmd.Flags().Changed("keepalive-command")
			return runCreate(cmd.Context(), run, opts, dataRoot)
		},
	}

	cmd.Flags().StringVarP(&opts.imageName, "image-name", "n", "", "name of the image to run")
	cmd.Flags().StringVarP(&opts.containerName, "container-name", "c", "", "name to give the container")
	cmd.Flags().StringArrayVarP(&opts.homeShares, "home-share", "H", nil, "passthrough mount under host home; available at identical path and under container HOME")
	cmd.Flags().StringArrayVarP(&opts.portBinds, "port-bind", "p", nil, "port to bind from the host to the container")
	cmd.Flags().StringArrayVarP(&opts.customMounts, "mount", "M", nil, "custom mount in format host_path:container_path")
	cmd.Flags().StringArrayVarP(&opts.devices, "device", "D", nil, "host device to pass through, host_device[:container_device]")
	cmd.Flags().BoolVar(&opts.hostPID, "host-pid", false, "share the host's PID namespace with the container")
	cmd.Flags().BoolVar(&opts.privileged, "privileged", false, "run the container in privileged mode")
	cmd.Flags().StringVar(&opts.keepaliveCommand, "keepalive-command", "", "override the image command used as pid 1")
	cmd.Flags().BoolVar(&opts.integrateHome, "integrate-home", false, "mount full host home under /mim and set HOST_HOME")
	cobra.CheckErr(cmd.MarkFlagRequired("image-name"))

	return cmd
}

func runCreate(ctx context.Context, run runtimecmd.Runner, opts createOptions, dataRoot string) error {
	name := opts.containerName
	if name == "" {
		name = opts.imageName
	}

	exists, err := inventory.Exists(ctx, run, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("container %q already exists", name)
	}

	imageOK, err := inventory.ImageExists(ctx, run, opts.imageName)
	if err != nil {
		return err
	}
	if !imageOK {
		return fmt.Errorf("image %q does not exist", opts.imageName)
	}

	// Everything user-provided is validated before the data directory or the
	// container come into existence.
	createArgs, dataSpecs, err := buildCreateArgs(ctx, run, opts, name, filepath.Join(dataRoot, name))
	if err != nil {
		return err
	}

	dataDir := filepath.Join(dataRoot, name)
	log.Info("creating data directory", "path", dataDir)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	for _, spec := range dataSpecs {
		if err := mounts.EnsureSpecSource(spec); err != nil {
			return fmt.Errorf("prepare mount source %q: %w", spec.Source, err)
		}
	}

	log.Info("creating mim container", "container", name, "image", opts.imageName)
	if err := run.Stream(ctx, createArgs...); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	log.Info("container created", "container", name)
	return nil
}

func buildCreateArgs(ctx context.Context, run runtimecmd.Runner, opts createOptions, name, dataDir string) ([]string, []mounts.Spec, error) {
	args := []string{
		"create",
		"--name", name,
		"--init",
		"--label", inventory.MimLabelKey + "=" + inventory.MimLabelValue,
	}

	if run.Kind() == runtimecmd.Podman {
		args = append(args, "--userns", "keep-id")
	}
	if opts.hostPID {
		args = append(args, "--pid=host")
	}
	if opts.privileged {
		args = append(args, "--privileged")
	}

	if opts.integrateHome {
		bind, homeEnv, err := mounts.HomeIntegrationBind()
		if err != nil {
			return nil, nil, err
		}
		args = append(args, "-v", bind.String(), "-e", homeEnv)
	}

	osBinds, err := mounts.OSIntegrationBinds()
	if err != nil {
		return nil, nil, err
	}
	for _, bind := range osBinds {
		args = append(args, "-v", bind.String())
	}

	dataSpecs := mounts.DataDirSpecs(dataDir)
	for _, spec := range dataSpecs {
		args = append(args, "-v", spec.Source+":"+spec.Destination)
	}

	if len(opts.homeShares) > 0 {
		userHome, err := mounts.HostHomeDir()
		if err != nil {
			return nil, nil, err
		}
		imageHome := inventory.ImageHome(ctx, run, opts.imageName)
		for _, pair := range mounts.HomeSharePairs(opts.homeShares, mounts.NormalizeHostPath(userHome), imageHome) {
			args = append(args, "-v", pair.String())
		}
	}

	for _, raw := range opts.customMounts {
		bind, err := mounts.ParseMountSpec(raw)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("adding custom mount", "mount", bind.String())
		args = append(args, "-v", bind.String())
	}

	for _, raw := range opts.devices {
		device, err := mounts.ParseDeviceSpec(raw)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, "--device", device)
	}

	for _, portBind := range opts.portBinds {
		args = append(args, "-p", portBind)
	}

	args = append(args, opts.imageName)

	if opts.keepaliveSet {
		keepaliveArgs, err := shellquote.Split(opts.keepaliveCommand)
		if err != nil {
			return nil, nil, fmt.Errorf("parse keepalive command: %w", err)
		}
		if len(keepaliveArgs) == 0 {
			return nil, nil, fmt.Errorf("keepalive command cannot be empty")
		}
		args = append(args, keepaliveArgs...)
	}

	return args, dataSpecs, nil
}
