//go:build !linux && !darwin

package runtimecmd

import (
	"context"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Foreground runs the runtime with inherited standard streams; process
// replacement is unavailable off unix, so the child is waited on instead.
func (g *Gateway) Foreground(ctx context.Context, args ...string) error {
	log.Debug("running command in foreground", "cmd", g.commandLine(args))
	cmd := exec.CommandContext(ctx, g.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return g.wrapRunError(args, "", err)
	}
	return nil
}
