//go:build linux || darwin

package runtimecmd

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

// Foreground replaces the mimchine process with the runtime binary, giving
// the interactive session full ownership of the terminal and preserving the
// exact exit status. Nothing runs after a successful handover; cancellation
// is the user's own signal to the foreground process.
func (g *Gateway) Foreground(ctx context.Context, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	argv := append([]string{g.bin}, args...)
	log.Debug("running command in foreground", "cmd", g.commandLine(args))
	return unix.Exec(g.bin, argv, os.Environ())
}
