// Package inventory lists and inspects containers and images through the
// runtime gateway, normalizing the differing JSON shapes podman and docker
// produce into one abstraction.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mimchine/mimchine/internal/runtimecmd"
)

// Runner is the gateway surface the inventory consumes.
type Runner = runtimecmd.Runner

// MimLabel marks containers owned by mimchine. A container is a mim
// container iff its label set contains mim=1.
const (
	MimLabelKey   = "mim"
	MimLabelValue = "1"
)

var (
	// ErrContainerNotFound indicates the named container does not exist.
	ErrContainerNotFound = errors.New("container does not exist")

	// ErrNotMim indicates the named container exists but is not owned by
	// mimchine; destructive and entry operations refuse to touch it.
	ErrNotMim = errors.New("container is not a mim container")
)

// Container is one entry of the runtime's container listing.
type Container struct {
	Names  []string
	State  string
	Labels map[string]string
}

// DisplayName returns the container's primary name.
func (c Container) DisplayName() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[0]
}

// HasName reports whether the container answers to name, comparing against
// the normalized name list.
func (c Container) HasName(name string) bool {
	return slices.Contains(c.Names, name)
}

// IsMim reports whether the container carries the mim ownership label.
func (c Container) IsMim() bool {
	return c.Labels[MimLabelKey] == MimLabelValue
}

// IsRunning reports whether the container's listed state is running.
func (c Container) IsRunning() bool {
	return c.State == "running"
}

// List returns all containers known to the runtime, optionally filtered to
// mim containers at the runtime level.
func List(ctx context.Context, run Runner, onlyMim bool) ([]Container, error) {
	args := []string{"ps", "-a", "--format", "json"}
	if onlyMim {
		args = append(args, "--filter", "label="+MimLabelKey+"="+MimLabelValue)
	}
	out, err := run.Output(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	return ParseContainers([]byte(out))
}

// Lookup finds a container by name; the boolean is false when absent.
func Lookup(ctx context.Context, run Runner, name string) (Container, bool, error) {
	containers, err := List(ctx, run, false)
	if err != nil {
		return Container{}, false, err
	}
	for _, c := range containers {
		if c.HasName(name) {
			return c, true, nil
		}
	}
	return Container{}, false, nil
}

// Exists reports whether a container by this name exists at all.
func Exists(ctx context.Context, run Runner, name string) (bool, error) {
	_, found, err := Lookup(ctx, run, name)
	return found, err
}

// IsRunning reports whether the named container is currently running.
func IsRunning(ctx context.Context, run Runner, name string) (bool, error) {
	c, found, err := Lookup(ctx, run, name)
	if err != nil || !found {
		return false, err
	}
	return c.IsRunning(), nil
}

// RequireMim verifies the named container exists and is mim-owned. Every
// destructive or entry operation calls this first and fails closed.
func RequireMim(ctx context.Context, run Runner, name string) error {
	c, found, err := Lookup(ctx, run, name)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("container %q: %w", name, ErrContainerNotFound)
	}
	if !c.IsMim() {
		return fmt.Errorf("container %q: %w", name, ErrNotMim)
	}
	return nil
}
