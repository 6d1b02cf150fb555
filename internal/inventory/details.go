package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mimchine/mimchine/internal/mounts"
	"github.com/mimchine/mimchine/internal/runtimecmd"
)

// Details is the subset of inspect data mimchine consumes.
type Details struct {
	Name   string
	Status string
	Env    map[string]string
	Mounts []mounts.Bind
}

type inspectEntry struct {
	Name  flexNames `json:"Name"`
	State struct {
		Status string `json:"Status"`
	} `json:"State"`
	Config struct {
		Env    []string   `json:"Env"`
		Labels flexLabels `json:"Labels"`
	} `json:"Config"`
	Mounts []struct {
		Source      string `json:"Source"`
		Destination string `json:"Destination"`
	} `json:"Mounts"`
}

// Inspect fetches a container's inspect data. A nonexistent container yields
// (nil, nil): inspect failure is the runtime's way of saying "no such
// object", not an invocation error.
func Inspect(ctx context.Context, run Runner, name string) (*Details, error) {
	out, err := run.Output(ctx, "inspect", name)
	if err != nil {
		var cmdErr *runtimecmd.CommandError
		if errors.As(err, &cmdErr) {
			return nil, nil
		}
		return nil, fmt.Errorf("inspect container %q: %w", name, err)
	}

	entries, err := decodeList[inspectEntry](([]byte)(out))
	if err != nil {
		return nil, fmt.Errorf("inspect container %q: %w", name, err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return newDetails(entries[0]), nil
}

func newDetails(e inspectEntry) *Details {
	d := &Details{
		Status: e.State.Status,
		Env:    parseEnvList(e.Config.Env),
	}
	if len(e.Name) > 0 {
		d.Name = e.Name[0]
	}
	for _, m := range e.Mounts {
		// Entries missing either side are unusable for path mapping.
		if m.Source == "" || m.Destination == "" {
			continue
		}
		d.Mounts = append(d.Mounts, mounts.Bind{Source: m.Source, Destination: m.Destination})
	}
	return d
}

func parseEnvList(env []string) map[string]string {
	parsed := make(map[string]string, len(env))
	for _, entry := range env {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		parsed[key] = value
	}
	return parsed
}

// ContainerMounts returns the live mount table of a container.
func ContainerMounts(ctx context.Context, run Runner, name string) ([]mounts.Bind, error) {
	details, err := Inspect(ctx, run, name)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, fmt.Errorf("container %q: %w", name, ErrContainerNotFound)
	}
	return details.Mounts, nil
}

// ContainerEnv returns the environment snapshot of a container.
func ContainerEnv(ctx context.Context, run Runner, name string) (map[string]string, error) {
	details, err := Inspect(ctx, run, name)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, fmt.Errorf("container %q: %w", name, ErrContainerNotFound)
	}
	return details.Env, nil
}
