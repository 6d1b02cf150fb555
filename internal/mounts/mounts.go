// Package mounts plans host/container bind mounts for container creation and
// maps host paths to their in-container equivalents through a live mount
// table.
package mounts

import "fmt"

// Bind is a host path bound to a container path.
type Bind struct {
	Source      string
	Destination string
}

func (b Bind) String() string {
	return b.Source + ":" + b.Destination
}

// Spec is a planned mount whose source may still need to be created on the
// host before the runtime sees it.
type Spec struct {
	Source      string
	Destination string
	IsFile      bool
}

// SpecError reports a user-provided mount or device specification that failed
// validation. Validation happens before any runtime mutation.
type SpecError struct {
	Kind   string
	Spec   string
	Reason string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid %s spec %q: %s", e.Kind, e.Spec, e.Reason)
}
