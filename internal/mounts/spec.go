package mounts

import (
	"os"
	"path"
	"strings"
)

// ParseMountSpec validates a host_path:container_path mount requested on the
// command line. The host path must exist after normalization and the
// container path must be absolute.
func ParseMountSpec(raw string) (Bind, error) {
	hostPart, containerPart, ok := strings.Cut(raw, ":")
	if !ok {
		return Bind{}, &SpecError{Kind: "mount", Spec: raw, Reason: "expected host_path:container_path"}
	}
	containerPart = strings.TrimSpace(containerPart)
	if containerPart == "" {
		return Bind{}, &SpecError{Kind: "mount", Spec: raw, Reason: "container path cannot be empty"}
	}
	if !strings.HasPrefix(containerPart, "/") {
		return Bind{}, &SpecError{Kind: "mount", Spec: raw, Reason: "container path must be absolute"}
	}
	if strings.TrimSpace(hostPart) == "" {
		return Bind{}, &SpecError{Kind: "mount", Spec: raw, Reason: "host path cannot be empty"}
	}

	host := NormalizeHostPath(hostPart)
	if _, err := os.Stat(host); err != nil {
		return Bind{}, &SpecError{Kind: "mount", Spec: raw, Reason: "host path " + host + " does not exist"}
	}

	return Bind{Source: host, Destination: path.Clean(containerPart)}, nil
}

// ParseDeviceSpec validates a host_device[:container_device] passthrough.
// The host device must be an absolute existing path; the container device,
// when present, must be absolute.
func ParseDeviceSpec(raw string) (string, error) {
	hostPart, containerPart, split := strings.Cut(raw, ":")
	hostPart = strings.TrimSpace(hostPart)
	if hostPart == "" {
		return "", &SpecError{Kind: "device", Spec: raw, Reason: "host device cannot be empty"}
	}
	if !strings.HasPrefix(hostPart, "/") {
		return "", &SpecError{Kind: "device", Spec: raw, Reason: "host device must be an absolute path"}
	}
	if _, err := os.Stat(hostPart); err != nil {
		return "", &SpecError{Kind: "device", Spec: raw, Reason: "host device " + hostPart + " does not exist"}
	}
	if !split {
		return hostPart, nil
	}

	containerPart = strings.TrimSpace(containerPart)
	if containerPart == "" {
		return "", &SpecError{Kind: "device", Spec: raw, Reason: "container device cannot be empty"}
	}
	if !strings.HasPrefix(containerPart, "/") {
		return "", &SpecError{Kind: "device", Spec: raw, Reason: "container device must be absolute"}
	}
	return hostPart + ":" + path.Clean(containerPart), nil
}
