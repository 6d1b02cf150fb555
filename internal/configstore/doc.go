// Package configstore persists mimchine's configuration as a TOML file in the
// platform config directory. The only setting today is the container runtime
// selection (podman or docker).
package configstore
