package configstore

import "fmt"

// Runtime names accepted by the [container] runtime key.
const (
	RuntimePodman = "podman"
	RuntimeDocker = "docker"
)

// DefaultRuntime is used when no config file exists and the user is not asked.
const DefaultRuntime = RuntimePodman

// Config mirrors the on-disk TOML schema.
type Config struct {
	Container ContainerConfig `toml:"container"`
}

// ContainerConfig holds container runtime selection.
type ContainerConfig struct {
	Runtime string `toml:"runtime"`
}

// ValueError reports a config value that failed validation.
type ValueError struct {
	Key   string
	Value string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid config value %s = %q (expected %q or %q)", e.Key, e.Value, RuntimePodman, RuntimeDocker)
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Container: ContainerConfig{Runtime: DefaultRuntime}}
}

// Validate checks the configuration for unsupported values.
func (c Config) Validate() error {
	switch c.Container.Runtime {
	case RuntimePodman, RuntimeDocker:
		return nil
	default:
		return &ValueError{Key: "container.runtime", Value: c.Container.Runtime}
	}
}
