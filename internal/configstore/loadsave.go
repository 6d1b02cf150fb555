package configstore

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ParseError represents a TOML decode failure.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the persisted config from disk. The second return value reports
// whether a config file was found; when it is false the returned Config is
// Default() and the caller decides whether to prompt or persist defaults.
func Load() (Config, bool, error) {
	cfg := Default()
	_, file, err := GetConfigPath()
	if err != nil {
		return cfg, false, err
	}
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			return cfg, true, &ParseError{Path: file, Err: decodeErr}
		}
		return cfg, true, err
	}
	if cfg.Container.Runtime == "" {
		cfg.Container.Runtime = DefaultRuntime
	}
	if err := cfg.Validate(); err != nil {
		return cfg, true, err
	}
	return cfg, true, nil
}

// Save writes the config to the platform config path, creating the directory
// when needed.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	dir, file, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
