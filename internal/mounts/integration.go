package mounts

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
)

// MountBase is where host integration trees appear inside a mim container.
const MountBase = "/mim"

// ContainerRootHome is the fixed home directory for root sessions.
const ContainerRootHome = "/root"

// ShellHistoryDir is the dedicated in-container directory for shell history
// files, backed by the per-container data directory so history survives
// container destruction of the filesystem layer.
const ShellHistoryDir = MountBase + "/history"

// OSIntegrationBinds returns the host directories every mim container gets
// mirrored under MountBase, keyed by the host operating system.
func OSIntegrationBinds() ([]Bind, error) {
	switch runtime.GOOS {
	case "darwin":
		return []Bind{
			{Source: "/Users", Destination: MountBase + "/Users"},
			{Source: "/Volumes", Destination: MountBase + "/Volumes"},
		}, nil
	case "linux":
		return []Bind{
			{Source: "/home", Destination: MountBase + "/home"},
		}, nil
	case "windows":
		return []Bind{
			{Source: `C:\Users`, Destination: MountBase + "/Users"},
		}, nil
	default:
		return nil, fmt.Errorf("no host integration mounts for %s", runtime.GOOS)
	}
}

// HomeIntegrationBind mounts the full host home under the integration tree
// and reports the matching HOST_HOME environment value, the marker the shell
// resolver later reads back from a live container.
func HomeIntegrationBind() (Bind, string, error) {
	home, err := HostHomeDir()
	if err != nil {
		return Bind{}, "", err
	}
	username, err := CurrentUsername()
	if err != nil {
		return Bind{}, "", err
	}

	var containerHome string
	switch runtime.GOOS {
	case "darwin", "windows":
		containerHome = MountBase + "/Users/" + username
	case "linux":
		containerHome = MountBase + "/home/" + username
	default:
		return Bind{}, "", fmt.Errorf("no home integration for %s", runtime.GOOS)
	}

	bind := Bind{Source: home, Destination: containerHome}
	return bind, "HOST_HOME=" + containerHome, nil
}

// DataDirSpecs returns the mounts backed by a container's data directory.
func DataDirSpecs(dataDir string) []Spec {
	return []Spec{
		{Source: filepath.Join(dataDir, "history"), Destination: ShellHistoryDir, IsFile: false},
	}
}

// EnsureSpecSource creates a missing mount source on the host: directories
// for directory mounts, empty world-writable files for file mounts.
func EnsureSpecSource(spec Spec) error {
	if _, err := os.Stat(spec.Source); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if !spec.IsFile {
		return os.MkdirAll(spec.Source, 0o755)
	}
	if dir := filepath.Dir(spec.Source); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(spec.Source, os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Chmod(spec.Source, 0o777)
}

// AppDataDir resolves the platform application data root for mimchine.
// Per-container data directories live directly beneath it.
func AppDataDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := HostHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", "mimchine"), nil
	case "linux":
		if xdg := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdg != "" {
			return filepath.Join(xdg, "mimchine"), nil
		}
		home, err := HostHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "mimchine"), nil
	case "windows":
		appData := strings.TrimSpace(os.Getenv("APPDATA"))
		if appData == "" {
			return "", fmt.Errorf("APPDATA is not set")
		}
		return filepath.Join(appData, "mimchine"), nil
	default:
		return "", fmt.Errorf("no app data dir for %s", runtime.GOOS)
	}
}

// HostHomeDir resolves the invoking user's home directory from the
// environment, consulting os.UserHomeDir only as a last resort so tests can
// redirect it.
func HostHomeDir() (string, error) {
	home := strings.TrimSpace(os.Getenv("HOME"))
	if home == "" && runtime.GOOS == "windows" {
		home = strings.TrimSpace(os.Getenv("USERPROFILE"))
	}
	if home != "" {
		return filepath.Clean(home), nil
	}
	resolved, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(resolved) == "" {
		if err == nil {
			err = fmt.Errorf("home directory not found")
		}
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Clean(resolved), nil
}

// CurrentUsername resolves the invoking user's name from the environment
// with an os/user fallback.
func CurrentUsername() (string, error) {
	if name := strings.TrimSpace(os.Getenv("USER")); name != "" {
		return name, nil
	}
	if runtime.GOOS == "windows" {
		if name := strings.TrimSpace(os.Getenv("USERNAME")); name != "" {
			return name, nil
		}
	}
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("resolve current user: %w", err)
	}
	return u.Username, nil
}
