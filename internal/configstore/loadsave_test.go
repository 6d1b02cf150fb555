package configstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	lockEnv(t)
	dir := t.TempDir()
	testSetEnv(t, "MIMCHINE_HOME", dir)
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	useTempConfigDir(t)

	cfg, found, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if found {
		t.Fatal("found = true for missing config file")
	}
	if cfg.Container.Runtime != RuntimePodman {
		t.Fatalf("runtime = %q, want %q", cfg.Container.Runtime, RuntimePodman)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	useTempConfigDir(t)

	want := Config{Container: ContainerConfig{Runtime: RuntimeDocker}}
	if err := Save(want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	cfg, found, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !found {
		t.Fatal("found = false after Save")
	}
	if cfg.Container.Runtime != RuntimeDocker {
		t.Fatalf("runtime = %q, want %q", cfg.Container.Runtime, RuntimeDocker)
	}
}

func TestLoadRejectsUnknownRuntime(t *testing.T) {
	dir := useTempConfigDir(t)

	raw := "[container]\nruntime = \"lxc\"\n"
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := Load()
	var valueErr *ValueError
	if !errors.As(err, &valueErr) {
		t.Fatalf("err = %v, want *ValueError", err)
	}
	if valueErr.Value != "lxc" {
		t.Fatalf("value = %q, want %q", valueErr.Value, "lxc")
	}
}

func TestLoadEmptyRuntimeDefaultsToPodman(t *testing.T) {
	dir := useTempConfigDir(t)

	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("[container]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, found, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !found {
		t.Fatal("found = false for existing config file")
	}
	if cfg.Container.Runtime != RuntimePodman {
		t.Fatalf("runtime = %q, want %q", cfg.Container.Runtime, RuntimePodman)
	}
}

func TestLoadMalformedTOMLReturnsParseError(t *testing.T) {
	dir := useTempConfigDir(t)

	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("container = {"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}

func TestEnsureSavedWritesPrompterChoice(t *testing.T) {
	dir := useTempConfigDir(t)

	prompter := NewTerminalPrompter(strings.NewReader("2\n"), &strings.Builder{})
	cfg, err := EnsureSaved(context.Background(), Default(), false, prompter)
	if err != nil {
		t.Fatalf("EnsureSaved returned error: %v", err)
	}
	if cfg.Container.Runtime != RuntimeDocker {
		t.Fatalf("runtime = %q, want %q", cfg.Container.Runtime, RuntimeDocker)
	}

	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		t.Fatalf("read persisted config: %v", err)
	}
	if !strings.Contains(string(data), "runtime = 'docker'") && !strings.Contains(string(data), `runtime = "docker"`) {
		t.Fatalf("persisted config missing docker runtime: %s", data)
	}
}

func TestEnsureSavedKeepsExistingConfig(t *testing.T) {
	useTempConfigDir(t)

	cfg := Config{Container: ContainerConfig{Runtime: RuntimeDocker}}
	got, err := EnsureSaved(context.Background(), cfg, true, nil)
	if err != nil {
		t.Fatalf("EnsureSaved returned error: %v", err)
	}
	if got.Container.Runtime != RuntimeDocker {
		t.Fatalf("runtime = %q, want %q", got.Container.Runtime, RuntimeDocker)
	}
	if _, _, err := Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
}

func TestTerminalPrompterRetriesOnGarbage(t *testing.T) {
	prompter := NewTerminalPrompter(strings.NewReader("maybe\npodman\n"), &strings.Builder{})
	runtime, err := prompter.ChooseRuntime(context.Background())
	if err != nil {
		t.Fatalf("ChooseRuntime returned error: %v", err)
	}
	if runtime != RuntimePodman {
		t.Fatalf("runtime = %q, want %q", runtime, RuntimePodman)
	}
}
