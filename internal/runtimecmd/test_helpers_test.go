package runtimecmd

import (
	"os"
	"sync"
	"testing"
)

var pathMu sync.Mutex

func lockPath(t *testing.T) {
	t.Helper()
	pathMu.Lock()
	t.Cleanup(func() {
		pathMu.Unlock()
	})
}

func setPath(t *testing.T, value string) {
	t.Helper()
	prev, existed := os.LookupEnv("PATH")
	if err := os.Setenv("PATH", value); err != nil {
		t.Fatalf("set PATH: %v", err)
	}
	t.Cleanup(func() {
		if !existed {
			_ = os.Unsetenv("PATH")
			return
		}
		if err := os.Setenv("PATH", prev); err != nil {
			t.Fatalf("restore PATH: %v", err)
		}
	})
}
