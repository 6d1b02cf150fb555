package mounts

import (
	"strings"
	"testing"
)

func TestOSIntegrationBindsLiveUnderMountBase(t *testing.T) {
	t.Parallel()

	binds, err := OSIntegrationBinds()
	if err != nil {
		t.Fatalf("OSIntegrationBinds returned error: %v", err)
	}
	if len(binds) == 0 {
		t.Fatal("no host integration mounts for this platform")
	}
	for _, b := range binds {
		if b.Source == "" {
			t.Errorf("bind %q has no host source", b.String())
		}
		if !strings.HasPrefix(b.Destination, MountBase+"/") {
			t.Errorf("bind %q escapes %s", b.String(), MountBase)
		}
	}
}

func TestHomeIntegrationBindMatchesEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USER", "dev")

	bind, env, err := HomeIntegrationBind()
	if err != nil {
		t.Fatalf("HomeIntegrationBind returned error: %v", err)
	}
	if bind.Source != home {
		t.Fatalf("source = %q, want %q", bind.Source, home)
	}
	if !strings.HasPrefix(bind.Destination, MountBase+"/") {
		t.Fatalf("destination %q escapes %s", bind.Destination, MountBase)
	}
	if env != "HOST_HOME="+bind.Destination {
		t.Fatalf("env = %q does not name the mount destination %q", env, bind.Destination)
	}
}
