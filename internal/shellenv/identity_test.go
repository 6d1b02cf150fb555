package shellenv

import (
	"os"
	"testing"
)

func TestSanitizeIdentityName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fallback string
		want     string
	}{
		{"dev", "mimuser1000", "dev"},
		{"_svc", "mimuser1000", "_svc"},
		{"dev-box", "mimuser1000", "dev-box"},
		{"", "mimuser1000", "mimuser1000"},
		{"9lives", "mimuser1000", "mimuser1000"},
		{"has space", "mimuser1000", "mimuser1000"},
		{"DOMAIN\\user", "mimuser1000", "mimuser1000"},
		{"-leading", "mimuser1000", "mimuser1000"},
	}
	for _, tt := range tests {
		if got := sanitizeIdentityName(tt.name, tt.fallback); got != tt.want {
			t.Errorf("sanitizeIdentityName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCurrentIdentityMatchesProcess(t *testing.T) {
	t.Parallel()

	id := CurrentIdentity()
	if id.UID != os.Getuid() {
		t.Fatalf("uid = %d, want %d", id.UID, os.Getuid())
	}
	if id.GID != os.Getgid() {
		t.Fatalf("gid = %d, want %d", id.GID, os.Getgid())
	}
	if !identityNamePattern.MatchString(id.Username) {
		t.Fatalf("username %q fails the identity pattern", id.Username)
	}
	if !identityNamePattern.MatchString(id.Groupname) {
		t.Fatalf("groupname %q fails the identity pattern", id.Groupname)
	}
}

func TestHostIdentityFallbacksAndUserSpec(t *testing.T) {
	t.Parallel()

	id := HostIdentity{UID: 1000, GID: 1000}
	if got := id.FallbackUsername(); got != "mimuser1000" {
		t.Fatalf("FallbackUsername = %q", got)
	}
	if got := id.FallbackGroupname(); got != "mimgroup1000" {
		t.Fatalf("FallbackGroupname = %q", got)
	}
	if got := id.UserSpec(); got != "1000:1000" {
		t.Fatalf("UserSpec = %q", got)
	}
}
