package mounts

import (
	"errors"
	"testing"
)

func TestParseMountSpec(t *testing.T) {
	t.Parallel()

	host := t.TempDir()

	bind, err := ParseMountSpec(host + ":/work/stuff")
	if err != nil {
		t.Fatalf("ParseMountSpec returned error: %v", err)
	}
	if bind.Destination != "/work/stuff" {
		t.Fatalf("destination = %q, want %q", bind.Destination, "/work/stuff")
	}
	if bind.Source != NormalizeHostPath(host) {
		t.Fatalf("source = %q, want %q", bind.Source, NormalizeHostPath(host))
	}
}

func TestParseMountSpecRejections(t *testing.T) {
	t.Parallel()

	host := t.TempDir()

	cases := []string{
		"no-colon-at-all",
		host + ":",
		host + ":relative/path",
		":/work",
		"/definitely/not/there:/work",
	}
	for _, raw := range cases {
		_, err := ParseMountSpec(raw)
		var specErr *SpecError
		if !errors.As(err, &specErr) {
			t.Fatalf("ParseMountSpec(%q) err = %v, want *SpecError", raw, err)
		}
		if specErr.Kind != "mount" {
			t.Fatalf("ParseMountSpec(%q) kind = %q", raw, specErr.Kind)
		}
	}
}

func TestParseDeviceSpec(t *testing.T) {
	t.Parallel()

	dev := t.TempDir()

	got, err := ParseDeviceSpec(dev)
	if err != nil {
		t.Fatalf("ParseDeviceSpec returned error: %v", err)
	}
	if got != dev {
		t.Fatalf("spec = %q, want %q", got, dev)
	}

	got, err = ParseDeviceSpec(dev + ":/dev/target")
	if err != nil {
		t.Fatalf("ParseDeviceSpec returned error: %v", err)
	}
	if got != dev+":/dev/target" {
		t.Fatalf("spec = %q, want %q", got, dev+":/dev/target")
	}
}

func TestParseDeviceSpecRejections(t *testing.T) {
	t.Parallel()

	dev := t.TempDir()

	cases := []string{
		"",
		"relative/device",
		"/definitely/not/there",
		dev + ":",
		dev + ":relative",
	}
	for _, raw := range cases {
		_, err := ParseDeviceSpec(raw)
		var specErr *SpecError
		if !errors.As(err, &specErr) {
			t.Fatalf("ParseDeviceSpec(%q) err = %v, want *SpecError", raw, err)
		}
		if specErr.Kind != "device" {
			t.Fatalf("ParseDeviceSpec(%q) kind = %q", raw, specErr.Kind)
		}
	}
}
