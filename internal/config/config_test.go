package config

import (
	"path/filepath"
	"testing"
)

func TestGetConfigDir_XDGOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "mdmend"); dir != want {
		t.Fatalf("GetConfigDir() = %q, want %q", dir, want)
	}
}

func TestGetConfigDir_HomeFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/tmp/home")

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/home", ".config", "mdmend"); dir != want {
		t.Fatalf("GetConfigDir() = %q, want %q", dir, want)
	}
}
