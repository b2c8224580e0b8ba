package platform

import (
	"path/filepath"
	"testing"
)

func TestConfigDir(t *testing.T) {
	dir, err := ConfigDir("gallery-viewer")
	if err != nil {
		t.Skipf("no user config dir on this machine: %v", err)
	}
	if filepath.Base(dir) != "gallery-viewer" {
		t.Errorf("Expected dir to end with app name, got %s", dir)
	}
}
