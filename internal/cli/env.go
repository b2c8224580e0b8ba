package cli

import (
	"os"
	"path/filepath"

	"github.com/subosito/gotenv"

	"github.com/ytget/gallery-viewer/internal/platform"
)

// DotEnvPaths returns where .env files are looked up, in priority order:
// the working directory first, then the per-user config directory.
func DotEnvPaths() []string {
	paths := []string{".env"}
	if dir, err := platform.ConfigDir(AppName); err == nil {
		paths = append(paths, filepath.Join(dir, ".env"))
	}
	return paths
}

// LoadDotEnv loads the first readable file from paths into the environment.
// Variables already set are not overwritten. It returns the loaded path, or ""
// when none was found.
func LoadDotEnv(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := gotenv.Load(p); err == nil {
			return p
		}
	}
	return ""
}
