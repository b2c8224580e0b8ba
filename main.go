package main

import (
	"os"

	"github.com/ytget/gallery-viewer/internal/cli"
	"github.com/ytget/gallery-viewer/internal/logger"
)

// Build-time variables injected by ldflags, e.g. -X main.version=X.Y.Z
var (
	version    = "dev"
	commitHash = "unknown"
	buildTime  = "unknown"
)

func main() {
	// Load .env if present; the working directory wins over the config dir
	cli.LoadDotEnv(cli.DotEnvPaths())

	cli.SetVersionInfo(version, commitHash, buildTime)

	if err := cli.Execute(); err != nil {
		logger.Error("gallery viewer failed", "error", err)
		os.Exit(1)
	}
}
