package main

import (
	"os"

	"github.com/ytget/gallery-viewer/internal/cli"
	"github.com/ytget/gallery-viewer/internal/logger"
)

var version = "dev"

func main() {
	cli.LoadDotEnv(cli.DotEnvPaths())
	cli.SetVersionInfo(version, "unknown", "unknown")

	if err := cli.Execute(); err != nil {
		logger.Error("gallery viewer failed", "error", err)
		os.Exit(1)
	}
}
