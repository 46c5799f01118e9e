package main

import (
	"github.com/ytget/movie-explorer/cmd"
)

// Set during build via -ldflags "-X main.version=X.Y.Z"
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cmd.SetVersion(version, buildTime)
	cmd.Execute()
}
