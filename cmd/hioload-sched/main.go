package main

import (
	"os"
)

var (
	version   = ""
	commit    = ""
	buildDate = ""
)

// go build -ldflags "-X main.version=v0.1.0 -X main.commit=$(git rev-parse --short HEAD) -X 'main.buildDate=$(date +%Y-%m-%d)'" -o hioload-sched ./cmd/hioload-sched

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
