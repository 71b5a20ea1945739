package main

import (
	"os"

	"github.com/shouni/gemini-image-studio/internal/cli"
	"github.com/shouni/gemini-image-studio/internal/logging"
)

func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
