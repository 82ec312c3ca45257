// Package main provides the snpreport command-line tool.
package main

import (
	"os"
	"strings"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		msg := err.Error()
		if strings.Contains(msg, "unknown command") || strings.Contains(msg, "unknown flag") ||
			strings.Contains(msg, "accepts") || strings.Contains(msg, "requires") {
			return ExitUsage
		}
		return ExitError
	}
	return ExitSuccess
}
