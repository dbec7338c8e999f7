// Package main provides the entry point for the htmlgen CLI tool.
package main

import "github.com/componentry/htmlgen/cmd/htmlgen/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
