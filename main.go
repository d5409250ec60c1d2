// Package main is the entry point for the connlint CLI.
package main

import "connlint.dev/pkg/connlint/cmd"

func main() {
	cmd.Execute()
}
