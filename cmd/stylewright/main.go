// Package main provides the stylewright CLI.
package main

import "github.com/stylewright-labs/stylewright/internal/cli"

func main() {
	cli.Execute()
}
