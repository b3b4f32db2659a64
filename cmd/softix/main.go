// Package main is the entry point for the softix CLI client.
package main

import (
	"github.com/softix-tools/softix-cli/cmd/softix/cmd"
)

func main() {
	cmd.Execute()
}
