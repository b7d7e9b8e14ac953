// Package main is the entry point for the upm CLI.
package main

import "upm.dev/pkg/upm/cmd"

func main() {
	cmd.Execute()
}
