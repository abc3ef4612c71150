// Package main is the entry point for the ganzhi lookup tool.
package main

import "github.com/zapponejosh/ganzhi/internal/cli"

func main() {
	cli.Execute()
}
