// Package main is the entry point for the easytest CLI.
package main

import "github.com/bbarker/easytest/cmd"

func main() {
	cmd.Execute()
}
