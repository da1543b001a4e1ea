// Package main provides the CLI entry point for sheetdeck.
package main

func main() {
	Execute()
}
