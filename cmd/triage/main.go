// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-02
// Last Modified: 2026-03-02

// Package main is the entry point for the triage CLI.
package main

import (
	"github.com/similigh/pr-triage/cmd/triage/commands"
)

func main() {
	commands.Execute()
}
