package main

import (
	"context"
	"io"

	"github.com/fwojciec/symdex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Symbols symdex.SymbolFinder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Terms    []string `arg:"" optional:"" help:"Keywords every matching label must contain"`
	Manifest string   `short:"m" default:"symbols-index.json" env:"SYMDEX_MANIFEST" help:"Manifest written by symindex"`
	Previews string   `short:"o" default:"symbols" env:"SYMDEX_PREVIEWS" help:"Preview directory written by symindex"`
	DB       string   `name:"db" env:"SYMDEX_DB" help:"Search the SQLite mirror instead of the manifest"`
	Verbose  bool     `short:"v" env:"SYMDEX_VERBOSE" help:"Log the lookup to stderr"`
}
