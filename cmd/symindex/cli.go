package main

import (
	"context"
	"io"

	"github.com/fwojciec/symdex/index"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Indexer *index.Indexer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input        string `short:"i" default:"Military_Symbology_Guide.svg" env:"SYMDEX_INPUT" help:"Source SVG document"`
	Manifest     string `short:"m" default:"symbols-index.json" env:"SYMDEX_MANIFEST" help:"Manifest output path"`
	Previews     string `short:"o" default:"symbols" env:"SYMDEX_PREVIEWS" help:"Preview output directory"`
	Lang         string `default:"en" env:"SYMDEX_LANG" help:"Preferred label language"`
	FallbackLang string `name:"fallback-lang" env:"SYMDEX_FALLBACK_LANG" help:"Label language tried when the preferred one is missing"`
	Detect       string `default:"literal" enum:"literal,geometry" env:"SYMDEX_DETECT" help:"Panel border detection (literal, geometry)"`
	Collisions   string `default:"overwrite" enum:"overwrite,suffix,hash" env:"SYMDEX_COLLISIONS" help:"Preview file name collision policy (overwrite, suffix, hash)"`
	DB           string `name:"db" env:"SYMDEX_DB" help:"Also mirror the catalog into this SQLite database"`
	Verbose      bool   `short:"v" env:"SYMDEX_VERBOSE" help:"Log pipeline steps to stderr"`
}
