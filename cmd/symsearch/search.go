package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/symdex"
)

// SearchCmd lists catalog symbols whose labels contain every term.
type SearchCmd struct {
	Terms    []string
	Previews string

	// Source names the catalog in the "not found" hint.
	Source string
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	symbols, err := deps.Symbols.FindSymbols(deps.Ctx, symdex.NewSymbolFilter(c.Terms...))
	if symdex.ErrorCode(err) == symdex.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "%s not found. Run: symindex\n", c.Source)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", symdex.ErrorMessage(err))
		return err
	}

	if len(symbols) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	for i, s := range symbols {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, s.Label)
		fmt.Fprintf(deps.Stdout, "   slug: %s\n", s.Slug)
		fmt.Fprintf(deps.Stdout, "   preview: %s\n", filepath.Join(c.Previews, s.PreviewName()))
		fmt.Fprintf(deps.Stdout, "   panel@ (%v, %v) size %vx%v\n", s.Panel.X, s.Panel.Y, s.Panel.Width, s.Panel.Height)
	}
	return nil
}
