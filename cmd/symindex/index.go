package main

import (
	"fmt"

	"github.com/fwojciec/symdex"
)

// IndexCmd rebuilds the manifest and previews from one source document.
type IndexCmd struct {
	Input    string
	Manifest string
	Previews string
}

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	m, err := deps.Indexer.Index(deps.Ctx, c.Input)
	if err != nil {
		if symdex.ErrorCode(err) == symdex.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "Hint: another symindex is writing %s\n", c.Previews)
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d symbol panels.\n", m.Total)
	fmt.Fprintf(deps.Stdout, "- Index: %s\n", c.Manifest)
	fmt.Fprintf(deps.Stdout, "- Previews: %s/*.svg\n", c.Previews)
	return nil
}
