package main

import (
	"fmt"

	"github.com/fwojciec/hoverdoc"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	if err := deps.Cache.CleanExpired(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hoverdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Expired cache entries removed.")
	return nil
}
