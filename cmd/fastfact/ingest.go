package main

import (
	"fmt"

	"fastfact"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	run, err := deps.Ingester.ProcessFolder(deps.Ctx, c.Folder)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fastfact.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ingested %s: %d processed, %d skipped, %d failed\n",
		c.Folder, run.Processed, run.Skipped, run.Failed)
	return nil
}
