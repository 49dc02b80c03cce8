package main

import (
	"fmt"

	"fastfact"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return fastfact.Errorf(fastfact.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fastfact.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %q\n", c.ID)
	return nil
}
