package main

import (
	"fmt"

	"fastfact"
)

// Run executes the approve command.
func (c *ApproveCmd) Run(deps *Dependencies) error {
	approved := true
	rec, err := deps.Records.UpdateRecord(deps.Ctx, c.ID, fastfact.RecordUpdate{
		LabelsApproved: &approved,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fastfact.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Approved labels for record %q (%s)\n", rec.ID, rec.Title)
	return nil
}
