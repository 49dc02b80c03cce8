package main

import (
	"fmt"
	"strings"

	"fastfact"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fastfact.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:       %s\n", rec.ID)
	fmt.Fprintf(deps.Stdout, "Number:   %s\n", rec.Number)
	fmt.Fprintf(deps.Stdout, "Title:    %s\n", rec.Title)
	fmt.Fprintf(deps.Stdout, "URL:      %s\n", rec.URL)
	fmt.Fprintf(deps.Stdout, "Tags:     %s\n", strings.Join(rec.Tags, ", "))
	if rec.AutoCategory != "" || len(rec.AutoTags) > 0 {
		fmt.Fprintf(deps.Stdout, "Proposed: %s [%s]\n", rec.AutoCategory, strings.Join(rec.AutoTags, ", "))
	}
	fmt.Fprintf(deps.Stdout, "Status:   %s\n", rec.Status)
	fmt.Fprintf(deps.Stdout, "Approved: %t\n", rec.LabelsApproved)
	fmt.Fprintf(deps.Stdout, "Edited:   %s\n", rec.LastEdited.Format("2006-01-02"))
	fmt.Fprintf(deps.Stdout, "\n%s\n", rec.Summary)

	return nil
}
