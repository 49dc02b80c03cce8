package main

import (
	"fmt"
	"strings"

	"fastfact"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := fastfact.RecordFilter{SortBy: fastfact.SortByNumber}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}
	if c.Status != "" {
		filter.Status = &c.Status
	}
	if c.Unapproved {
		approved := false
		filter.LabelsApproved = &approved
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fastfact.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'fastfact ingest' to load snapshots.")
		return nil
	}

	for _, rec := range recs {
		marker := " "
		if rec.LabelsApproved {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %-10s #%-5s %s  [%s]\n",
			marker, rec.ID, rec.Number, rec.Title, strings.Join(rec.Tags, ", "))
	}

	return nil
}
