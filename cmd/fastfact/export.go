package main

import (
	"fmt"

	"fastfact"
	"fastfact/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	writer := deps.Writer
	if writer == nil {
		writer = fs.NewWriter(c.Out)
	}

	filter := fastfact.RecordFilter{SortBy: fastfact.SortByNumber}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fastfact.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records to export.")
		return nil
	}

	var exported, failed int
	for _, rec := range recs {
		if err := writer.WriteRecord(deps.Ctx, rec); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", rec.ID, fastfact.ErrorMessage(err))
			failed++
			continue
		}
		exported++
	}

	fmt.Fprintf(deps.Stdout, "Exported %d records to %s", exported, c.Out)
	if failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}
