package main

import (
	"fmt"
	"strings"

	"fastfact"
)

// Run executes the tag command.
func (c *TagCmd) Run(deps *Dependencies) error {
	var recs []*fastfact.Record

	if c.ID != "" {
		rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fastfact.ErrorMessage(err))
			return err
		}
		recs = []*fastfact.Record{rec}
	} else {
		approved := false
		found, err := deps.Records.FindRecords(deps.Ctx, fastfact.RecordFilter{
			LabelsApproved: &approved,
			SortBy:         fastfact.SortByNumber,
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fastfact.ErrorMessage(err))
			return err
		}
		recs = found
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records need tagging.")
		return nil
	}

	var tagged, failed int
	for _, rec := range recs {
		proposal, err := deps.Tagger.SuggestTags(deps.Ctx, rec)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", rec.ID, fastfact.ErrorMessage(err))
			failed++
			continue
		}

		if _, err := deps.Records.UpdateRecord(deps.Ctx, rec.ID, fastfact.RecordUpdate{
			AutoCategory: &proposal.Category,
			AutoTags:     &proposal.Tags,
		}); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", rec.ID, fastfact.ErrorMessage(err))
			failed++
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s: %s [%s]\n", rec.ID, proposal.Category, strings.Join(proposal.Tags, ", "))
		tagged++
	}

	fmt.Fprintf(deps.Stdout, "Tagged %d records", tagged)
	if failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}
