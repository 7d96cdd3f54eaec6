package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"RBCMap-App/internal/domain/helper"
	"RBCMap-App/internal/domain/model"
)

func writeRanked(out io.Writer, category model.Category, ranked []helper.RankedPOI) error {
	if len(ranked) == 0 {
		_, err := fmt.Fprintf(out, "No %s available\n", category)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AP\tNAME\tCELL")
	for _, r := range ranked {
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.Distance, r.POI.DisplayName(), r.POI.Coordinate)
	}
	return w.Flush()
}
