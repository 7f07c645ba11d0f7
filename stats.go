// path: stats.go
package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kausheya2006/RaiseUrVoice/analytics"
	"github.com/Kausheya2006/RaiseUrVoice/database"
	"github.com/Kausheya2006/RaiseUrVoice/store"
)

func runStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return err
	}
	defer disconnect(db, logger)

	reports, err := store.NewReportStore(db.Reports()).ListAll(ctx)
	if err != nil {
		return err
	}

	b := analytics.Monthly(reports, cfg.Location())
	if cfg.LegacyMonthLabels {
		b = b.WithLegacyLabels()
	}
	return writeStats(cmd.OutOrStdout(), b)
}

func writeStats(w io.Writer, b analytics.MonthlyBreakdown) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MONTH\tFILED\tSOLVED\tPENDING\t")
	for m := range b.Labels {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t\n", b.Labels[m], b.Filed[m], b.Solved[m], b.Pending[m])
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t\t\t\n", b.Total)
	return tw.Flush()
}
