// path: analytics/monthly.go

// Package analytics derives chart-ready statistics from stored reports.
package analytics

import (
	"strings"
	"time"

	"github.com/Kausheya2006/RaiseUrVoice/models"
)

// MonthLabels names calendar months by their 0-11 index.
var MonthLabels = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// LegacyLabels is the December-first labelling the first web frontend shipped
// with. Counts stay indexed by calendar month either way.
var LegacyLabels = [12]string{
	"December", "January", "February", "March", "April", "May",
	"June", "July", "August", "September", "October", "November",
}

const resolvedKeyword = "resolved"

// MonthlyBreakdown holds per-month counters aligned to Labels.
// For every month Filed == Solved + Pending.
type MonthlyBreakdown struct {
	Labels  [12]string
	Filed   [12]int
	Solved  [12]int
	Pending [12]int
	Total   int
}

// IsResolved reports whether an issue text marks the report as solved.
// There is no status field; the keyword is the only signal.
func IsResolved(issue string) bool {
	return strings.Contains(strings.ToLower(issue), resolvedKeyword)
}

// Monthly buckets reports by the calendar month of their creation time in loc
// (UTC when loc is nil).
func Monthly(reports []models.IssueReport, loc *time.Location) MonthlyBreakdown {
	if loc == nil {
		loc = time.UTC
	}
	out := MonthlyBreakdown{Labels: MonthLabels}
	for _, r := range reports {
		m := int(r.CreatedAt().In(loc).Month()) - 1
		out.Filed[m]++
		out.Pending[m]++
		if IsResolved(r.Issue) {
			out.Solved[m]++
			out.Pending[m]--
		}
		out.Total++
	}
	return out
}

// WithLegacyLabels swaps in LegacyLabels without moving any counts.
func (b MonthlyBreakdown) WithLegacyLabels() MonthlyBreakdown {
	b.Labels = LegacyLabels
	return b
}
