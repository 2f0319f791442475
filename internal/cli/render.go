package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"
)

// renderTable prints a titled table to the runner's output.
func (r *Runner) renderTable(title string, headers []string, rows [][]string) {
	fmt.Fprintln(r.out, title)

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	separators := make([]string, len(headers))
	for i, h := range headers {
		separators[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(separators, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
