package pipeline

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sabaoth87/MakeMP4s/internal/display"
)

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total            int
	Current          int
	Converted        int
	Remuxed          int
	Skipped          int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
	DryRun           bool
}

// Succeeded returns the number of files that produced an output.
func (s *RunStats) Succeeded() int {
	return s.Converted + s.Remuxed
}

// SpaceSaved returns the aggregate byte difference between inputs and
// outputs. Positive means outputs are smaller; negative means they grew.
func (s *RunStats) SpaceSaved() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}

// SummaryTable formats the batch totals as a rounded terminal table.
func (s *RunStats) SummaryTable() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	// StyleRounded uppercases footer rows; keep the label and byte
	// units as written.
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"Result", "Count"})
	tw.AppendRows([]table.Row{
		{"Converted", strconv.Itoa(s.Converted)},
		{"Remuxed", strconv.Itoa(s.Remuxed)},
		{"Skipped", strconv.Itoa(s.Skipped)},
		{"Failed", strconv.Itoa(s.Failed)},
	})

	if !s.DryRun {
		tw.AppendFooter(table.Row{"Space saved", display.FormatBytesWithSign(s.SpaceSaved())})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
