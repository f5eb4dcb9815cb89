package history

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable formats entries as a rounded terminal table, newest first.
func RenderTable(entries []Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "When", "Input", "Output", "Action", "Status", "Duration"})

	for _, e := range entries {
		when := ""
		if !e.CreatedAt.IsZero() {
			when = e.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		status := e.Status
		if e.Status == StatusFailed && e.Error != "" {
			status = e.Status + ": " + e.Error
		}
		tw.AppendRow(table.Row{
			strconv.FormatInt(e.ID, 10),
			when,
			filepath.Base(e.InputPath),
			filepath.Base(e.OutputPath),
			e.Action,
			status,
			e.Duration.Round(time.Second).String(),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 7, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
