package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/doxycov/internal/model"
)

// SimpleUI implements UI using plain text on the cobra command's streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints one line per file with at least one definition, the
// line/identity of each undocumented definition, and the global line.
func (s *SimpleUI) DisplayReport(summary m.Summary) error {
	for _, file := range summary.Files {
		if file.Total == 0 {
			continue
		}

		s.printf("%s - %s - (%d of %d)\n", percentCell(file.Percent), file.Path, file.Documented, file.Total)

		for _, def := range file.Undocumented {
			s.printf(" L: %4d - %s\n", def.Line, def.ID)
		}
	}

	s.printf("\n%s\n", globalLine(summary))

	return nil
}

// DisplayFileTable prints per-file counts as a table with a totals footer.
func (s *SimpleUI) DisplayFileTable(summary m.Summary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Documented", "Total", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, file := range summary.Files {
		table.Append([]string{
			string(file.Path),
			fmt.Sprintf("%d", file.Documented),
			fmt.Sprintf("%d", file.Total),
			fmt.Sprintf("%.0f%%", file.Percent),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(summary.Files)),
		fmt.Sprintf("%d", summary.TotalDocumented),
		fmt.Sprintf("%d", summary.TotalDocumented+summary.TotalUndocumented),
		fmt.Sprintf("%d%%", summary.Percent),
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplaySkippedDefinition reports a stale source reference on stderr.
func (s *SimpleUI) DisplaySkippedDefinition(ref string) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "skip %s\n", ref)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// percentCell renders a per-file percentage right-aligned to three digits.
func percentCell(percent float64) string {
	return fmt.Sprintf("%3.0f%%", percent)
}

// globalLine renders the final total line with truncated percentage.
func globalLine(summary m.Summary) string {
	return fmt.Sprintf("%d%% API documentation coverage (%d documented, %d undocumented)",
		summary.Percent, summary.TotalDocumented, summary.TotalUndocumented)
}
