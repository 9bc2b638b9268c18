package controller

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/doxycov/internal/model"
)

// ColorUI renders the same report layout as SimpleUI with the percentage
// cells styled by how they compare to the threshold.
type ColorUI struct {
	*SimpleUI

	passStyle lipgloss.Style
	failStyle lipgloss.Style
}

// NewColorUI creates a ColorUI for terminal output.
func NewColorUI(cmd *cobra.Command) *ColorUI {
	return &ColorUI{
		SimpleUI:  NewSimpleUI(cmd),
		passStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// DisplayReport prints the report with colorized percentages.
func (c *ColorUI) DisplayReport(summary m.Summary) error {
	for _, file := range summary.Files {
		if file.Total == 0 {
			continue
		}

		c.printf("%s - %s - (%d of %d)\n",
			c.stylePercent(file.Percent, summary.Threshold).Render(percentCell(file.Percent)),
			file.Path, file.Documented, file.Total)

		for _, def := range file.Undocumented {
			c.printf(" L: %4d - %s\n", def.Line, def.ID)
		}
	}

	line := globalLine(summary)
	c.printf("\n%s\n", c.stylePercent(float64(summary.Percent), summary.Threshold).Render(line))

	return nil
}

func (c *ColorUI) stylePercent(percent float64, threshold int) lipgloss.Style {
	if percent >= float64(threshold) {
		return c.passStyle
	}

	return c.failStyle
}
