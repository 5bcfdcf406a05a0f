package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/muurk/loadmon/internal/appliance"
)

// Column headings of the appliance table
const (
	NameHeading  = "Appliance Name"
	PowerHeading = "Power (W)"
	HoursHeading = "Daily Hours"
)

// TableHeader returns the unstyled heading row. The power and hours headings
// are right-aligned in 12 and 14 columns after the name column.
func TableHeader() string {
	return fmt.Sprintf("%s%12s%14s",
		runewidth.FillRight(NameHeading, appliance.NameWidth),
		PowerHeading,
		HoursHeading)
}

// TableRow returns the unstyled row for the appliance at 1-based position n
func TableRow(n int, a appliance.Appliance) string {
	return fmt.Sprintf("%d. %s", n, a.Display())
}

// RenderTable returns the heading row, a rule and one numbered row per
// appliance, in the order given. Every line ends with a newline.
func (s *Styles) RenderTable(items []appliance.Appliance) string {
	var b strings.Builder

	b.WriteString(s.Heading.Render(TableHeader()) + "\n")
	b.WriteString(s.RenderRule("-", TableWidth) + "\n")
	for i, a := range items {
		b.WriteString(TableRow(i+1, a) + "\n")
	}

	return b.String()
}
