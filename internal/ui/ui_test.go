package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muurk/loadmon/internal/appliance"
)

// plainStyles renders into a buffer, which is never a terminal, so output
// carries no escape sequences.
func plainStyles() *Styles {
	return NewStyles(&bytes.Buffer{})
}

func TestRenderBanner(t *testing.T) {
	s := plainStyles()
	banner := s.RenderBanner("ELECTRICAL LOAD MONITORING SIMULATOR", "Week 1 - Basic Setup")

	lines := strings.Split(strings.TrimSuffix(banner, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("banner has %d lines, want 6:\n%s", len(lines), banner)
	}
	rule := strings.Repeat("=", BannerWidth)
	for _, i := range []int{0, 2, 4} {
		if lines[i] != rule {
			t.Errorf("line %d = %q, want rule", i, lines[i])
		}
	}
	if strings.TrimSpace(lines[1]) != "ELECTRICAL LOAD MONITORING SIMULATOR" {
		t.Errorf("title line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[1], "  ") {
		t.Errorf("title should be centered, got %q", lines[1])
	}
	if strings.TrimSpace(lines[3]) != "Week 1 - Basic Setup" {
		t.Errorf("subtitle line = %q", lines[3])
	}
	if lines[5] != "" {
		t.Errorf("banner should end with a blank line")
	}
}

func TestRenderBanner_NoSubtitle(t *testing.T) {
	banner := plainStyles().RenderBanner("TITLE", "")
	if strings.Count(banner, strings.Repeat("=", BannerWidth)) != 2 {
		t.Errorf("expected two rules without subtitle:\n%s", banner)
	}
}

func TestRenderMenu(t *testing.T) {
	menu := plainStyles().RenderMenu()

	expected := []string{
		"MAIN MENU",
		"1. Register Appliance",
		"2. View All Appliances",
		"3. Search Appliance by Name",
		"4. Exit",
		strings.Repeat("-", SectionWidth),
	}
	for _, part := range expected {
		if !strings.Contains(menu, part) {
			t.Errorf("RenderMenu() missing %q", part)
		}
	}
	if !strings.HasPrefix(menu, "\n") {
		t.Error("menu should start with a blank line")
	}
}

func TestRenderSection(t *testing.T) {
	got := plainStyles().RenderSection("Search Appliance")
	rule := strings.Repeat("=", SectionWidth)
	want := "\n" + rule + "\nSEARCH APPLIANCE\n" + rule + "\n\n"
	if got != want {
		t.Errorf("RenderSection() = %q, want %q", got, want)
	}
}

func TestTableHeader(t *testing.T) {
	want := "Appliance Name" + strings.Repeat(" ", 6) +
		strings.Repeat(" ", 3) + "Power (W)" +
		strings.Repeat(" ", 3) + "Daily Hours"
	if got := TableHeader(); got != want {
		t.Errorf("TableHeader() = %q, want %q", got, want)
	}
}

func TestRenderTable(t *testing.T) {
	fan, _ := appliance.New("Fan", 75, 8)
	fridge, _ := appliance.New("Refrigerator", 150, 24)

	table := plainStyles().RenderTable([]appliance.Appliance{fan, fridge})
	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("table has %d lines, want 4:\n%s", len(lines), table)
	}
	if lines[0] != TableHeader() {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", TableWidth) {
		t.Errorf("rule = %q", lines[1])
	}
	if lines[2] != "1. "+fan.Display() {
		t.Errorf("row 1 = %q", lines[2])
	}
	if lines[3] != "2. "+fridge.Display() {
		t.Errorf("row 2 = %q", lines[3])
	}
}
