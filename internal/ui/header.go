package ui

import (
	"strconv"
	"strings"
)

// MenuItem is one numbered entry of the main menu
type MenuItem struct {
	Choice int
	Label  string
}

// MainMenu lists the entries shown on every menu iteration.
var MainMenu = []MenuItem{
	{1, "Register Appliance"},
	{2, "View All Appliances"},
	{3, "Search Appliance by Name"},
	{4, "Exit"},
}

// RenderBanner returns the program banner: the title and optional subtitle
// centered between '=' rules, followed by a blank line.
func (s *Styles) RenderBanner(title, subtitle string) string {
	var b strings.Builder

	rule := s.Rule.Render(strings.Repeat("=", BannerWidth))

	b.WriteString(rule + "\n")
	b.WriteString(s.Banner.Render(title) + "\n")
	b.WriteString(rule + "\n")
	if subtitle != "" {
		b.WriteString(s.Banner.Render(subtitle) + "\n")
		b.WriteString(rule + "\n")
	}
	b.WriteString("\n")

	return b.String()
}

// RenderMenu returns the main menu block, starting with a blank line.
func (s *Styles) RenderMenu() string {
	var b strings.Builder

	rule := s.Rule.Render(strings.Repeat("-", SectionWidth))

	b.WriteString("\n" + rule + "\n")
	b.WriteString(s.Heading.Render("MAIN MENU") + "\n")
	b.WriteString(rule + "\n")
	for _, item := range MainMenu {
		b.WriteString(strconv.Itoa(item.Choice) + ". " + item.Label + "\n")
	}
	b.WriteString(rule + "\n")

	return b.String()
}

// RenderSection returns a section heading framed by '=' rules, starting with
// a blank line and followed by one.
func (s *Styles) RenderSection(title string) string {
	rule := s.Rule.Render(strings.Repeat("=", SectionWidth))
	return "\n" + rule + "\n" +
		s.Heading.Render(strings.ToUpper(title)) + "\n" +
		rule + "\n\n"
}

// RenderRule returns a plain rule of n copies of char
func (s *Styles) RenderRule(char string, n int) string {
	return s.Rule.Render(strings.Repeat(char, n))
}
