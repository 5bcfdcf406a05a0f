package config

// PauseMode controls whether the console waits for Enter after each screen.
type PauseMode string

const (
	PauseAuto   PauseMode = "auto"   // Pause only when stdin is a terminal
	PauseAlways PauseMode = "always" // Always pause
	PauseNever  PauseMode = "never"  // Never pause (scripted input)
)

// Config represents the complete runtime configuration.
type Config struct {
	Version int     `yaml:"version"`
	Banner  Banner  `yaml:"banner"`
	Console Console `yaml:"console"`
}

// Banner holds the text shown once at program start.
type Banner struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"` // Omitted from the banner when empty
}

// Console holds settings for the interactive menu.
type Console struct {
	Pause PauseMode `yaml:"pause"`
}

// Valid reports whether m is a known pause mode
func (m PauseMode) Valid() bool {
	switch m {
	case PauseAuto, PauseAlways, PauseNever:
		return true
	}
	return false
}

// ShouldPause resolves the mode against whether input comes from a terminal.
func (m PauseMode) ShouldPause(interactive bool) bool {
	switch m {
	case PauseAlways:
		return true
	case PauseNever:
		return false
	default:
		return interactive
	}
}
