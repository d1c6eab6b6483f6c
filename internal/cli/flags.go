package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	DataFile string
	ThemeDir string

	// Card behavior flags
	FlipDelay time.Duration
	Policy    string
	Seed      int64
	NoCache   bool

	// Theme flags
	FrontTitle string
	BackTitle  string
	TitleColor string
	WordColor  string
	Background string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		FlipDelay:  5 * time.Second,
		Policy:     "random",
		FrontTitle: "French",
		BackTitle:  "English",
		TitleColor: "red",
		WordColor:  "green",
		Background: "#b4ddc7",
	}
}
