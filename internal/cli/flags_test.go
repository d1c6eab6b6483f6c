package cli

import (
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	if flags.FlipDelay != 5*time.Second {
		t.Errorf("Expected flip delay 5s, got %v", flags.FlipDelay)
	}

	if flags.Policy != "random" {
		t.Errorf("Expected policy 'random', got '%s'", flags.Policy)
	}

	if flags.FrontTitle != "French" || flags.BackTitle != "English" {
		t.Errorf("Expected French/English face titles, got '%s'/'%s'", flags.FrontTitle, flags.BackTitle)
	}

	if flags.TitleColor != "red" || flags.WordColor != "green" {
		t.Errorf("Expected red/green colors, got '%s'/'%s'", flags.TitleColor, flags.WordColor)
	}

	if flags.Background != "#b4ddc7" {
		t.Errorf("Expected background '#b4ddc7', got '%s'", flags.Background)
	}

	if flags.DataFile != "" || flags.ThemeDir != "" {
		t.Error("Expected empty data and theme paths by default")
	}
}
