package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q): wrong icon set active", tt.style)
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestFormatDate(t *testing.T) {
	Init("nerd")
	if got := FormatDate("January 2"); got != " January 2" {
		t.Errorf("FormatDate() = %q", got)
	}

	Init("none")
	if got := FormatDate("January 2"); got != "January 2" {
		t.Errorf("FormatDate() with none style = %q", got)
	}
}

func TestFormatCaption(t *testing.T) {
	Init("unicode")
	defer Init("none")
	if got := FormatCaption("boats"); got != "🖼 boats" {
		t.Errorf("FormatCaption() = %q", got)
	}
}
