package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Platform", Platform},
		{"Lexer", Lexer},
		{"Parser", Parser},
		{"REPL", REPL},
		{"TUI", TUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		component string
		expected  string
	}{
		{"lexer", Lexer},
		{"parser", Parser},
		{"repl", REPL},
		{"tui", TUI},
		{"unknown", Platform},
		{"", Platform},
	}

	for _, tt := range tests {
		if got := ComponentVersion(tt.component); got != tt.expected {
			t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, got, tt.expected)
		}
	}

	for _, name := range Components {
		if ComponentVersion(name) == "" {
			t.Errorf("component %q has no version", name)
		}
	}
}
