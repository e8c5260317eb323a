package magick

import "testing"

func TestRecognizedOption(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"resize", true},
		{"auto-orient", true},
		{"auto_orient", true},
		{"AUTO ORIENT", true},
		{"gaussian-blur", true},
		{"unsharp", true},
		{"bogus", false},
		{"resizee", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecognizedOption(tt.name); got != tt.want {
				t.Errorf("RecognizedOption(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestRecognizedOptions_FormatExcluded(t *testing.T) {
	// format must never pass the whitelist; it is only reachable through
	// Image.SetFormat.
	if recognizedOptions.contains("format") {
		t.Error("format must not be in the recognized option set")
	}
}

func TestRecognizedOptions_Size(t *testing.T) {
	// The whitelist mirrors mogrify's option vocabulary; a drastic shrink
	// means someone truncated the table.
	if len(recognizedOptions) < 150 {
		t.Errorf("recognized option set has %d entries, expected the full mogrify vocabulary", len(recognizedOptions))
	}
}

func TestNormalizeOptionName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"resize", "resize"},
		{"auto_orient", "auto-orient"},
		{"Auto Orient", "auto-orient"},
		{"  STRIP  ", "strip"},
		{"interline_spacing", "interline-spacing"},
	}

	for _, tt := range tests {
		if got := normalizeOptionName(tt.in); got != tt.want {
			t.Errorf("normalizeOptionName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
