package text

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Trimmed  Input  ", "trimmed-input"},
		{"Already-slugged", "already-slugged"},
		{"Special!@# Characters%", "special-characters"},
		{"under_scores and-dashes", "under-scores-and-dashes"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100, "..."); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}

	got := Truncate("a very long sentence that should be cut", 10, "...")
	if got != "a very ..." {
		t.Errorf("expected %q, got %q", "a very ...", got)
	}
	if len([]rune(got)) != 10 {
		t.Errorf("expected truncated length 10, got %d", len([]rune(got)))
	}
}
