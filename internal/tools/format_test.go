package tools

import (
	"strings"
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"over limit", "hello world", 5, "hello..."},
		{"multibyte runes counted as one", strings.Repeat("ü", 6), 5, strings.Repeat("ü", 5) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unparseable passes through", "soon", "soon"},
		{"past is expired", now.Add(-time.Hour).Format(time.RFC3339), "expired"},
		{"minutes", now.Add(30 * time.Minute).Format(time.RFC3339), "in 29m"},
		{"hours and minutes", now.Add(4 * time.Hour).Format(time.RFC3339), "in 3h 59m"},
		{"days", now.Add(50 * time.Hour).Format(time.RFC3339), "in 2 day(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatExpiry(tt.in); got != tt.want {
				t.Errorf("formatExpiry(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
