package domain_test

import (
	"strings"
	"testing"

	"github.com/rensmac/portfolio-api/internal/domain"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Go 1.25: What's New?", "go-125-whats-new"},
		{"multiple   spaces --- and hyphens", "multiple-spaces-and-hyphens"},
		{"ALL CAPS TITLE", "all-caps-title"},
		{"---", ""},
		{"émojis 🚀 stripped", "mojis-stripped"},
	}

	for _, tt := range tests {
		if got := domain.Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSlugify_CapsLength(t *testing.T) {
	long := strings.Repeat("verylongword ", 30)
	got := domain.Slugify(long)

	if len(got) > 100 {
		t.Errorf("slug length %d exceeds 100", len(got))
	}
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Errorf("slug %q has dangling hyphen", got)
	}
}
