package report

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"collex/internal/models"
)

func TestBreakdown(t *testing.T) {
	lib := &models.Library{
		Collections: []models.Collection{
			{
				Name: "Reading List",
				Items: []models.Item{
					{Title: "a", URL: "https://a.example"},
					{Title: "b", URL: "https://b.example"},
				},
			},
			{Name: "Empty"},
		},
	}

	want := strings.TrimSpace(`
| Collection   | Items |
| ------------ | ----- |
| Reading List | 2     |
| Empty        | 0     |
| Total        | 2     |
`)

	if got := Breakdown(lib); got != want {
		t.Errorf("Breakdown() = \n%s\nwant \n%s", got, want)
	}
}

func TestBreakdown_CJKAlignment(t *testing.T) {
	lib := &models.Library{
		Collections: []models.Collection{
			{Name: "消防處", Items: []models.Item{{Title: "a", URL: "https://a.example"}}},
			{Name: "Short"},
		},
	}

	got := Breakdown(lib)

	// Every row must render to the same display width.
	lines := strings.Split(got, "\n")

	width := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("line %d width = %d, want %d: %q", i, w, width, line)
		}
	}
}

func TestBreakdown_EmptyLibrary(t *testing.T) {
	got := Breakdown(&models.Library{})

	if !strings.Contains(got, "| Total") {
		t.Errorf("Breakdown() should still render a total row:\n%s", got)
	}
}
