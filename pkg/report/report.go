// Package report renders human-readable summaries for the exporter CLI.
package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"collex/internal/models"
)

// Breakdown renders a per-collection item count table. Widths are computed
// from display width, not byte length, so CJK collection names stay aligned.
func Breakdown(lib *models.Library) string {
	headers := []string{"Collection", "Items"}

	rows := make([][]string, 0, len(lib.Collections)+1)
	rows = append(rows, headers)

	for _, c := range lib.Collections {
		rows = append(rows, []string{c.Name, strconv.Itoa(len(c.Items))})
	}

	rows = append(rows, []string{"Total", strconv.Itoa(lib.ItemCount())})

	widths := make([]int, len(headers))

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder

	for idx, row := range rows {
		sb.WriteString("|")

		for i, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			sb.WriteString(" |")
		}

		sb.WriteString("\n")

		// Separator under the header row.
		if idx == 0 {
			sb.WriteString("|")

			for i := range row {
				sb.WriteString(" ")
				sb.WriteString(strings.Repeat("-", widths[i]))
				sb.WriteString(" |")
			}

			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
