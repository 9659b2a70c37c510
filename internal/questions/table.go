package questions

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/gramquiz/internal/model"
)

const minSentenceWidth = 20

// RenderList prints questions as an aligned table. A positive width limits
// each line to that many columns by truncating the sentence column.
func RenderList(w io.Writer, qs []model.Question, width int) error {
	if len(qs) == 0 {
		_, err := fmt.Fprintln(w, "No questions match the filters.")
		return err
	}
	headers := []string{"ID", "Difficulty", "Category", "Sentence"}
	rows := make([][]string, 0, len(qs))
	for _, q := range qs {
		rows = append(rows, []string{
			strconv.Itoa(q.ID),
			q.Difficulty.Label(),
			q.Category.Label(),
			q.Sentence,
		})
	}
	if width > 0 {
		truncateLastColumn(headers, rows, width)
	}
	lines := formatTable(headers, rows, map[int]bool{0: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d question(s)\n", len(qs))
	return err
}

func truncateLastColumn(headers []string, rows [][]string, width int) {
	last := len(headers) - 1
	used := 0
	for i := 0; i < last; i++ {
		colWidth := displayWidth(headers[i])
		for _, row := range rows {
			if w := displayWidth(row[i]); w > colWidth {
				colWidth = w
			}
		}
		used += colWidth + 1
	}
	avail := width - used
	if avail < minSentenceWidth {
		avail = minSentenceWidth
	}
	for _, row := range rows {
		row[last] = runewidth.Truncate(row[last], avail, "…")
	}
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		// Last column is never padded on the right.
		if i == len(widths)-1 && !rightAlignCols[i] {
			b.WriteString(cell)
			continue
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return b.String()
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
