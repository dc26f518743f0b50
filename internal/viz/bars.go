package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/expsearch/internal/search"
)

const barGlyph = "█"

// RenderBars draws the snapshot's sequence as vertical bars, height rows tall,
// with the value above each index label.
func RenderBars(theme Theme, s search.Snapshot[int], height int) string {
	n := s.Len()
	if n == 0 {
		return lipgloss.NewStyle().Foreground(theme.Muted).Render("(empty array)")
	}
	if height < 1 {
		height = 1
	}

	roles := Classify(s)
	values := s.Values()

	colWidth := 1
	maxVal := 0
	for i, v := range values {
		colWidth = max(colWidth, len(strconv.Itoa(v)), len(indexLabel(i)))
		maxVal = max(maxVal, v)
	}

	heights := make([]int, n)
	for i, v := range values {
		heights[i] = barHeight(v, maxVal, height)
	}

	var sb strings.Builder
	for row := height; row >= 1; row-- {
		for i := range values {
			cell := strings.Repeat(" ", colWidth)
			if heights[i] >= row {
				cell = lipgloss.NewStyle().Foreground(theme.Color(roles[i])).Render(strings.Repeat(barGlyph, colWidth))
			}
			sb.WriteString(cell)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	for _, v := range values {
		sb.WriteString(fmt.Sprintf("%*d ", colWidth, v))
	}
	sb.WriteByte('\n')

	muted := lipgloss.NewStyle().Foreground(theme.Muted)
	for i := range values {
		sb.WriteString(muted.Render(fmt.Sprintf("%*s", colWidth, indexLabel(i))))
		sb.WriteByte(' ')
	}
	return sb.String()
}

func indexLabel(i int) string { return "i" + strconv.Itoa(i) }

// barHeight scales v against maxVal. Positive values always get at least
// one row so small elements stay visible next to large ones.
func barHeight(v, maxVal, height int) int {
	if v <= 0 || maxVal <= 0 {
		return 0
	}
	h := (v*height + maxVal - 1) / maxVal
	return min(max(h, 1), height)
}

// RenderFrame renders one snapshot of a trace: title, bars, status and action.
func RenderFrame(theme Theme, tr *search.Trace[int], step, height int) string {
	s := tr.At(step)

	var sb strings.Builder
	title := titleStyle.Foreground(theme.Text).Render(fmt.Sprintf("Searching for value: %d", tr.Target()))
	sb.WriteString(title + "\n")
	sb.WriteString(panelStyle.Render(RenderBars(theme, s, height)) + "\n")
	sb.WriteString(StatusLine(theme, step+1, s.Status()) + "\n")
	sb.WriteString(captionStyle.Foreground(theme.Muted).Render(s.Action) + "\n")
	return sb.String()
}

// Summary describes the final outcome of a search.
func Summary(res search.Result[int]) string {
	var sb strings.Builder
	if res.Found() {
		sb.WriteString(fmt.Sprintf("Value %d FOUND at index %d.\n", res.Trace.Target(), res.Index))
	} else {
		sb.WriteString(fmt.Sprintf("Value %d NOT FOUND in the array.\n", res.Trace.Target()))
	}
	sb.WriteString(fmt.Sprintf("Exponential search finished in %d visualization steps.", res.Trace.Len()-1))
	return sb.String()
}
