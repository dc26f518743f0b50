package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/expsearch/internal/search"
	"github.com/san-kum/expsearch/internal/viz"
)

// SnapshotToSVG draws a snapshot as a bar chart colored with the theme's
// role colors.
func SnapshotToSVG(s search.Snapshot[int], theme viz.Theme, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	n := s.Len()
	if n == 0 {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" text-anchor="middle">empty array</text>
</svg>`, width/2, height/2, theme.Muted))
		return sb.String()
	}

	roles := viz.Classify(s)
	values := s.Values()

	maxVal := 0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}

	const labelSpace = 20.0
	plotHeight := float64(height) - 2*labelSpace
	slot := float64(width) / float64(n)
	barWidth := slot * 0.8

	for i, v := range values {
		h := 0.0
		if v > 0 && maxVal > 0 {
			h = plotHeight * float64(v) / float64(maxVal)
		}
		x := float64(i)*slot + (slot-barWidth)/2
		y := labelSpace + plotHeight - h
		cx := x + barWidth/2

		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, barWidth, h, theme.Color(roles[i])))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="10" text-anchor="middle">%d</text>
`, cx, y-4, theme.Text, v))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" fill="%s" font-size="10" text-anchor="middle">I: %d</text>
`, cx, height-6, theme.Muted, i))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
