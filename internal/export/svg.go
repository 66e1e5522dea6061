package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/trace"
)

// LinesToSVG renders traced field lines and sources as an SVG, projected
// onto the XY plane. Line color follows the mode; sources are filled
// circles, red for positive values and blue for negative.
func LinesToSVG(lines []trace.Line, sources []field.Source, mode field.Mode, width, height int) string {
	minX, maxX, minY, maxY := bounds(lines, sources)
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	toPx := func(x, y float64) (float64, float64) {
		return (x - minX) / rangeX * float64(width),
			float64(height) - (y-minY)/rangeY*float64(height)
	}

	stroke := "#00ccff"
	if mode == field.Gravity {
		stroke = "#ffaa00"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, ln := range lines {
		if len(ln.Points) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" opacity="0.7" d="M`, stroke))
		for i, p := range ln.Points {
			x, y := toPx(p.X, p.Y)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for _, src := range sources {
		x, y := toPx(src.Pos.X, src.Pos.Y)
		fill := "#ff4444"
		if src.Value < 0 {
			fill = "#4488ff"
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="5" fill="%s"/>
`, x, y, fill))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(lines []trace.Line, sources []field.Source) (minX, maxX, minY, maxY float64) {
	first := true
	take := func(x, y float64) {
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for _, ln := range lines {
		for _, p := range ln.Points {
			take(p.X, p.Y)
		}
	}
	for _, s := range sources {
		take(s.Pos.X, s.Pos.Y)
	}
	if first {
		return -1, 1, -1, 1
	}
	return
}
