package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/san-kum/lifeterm/internal/life"
	"github.com/san-kum/lifeterm/internal/term"
)

// GridToSVG draws one square of side scale per Alive cell over a background
// rect. Palette entries may be 0-255 indexes or #rrggbb.
func GridToSVG(g *life.Grid, scale int, palette term.Palette) string {
	if g == nil || scale <= 0 {
		return ""
	}

	width := g.Width() * scale
	height := g.Height() * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, HexColor(palette.Background), HexColor(palette.Alive)))

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.Cell(row, col) != life.Alive {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d"/>
`, col*scale, row*scale, scale, scale))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PopulationToSVG draws the population series as a polyline.
func PopulationToSVG(pops []int, width, height int, strokeColor string) string {
	if len(pops) < 2 {
		return ""
	}

	lo, hi := pops[0], pops[0]
	for _, p := range pops {
		lo = min(lo, p)
		hi = max(hi, p)
	}
	span := float64(hi - lo)
	if span == 0 {
		span = 1
	}
	pad := span * 0.1
	minY := float64(lo) - pad
	rangeY := span + 2*pad
	stepX := float64(width) / float64(len(pops)-1)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, HexColor(strokeColor)))

	for i, p := range pops {
		x := float64(i) * stepX
		y := float64(height) - (float64(p)-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// HexColor converts a 0-255 terminal color index to #rrggbb. Anything else
// is returned unchanged.
func HexColor(c string) string {
	n, err := strconv.Atoi(c)
	if err != nil || n < 0 || n > 255 {
		return c
	}
	var col termenv.Color = termenv.ANSI256Color(n)
	if n < 16 {
		col = termenv.ANSIColor(n)
	}
	return termenv.ConvertToRGB(col).Hex()
}
