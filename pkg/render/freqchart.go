package render

import (
	"bytes"
	"fmt"
	"sort"
)

// Chart geometry. The viewport grows horizontally with the symbol count.
const (
	chartBarWidth   = 36.0
	chartBarGap     = 14.0
	chartPlotHeight = 280.0
	chartMarginX    = 50.0
	chartMarginTop  = 50.0
	chartMarginBot  = 60.0
)

// FrequencyChartSVG writes a bar chart of symbol frequencies as SVG bytes.
// Bars are sorted by descending count; symbols tied on count keep their
// first-appearance order. Whitespace symbols are displayed via
// [DisplaySymbol]. Convert the result with [ToPNG] or [ToPDF] for raster
// output.
func FrequencyChartSVG(freqs map[rune]int, order []rune) []byte {
	type bar struct {
		symbol rune
		count  int
	}
	bars := make([]bar, 0, len(order))
	for _, ch := range order {
		bars = append(bars, bar{symbol: ch, count: freqs[ch]})
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].count > bars[j].count })

	maxCount := 1
	for _, b := range bars {
		if b.count > maxCount {
			maxCount = b.count
		}
	}

	width := chartMarginX*2 + float64(len(bars))*(chartBarWidth+chartBarGap)
	height := chartMarginTop + chartPlotHeight + chartMarginBot

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="white"/>`+"\n", width, height)
	fmt.Fprintf(&buf, `  <text x="%.1f" y="30" text-anchor="middle" font-size="18" font-family="sans-serif">Symbol frequencies</text>`+"\n",
		width/2)

	baseline := chartMarginTop + chartPlotHeight
	for i, b := range bars {
		x := chartMarginX + float64(i)*(chartBarWidth+chartBarGap)
		h := chartPlotHeight * float64(b.count) / float64(maxCount)
		y := baseline - h

		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="teal"/>`+"\n",
			x, y, chartBarWidth, h)
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="12" font-family="sans-serif">%d</text>`+"\n",
			x+chartBarWidth/2, y-6, b.count)
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="13" font-family="monospace">%s</text>`+"\n",
			x+chartBarWidth/2, baseline+20, escapeXML(DisplaySymbol(b.symbol)))
	}

	fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black"/>`+"\n",
		chartMarginX-10, baseline, width-chartMarginX+10, baseline)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func escapeXML(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		case '&':
			out.WriteString("&amp;")
		case '"':
			out.WriteString("&quot;")
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
