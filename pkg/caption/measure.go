package caption

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// LineSpacing is the line height as a multiple of the largest font size on
// the line.
const LineSpacing = 1.2

// faceSize is the pixel height basicfont.Face7x13 is drawn at. Advances are
// scaled from it to each span's size.
const faceSize = 13

var face font.Face = basicfont.Face7x13

// Metrics is the wrapped size of a run of spans.
type Metrics struct {
	// Width is the widest line, without trailing spaces.
	Width  float64
	Height float64
	Lines  int
}

type lineState struct {
	width    float64
	trailing float64
	size     float64
}

// Measure wraps spans at word boundaries to fit width and returns the
// resulting size. A width of zero or less disables wrapping. Explicit
// newlines always break.
func Measure(spans []Span, width float64) Metrics {
	var m Metrics
	var line lineState
	open := false

	finish := func() {
		m.Lines++
		m.Height += line.size * LineSpacing
		m.Width = math.Max(m.Width, line.width-line.trailing)
		line = lineState{}
		open = false
	}

	for _, span := range spans {
		scale := span.Style.Size / faceSize
		for i, part := range strings.Split(span.Text, "\n") {
			if i > 0 {
				finish()
			}
			open = true
			line.size = math.Max(line.size, span.Style.Size)
			for _, word := range strings.SplitAfter(part, " ") {
				if word == "" {
					continue
				}
				adv := advance(word) * scale
				trimmed := strings.TrimRight(word, " ")
				trail := adv - advance(trimmed)*scale
				if width > 0 && line.width > 0 && line.width-line.trailing+adv-trail > width {
					finish()
					open = true
					line.size = span.Style.Size
				}
				line.width += adv
				line.trailing = trail
			}
		}
	}
	if open {
		finish()
	}
	return m
}

func advance(s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}
