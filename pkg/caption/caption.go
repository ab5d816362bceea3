// Package caption composes the text a gallery host shows in its footer and
// counter views.
//
// Composition is pure: [Footer.Compose] returns styled spans and
// [Measure] wraps them to a width with fixed font metrics, which is enough
// for a host to answer SizeThatFits for a pinned footer.
package caption

import "github.com/go-drift/gallery/pkg/graphics"

// TextStyle is the styling of one span.
type TextStyle struct {
	Size  float64
	Bold  bool
	Color graphics.Color
}

// Stock styles.
var (
	// YearStyle is the footer's year line.
	YearStyle = TextStyle{Size: 20, Bold: true, Color: graphics.ColorWhite}
	// BodyStyle is the footer's summary text.
	BodyStyle = TextStyle{Size: 15, Color: graphics.ColorWhite}
	// MutedStyle is the "See More" marker and the credit line.
	MutedStyle = TextStyle{Size: 15, Color: graphics.ColorGray}
	// CounterStyle is the "N of M" counter.
	CounterStyle = TextStyle{Size: 17, Bold: true, Color: graphics.ColorWhite}
)

// Span is a run of text with a single style.
type Span struct {
	Text  string
	Style TextStyle
}

// PlainText concatenates the text of spans.
func PlainText(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
