package caption

import "strings"

// SeeMore follows a truncated summary.
const SeeMore = "... See More"

const (
	// compactLimit is the longest summary shown in full in compact mode.
	compactLimit = 29
	// compactLength is how many characters of a longer summary are kept.
	compactLength = 30
)

// Footer is the caption of one item.
type Footer struct {
	Year    string
	Summary string
	// Credit is an optional attribution line shown last.
	Credit string
}

// Compose lays the footer out as spans. Compact is the collapsed footer a
// gallery shows while rotating or in its fixed-height state; it truncates
// long summaries after compactLength characters and appends SeeMore.
// Truncation counts characters, not words.
func (f Footer) Compose(compact bool) []Span {
	var spans []Span
	plain := func(text string) {
		spans = append(spans, Span{Text: text, Style: BodyStyle})
	}

	switch {
	case !compact:
		plain("\n")
		spans = append(spans, Span{Text: f.Year, Style: YearStyle})
		plain("\n")
		spans = append(spans, Span{Text: f.Summary, Style: BodyStyle})
	case f.Summary == "":
		plain("\n\n\n")
		spans = append(spans, Span{Text: f.Year, Style: YearStyle})
	default:
		plain("\n")
		spans = append(spans, Span{Text: f.Year, Style: YearStyle})
		plain("\n")
		spans = append(spans, compactSummary(f.Summary)...)
	}

	if f.Credit != "" {
		plain("\n")
		spans = append(spans, Span{Text: f.Credit, Style: MutedStyle})
	}
	return spans
}

func compactSummary(summary string) []Span {
	runes := []rune(summary)
	if len(runes) <= compactLimit {
		return []Span{{Text: summary, Style: BodyStyle}}
	}

	short := string(runes[:compactLength])
	lines := strings.Split(short, "\n")
	if len(lines) > 1 {
		// Only the first two lines survive; later ones are dropped.
		short = lines[0] + lines[1]
	}
	spans := []Span{
		{Text: short, Style: BodyStyle},
		{Text: SeeMore, Style: MutedStyle},
	}
	if len(lines) == 1 {
		spans = append(spans, Span{Text: "\n", Style: MutedStyle})
	}
	return spans
}
