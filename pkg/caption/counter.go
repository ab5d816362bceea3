package caption

import "fmt"

// Counter formats a zero-based index as "N of M".
func Counter(index, count int) string {
	return fmt.Sprintf("%d of %d", index+1, count)
}

// CounterSpan returns the counter as a single styled span.
func CounterSpan(index, count int) Span {
	return Span{Text: Counter(index, count), Style: CounterStyle}
}
