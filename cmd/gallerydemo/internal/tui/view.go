package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/gallery/pkg/caption"
	"github.com/go-drift/gallery/pkg/gallery"
)

var (
	buttonStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1)
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeDotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	inactiveDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.topBar())
	b.WriteString("\n\n")
	b.WriteString(m.body())
	b.WriteString("\n")
	if m.footer.visible() {
		b.WriteString(renderSpans(m.footer.spans))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.dots.View()))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	return b.String()
}

func (m *Model) topBar() string {
	var left string
	if m.closeBtn.visible() {
		left = buttonStyle.Render(m.closeBtn.label)
	}
	var actions []string
	for _, btn := range []*button{m.detailBtn, m.shareBtn} {
		if btn.visible() {
			actions = append(actions, buttonStyle.Render(btn.label))
		}
	}
	right := strings.Join(actions, " ")

	center := ""
	if m.header.visible() && len(m.items) > 0 {
		center = renderSpans([]caption.Span{caption.CounterSpan(m.session.CurrentIndex(), len(m.items))})
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	return left + lipgloss.PlaceHorizontal(max(gap, 0), lipgloss.Center, center) + right
}

func (m *Model) body() string {
	st := m.session.TransitionState()
	var lines []string
	switch st.State {
	case gallery.StatePresenting, gallery.StateClosing:
		lines = append(lines, fmt.Sprintf("%s %3.0f%%", st.State, m.container.frame.Progress*100))
	case gallery.StateInteractiveDismiss:
		lines = append(lines, fmt.Sprintf("dragging %s", strings.Repeat("▼", m.swipe)))
	}
	if page := m.pager.page; page != nil && !page.Hidden() && len(m.items) > 0 {
		item := m.items[page.Index]
		lines = append(lines, fmt.Sprintf("Item %d · %s", page.Index+1, item.Year))
		if page.FadeIn {
			lines = append(lines, "(first view)")
		}
	}
	if m.container.angle != 0 {
		lines = append(lines, fmt.Sprintf("rotated %.0f°", m.container.angle*180/math.Pi))
	}
	card := cardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card)
}

// renderSpans styles each span, keeping line breaks outside the styled runs.
func renderSpans(spans []caption.Span) string {
	var b strings.Builder
	for _, span := range spans {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(span.Style.Color.Hex())).
			Bold(span.Style.Bold)
		for i, part := range strings.Split(span.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if part != "" {
				b.WriteString(style.Render(part))
			}
		}
	}
	return b.String()
}
