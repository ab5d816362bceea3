// Package tui hosts a gallery session in a terminal. It implements the host
// interfaces with cell-sized views and drives the session's scheduler from
// bubbletea frame ticks.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/gallery/pkg/animation"
	"github.com/go-drift/gallery/pkg/caption"
	"github.com/go-drift/gallery/pkg/config"
	"github.com/go-drift/gallery/pkg/errors"
	"github.com/go-drift/gallery/pkg/gallery"
	"github.com/go-drift/gallery/pkg/graphics"
)

const (
	frameInterval = time.Second / 60
	// swipeSteps is how many drag key presses reach a full dismiss.
	swipeSteps = 10

	defaultCols = 80
	defaultRows = 24
)

// Config configures the demo model.
type Config struct {
	Items         int
	Start         int
	RotationAware bool
	Options       []config.Option
	// Clock drives animations. Nil uses the system clock.
	Clock animation.Clock
}

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Model is the bubbletea model of one gallery presentation.
type Model struct {
	session *gallery.Session
	sched   *animation.Scheduler
	items   []caption.Footer

	container *container
	pager     *pager
	env       *environment
	thumb     *thumbnail
	header    *view
	footer    *footer
	closeBtn  *button
	detailBtn *button
	shareBtn  *button

	keys  keyMap
	help  help.Model
	dots  paginator.Model
	width int

	swipe    int
	expanded bool
	status   string
	done     bool
}

// New builds the model and its session. The session is presented by Init.
func New(cfg Config) (*Model, error) {
	clock := cfg.Clock
	if clock == nil {
		clock = animation.SystemClock
	}
	bounds := cellsToRect(defaultCols, defaultRows)

	m := &Model{
		sched:     animation.NewScheduler(clock),
		items:     demoItems(cfg.Items),
		container: &container{bounds: bounds, background: graphics.ColorBlack},
		pager:     &pager{},
		env: &environment{
			aware:       cfg.RotationAware,
			screen:      bounds.Size(),
			orientation: gallery.OrientationPortrait,
		},
		thumb:     &thumbnail{frame: graphics.RectFromLTWH(2*cellWidth, 4*cellHeight, 12*cellWidth, 4*cellHeight)},
		header:    newView(10*cellWidth, cellHeight),
		footer:    &footer{view: newView(bounds.Width(), 4*cellHeight)},
		closeBtn:  newButton("x close"),
		detailBtn: newButton("i detail"),
		shareBtn:  newButton("s share"),
		keys:      newKeyMap(),
		help:      help.New(),
		dots:      paginator.New(),
		width:     defaultCols,
	}
	m.dots.Type = paginator.Dots
	m.dots.ActiveDot = activeDotStyle.Render("•")
	m.dots.InactiveDot = inactiveDotStyle.Render("•")
	m.dots.SetTotalPages(len(m.items))

	s, err := gallery.New(gallery.Params{
		ItemCount:  len(m.items),
		StartIndex: cfg.Start,
		Source:     m.thumb,
		Content:    provider{},
		Options:    cfg.Options,
		Decorations: gallery.Decorations{
			Close:  m.closeBtn,
			Detail: m.detailBtn,
			Share:  m.shareBtn,
			Header: m.header,
			Footer: m.footer,
		},
		Container:   m.container,
		Pager:       m.pager,
		Environment: m.env,
		Scheduler:   m.sched,
		Actions:     actions{notify: m.setStatus, items: m.items},
		Callbacks: gallery.Callbacks{
			OnPageLanded:      m.landed,
			OnLaunchCompleted: func() { m.setStatus("ready") },
			OnClosed:          func() { m.finish("closed") },
			OnSwipedToDismiss: func() { m.finish("dismissed") },
		},
	})
	if err != nil {
		return nil, err
	}
	m.session = s
	return m, nil
}

// Session returns the hosted session.
func (m *Model) Session() *gallery.Session { return m.session }

// Done reports whether the gallery has closed or been dismissed.
func (m *Model) Done() bool { return m.done }

// Status returns the status line text.
func (m *Model) Status() string { return m.status }

// ErrorHandler returns an errors.Handler that shows reports on the status
// line.
func (m *Model) ErrorHandler() errors.Handler { return statusHandler{m: m} }

func (m *Model) Init() tea.Cmd {
	m.session.Present()
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case frameMsg:
		m.sched.Step()
		if m.done {
			return m, tea.Quit
		}
		return m, tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Dispose()
		m.done = true
		return tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.session.Close()
	case key.Matches(msg, m.keys.Next):
		m.turn(1)
	case key.Matches(msg, m.keys.Prev):
		m.turn(-1)
	case key.Matches(msg, m.keys.Toggle):
		if m.pager.page != nil {
			m.pager.page.Tapped()
		}
	case key.Matches(msg, m.keys.SwipeDown):
		m.drag(1)
	case key.Matches(msg, m.keys.SwipeUp):
		m.drag(-1)
	case key.Matches(msg, m.keys.Release):
		m.release()
	case key.Matches(msg, m.keys.More):
		m.expanded = !m.expanded
		m.refreshFooter()
		m.session.Layout()
	case key.Matches(msg, m.keys.Detail):
		m.detailBtn.tap()
	case key.Matches(msg, m.keys.Share):
		m.shareBtn.tap()
	case key.Matches(msg, m.keys.Rotate):
		if m.env.aware {
			m.setStatus("rotation is handled by the terminal")
			return nil
		}
		m.env.rotate()
	}
	return nil
}

// turn pages like a finished scroll in the pager would: the new page is
// installed and then reports that it appeared.
func (m *Model) turn(step int) {
	if m.session.TransitionState().State != gallery.StateIdle {
		return
	}
	ds := m.session.DataSource()
	var next *gallery.Page
	if step > 0 {
		next = ds.After(m.pager.page)
	} else {
		next = ds.Before(m.pager.page)
	}
	if next == nil {
		m.setStatus("no more items")
		return
	}
	m.pager.SetPage(next)
	next.Appeared()
}

func (m *Model) drag(delta int) {
	if m.pager.page == nil {
		return
	}
	m.swipe = min(max(m.swipe+delta, 0), swipeSteps)
	m.pager.page.Swiped(float64(m.swipe) / swipeSteps)
}

func (m *Model) release() {
	if m.swipe == 0 || m.pager.page == nil {
		return
	}
	m.swipe = 0
	m.pager.page.Swiped(0)
}

func (m *Model) resize(cols, rows int) {
	m.width = cols
	bounds := cellsToRect(cols, rows)
	if m.env.orientation.IsLandscape() {
		bounds = graphics.RectFromLTWH(0, 0, bounds.Height(), bounds.Width())
	}
	m.container.bounds = bounds
	m.env.screen = cellsToRect(cols, rows).Size()
	m.help.Width = cols
	m.session.Layout()
}

func (m *Model) landed(index int) {
	m.swipe = 0
	m.dots.Page = index
	m.refreshFooter()
}

func (m *Model) refreshFooter() {
	if len(m.items) == 0 {
		return
	}
	m.footer.spans = m.items[m.dots.Page].Compose(!m.expanded)
}

func (m *Model) finish(status string) {
	m.done = true
	m.setStatus(status)
}

func (m *Model) setStatus(s string) { m.status = s }

type statusHandler struct {
	m *Model
}

func (h statusHandler) HandleError(err *errors.GalleryError) { h.m.setStatus(err.Error()) }
func (h statusHandler) HandlePanic(err *errors.PanicError)   { h.m.setStatus(err.Error()) }
