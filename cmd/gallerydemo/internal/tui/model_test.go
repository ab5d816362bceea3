package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/gallery/pkg/config"
	"github.com/go-drift/gallery/pkg/errors"
	"github.com/go-drift/gallery/pkg/gallery"
	gallerytest "github.com/go-drift/gallery/pkg/testing"
)

func newModel(t *testing.T, cfg Config) (*Model, *gallerytest.FakeClock) {
	t.Helper()
	clk := gallerytest.NewFakeClock()
	cfg.Clock = clk
	m, err := New(cfg)
	require.NoError(t, err)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	settle(m, clk)
	return m, clk
}

// settle advances two seconds of frames, long enough for any transition.
func settle(m *Model, clk *gallerytest.FakeClock) {
	for i := 0; i < 125; i++ {
		clk.Advance(gallerytest.FrameDuration)
		m.Update(frameMsg(clk.Now()))
	}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestModel_PresentsOnInit(t *testing.T) {
	m, _ := newModel(t, Config{Items: 5, Start: 2})
	require.Equal(t, gallery.StateIdle, m.Session().TransitionState().State)
	require.Equal(t, "ready", m.Status())
	require.Contains(t, m.View(), "3 of 5")
}

func TestModel_Paging(t *testing.T) {
	m, _ := newModel(t, Config{Items: 3})

	press(m, "right", "right")
	require.Equal(t, 2, m.Session().CurrentIndex())
	require.Contains(t, m.View(), "3 of 3")

	press(m, "right")
	require.Equal(t, 2, m.Session().CurrentIndex())
	require.Equal(t, "no more items", m.Status())

	press(m, "left")
	require.Equal(t, 1, m.Session().CurrentIndex())
}

func TestModel_InfinitePagingFromConfig(t *testing.T) {
	m, _ := newModel(t, Config{Items: 3, Options: []config.Option{config.WithPagingMode(config.PagingInfinite)}})
	press(m, "left")
	require.Equal(t, 2, m.Session().CurrentIndex())
}

func TestModel_ToggleHidesChrome(t *testing.T) {
	m, clk := newModel(t, Config{Items: 3})
	press(m, "space")
	settle(m, clk)
	require.True(t, m.Session().DecorationsHidden())
	require.NotContains(t, m.View(), "x close")

	press(m, "space")
	settle(m, clk)
	require.False(t, m.Session().DecorationsHidden())
	require.Contains(t, m.View(), "x close")
}

func TestModel_CloseKey(t *testing.T) {
	m, clk := newModel(t, Config{Items: 3})
	press(m, "esc")
	require.False(t, m.Done())
	settle(m, clk)
	require.True(t, m.Done())
	require.Equal(t, "closed", m.Status())
}

func TestModel_DragDismisses(t *testing.T) {
	m, clk := newModel(t, Config{Items: 3})
	press(m, "down", "down", "down")
	require.Equal(t, gallery.StateInteractiveDismiss, m.Session().TransitionState().State)

	press(m, "0")
	require.Equal(t, gallery.StateIdle, m.Session().TransitionState().State)

	for i := 0; i < swipeSteps; i++ {
		press(m, "down")
	}
	require.Equal(t, gallery.StateClosing, m.Session().TransitionState().State)
	settle(m, clk)
	require.True(t, m.Done())
	require.Equal(t, "dismissed", m.Status())
}

func TestModel_DetailAndShare(t *testing.T) {
	m, _ := newModel(t, Config{Items: 3})
	press(m, "d")
	require.True(t, strings.HasPrefix(m.Status(), "detail: "))
	press(m, "s")
	require.Equal(t, "shared item 1 of 3", m.Status())
}

func TestModel_Rotate(t *testing.T) {
	m, clk := newModel(t, Config{Items: 3})
	press(m, "r")
	settle(m, clk)
	require.Equal(t, "rotated 90°", findLine(m.View(), "rotated"))
	require.Equal(t, 0, m.container.overlays)
}

func TestModel_RotateIgnoredWhenAware(t *testing.T) {
	m, _ := newModel(t, Config{Items: 3, RotationAware: true})
	press(m, "r")
	require.Zero(t, m.container.angle)
	require.Equal(t, "rotation is handled by the terminal", m.Status())
}

func TestModel_ExpandedFooter(t *testing.T) {
	m, _ := newModel(t, Config{Items: 3})
	require.Contains(t, m.View(), "See More")
	press(m, "m")
	require.NotContains(t, m.View(), "See More")
}

func TestModel_ErrorHandlerWritesStatus(t *testing.T) {
	m, _ := newModel(t, Config{Items: 3})
	errors.SetHandler(m.ErrorHandler())
	t.Cleanup(func() { errors.SetHandler(nil) })

	m.Session().Dispatch(gallery.PageAppeared(9))
	require.Contains(t, m.Status(), "gallery.Dispatch")
}

func TestModel_QuitDisposes(t *testing.T) {
	m, _ := newModel(t, Config{Items: 3})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, m.Done())
	require.Len(t, m.env.subscribers, 1)
	require.Nil(t, m.env.subscribers[0])
}

func TestNew_InvalidItems(t *testing.T) {
	_, err := New(Config{Items: 0})
	require.Error(t, err)
	require.Equal(t, errors.KindInvalidConstruction, errors.KindOf(err))
}

func findLine(s, substr string) string {
	for _, line := range strings.Split(s, "\n") {
		if i := strings.Index(line, substr); i >= 0 {
			return strings.TrimRight(strings.TrimSpace(line[i:]), "│ ")
		}
	}
	return ""
}
