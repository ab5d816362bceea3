package gallery

import (
	"github.com/go-drift/gallery/pkg/config"
	"github.com/go-drift/gallery/pkg/graphics"
)

// Spinner is the loading indicator configuration handed to page content.
type Spinner struct {
	Style config.SpinnerStyle
	Color graphics.Color
}

// Page is one item of the gallery. Pages are built fresh for every display
// and never reused, so their per-display state cannot leak between visits.
type Page struct {
	// Index is the item index this page shows.
	Index int
	// Content is the host-rendered body, or nil if the provider returned none.
	Content PageContent
	// ShowDisplaced is set on the initial page, which stands in for the
	// displaced thumbnail during the present transition.
	ShowDisplaced bool
	// FadeIn is true when the content should fade in, which happens only the
	// first time an index is shown in a session.
	FadeIn  bool
	Spinner Spinner

	hidden bool
	emit   func(PageEvent)
}

// Hidden reports whether the page content is hidden.
func (p *Page) Hidden() bool { return p.hidden }

// SetHidden hides or shows the page content.
func (p *Page) SetHidden(hidden bool) {
	p.hidden = hidden
	if p.Content != nil {
		p.Content.SetHidden(hidden)
	}
}

// Swiped reports interactive dismiss progress for this page.
func (p *Page) Swiped(distance float64) { p.send(SwipeDistance(p.Index, distance)) }

// Tapped reports a single tap on this page.
func (p *Page) Tapped() { p.send(SingleTap(p.Index)) }

// Appeared reports that this page finished landing on screen.
func (p *Page) Appeared() { p.send(PageAppeared(p.Index)) }

func (p *Page) send(ev PageEvent) {
	if p.emit != nil {
		p.emit(ev)
	}
}

// FadeInCoordinator remembers which indices have been shown, shared by every
// page of a session.
type FadeInCoordinator struct {
	shown map[int]bool
}

// NewFadeInCoordinator returns an empty coordinator.
func NewFadeInCoordinator() *FadeInCoordinator {
	return &FadeInCoordinator{shown: make(map[int]bool)}
}

// ShouldFadeIn reports whether index has not been shown yet and marks it shown.
func (f *FadeInCoordinator) ShouldFadeIn(index int) bool {
	if f.shown[index] {
		return false
	}
	f.shown[index] = true
	return true
}

// Factory builds pages wired to the session's event channel.
type Factory struct {
	provider ContentProvider
	fadeIn   *FadeInCoordinator
	spinner  Spinner
	emit     func(PageEvent)
}

// NewFactory returns a factory. emit receives every event raised by the
// pages it builds.
func NewFactory(provider ContentProvider, fadeIn *FadeInCoordinator, spinner Spinner, emit func(PageEvent)) *Factory {
	if fadeIn == nil {
		fadeIn = NewFadeInCoordinator()
	}
	return &Factory{provider: provider, fadeIn: fadeIn, spinner: spinner, emit: emit}
}

// Page builds a new page for index.
func (f *Factory) Page(index int) *Page {
	p := &Page{
		Index:   index,
		FadeIn:  f.fadeIn.ShouldFadeIn(index),
		Spinner: f.spinner,
		emit:    f.emit,
	}
	if f.provider != nil {
		p.Content = f.provider.Content(index)
	}
	return p
}

// InitialPage builds the first page of a presentation. It shows the
// displaced image and starts hidden until the present transition completes.
func (f *Factory) InitialPage(index int) *Page {
	p := f.Page(index)
	p.ShowDisplaced = true
	p.FadeIn = false
	p.SetHidden(true)
	return p
}
