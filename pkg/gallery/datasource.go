package gallery

import "github.com/go-drift/gallery/pkg/config"

// DataSource answers the pager's before/after queries.
type DataSource struct {
	factory *Factory
	count   int
	mode    config.PagingMode
}

// NewDataSource returns a data source over count items.
func NewDataSource(factory *Factory, count int, mode config.PagingMode) *DataSource {
	return &DataSource{factory: factory, count: count, mode: mode}
}

// Before returns a new page for the item before p, or nil at the start.
func (d *DataSource) Before(p *Page) *Page {
	if p == nil {
		return nil
	}
	index, ok := d.neighbor(p.Index, -1)
	if !ok {
		return nil
	}
	return d.factory.Page(index)
}

// After returns a new page for the item after p, or nil at the end.
func (d *DataSource) After(p *Page) *Page {
	if p == nil {
		return nil
	}
	index, ok := d.neighbor(p.Index, 1)
	if !ok {
		return nil
	}
	return d.factory.Page(index)
}

func (d *DataSource) neighbor(index, step int) (int, bool) {
	if d.count <= 1 {
		// A single page never neighbors itself, even when infinite.
		return 0, false
	}
	next := index + step
	switch d.mode {
	case config.PagingInfinite:
		return ((next % d.count) + d.count) % d.count, true
	default:
		if next < 0 || next >= d.count {
			return 0, false
		}
		return next, true
	}
}
