package violation

import (
	"github.com/yaklabco/rcview/pkg/board"
	"github.com/yaklabco/rcview/pkg/severity"
)

// Compile-time interface check.
var _ Provider = (*MarkerProvider)(nil)

// MarkerProvider serves violations whose persistent representation lives in
// the board's marker store, the shape design-rule-check results take. Deep
// deletion removes a record's marker from the store once no retained record
// references it; shallow deletion only drops the record from the view.
type MarkerProvider struct {
	store   *board.MarkerStore
	records []*Record
	filter  severity.Mask
	view    []int
}

// NewMarkerProvider creates a provider over records anchored in the given
// store. Records keep their list order; the store is only touched for deep
// deletion.
func NewMarkerProvider(store *board.MarkerStore, records ...*Record) *MarkerProvider {
	p := &MarkerProvider{store: store, records: records, filter: severity.All}
	p.rebuildView()
	return p
}

// Add appends a record and registers its marker with the store.
func (p *MarkerProvider) Add(r *Record) {
	if r == nil {
		return
	}
	if m := r.Marker(); m != nil {
		p.store.Add(m)
	}
	p.records = append(p.records, r)
	p.rebuildView()
}

// Store returns the backing marker store.
func (p *MarkerProvider) Store() *board.MarkerStore { return p.store }

// SetSeverityFilter implements Provider.
func (p *MarkerProvider) SetSeverityFilter(mask severity.Mask) {
	p.filter = mask
	p.rebuildView()
}

// Count implements Provider.
func (p *MarkerProvider) Count(mask severity.Mask) int {
	if mask == severity.All {
		return len(p.records)
	}
	count := 0
	for _, r := range p.records {
		if mask.Matches(r.Severity()) {
			count++
		}
	}
	return count
}

// ItemAt implements Provider.
func (p *MarkerProvider) ItemAt(index int) (*Record, error) {
	if index < 0 || index >= len(p.view) {
		return nil, ErrOutOfRange
	}
	return p.records[p.view[index]], nil
}

// DeleteAt implements Provider.
func (p *MarkerProvider) DeleteAt(index int, deep bool) error {
	if index < 0 || index >= len(p.view) {
		return ErrOutOfRange
	}
	at := p.view[index]
	removed := p.records[at]
	p.records = append(p.records[:at], p.records[at+1:]...)
	p.rebuildView()

	if deep {
		p.dropMarkerIfOrphaned(removed)
	}
	return nil
}

// DeleteAll implements Provider.
func (p *MarkerProvider) DeleteAll() {
	for _, r := range p.records {
		if m := r.Marker(); m != nil {
			p.store.Remove(m.ID())
		}
	}
	p.records = nil
	p.view = nil
}

// dropMarkerIfOrphaned removes the record's marker from the store unless
// another retained record still shares it.
func (p *MarkerProvider) dropMarkerIfOrphaned(removed *Record) {
	m := removed.Marker()
	if m == nil {
		return
	}
	for _, r := range p.records {
		if r.Marker() == m {
			return
		}
	}
	p.store.Remove(m.ID())
}

func (p *MarkerProvider) rebuildView() {
	p.view = p.view[:0]
	for i, r := range p.records {
		if p.filter.Matches(r.Severity()) {
			p.view = append(p.view, i)
		}
	}
}
