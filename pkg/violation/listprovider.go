package violation

import "github.com/yaklabco/rcview/pkg/severity"

// Compile-time interface check.
var _ Provider = (*ListProvider)(nil)

// ListProvider serves violations from a flat in-memory list, the natural
// shape for connectivity-check results that have no marker store behind
// them. Deep and shallow deletion are equivalent here: removing the record
// from the list is all there is.
type ListProvider struct {
	records []*Record
	filter  severity.Mask
	view    []int // indices into records matching filter, in list order
}

// NewListProvider creates a provider over the given records. The provider
// takes ownership of the slice.
func NewListProvider(records ...*Record) *ListProvider {
	p := &ListProvider{records: records, filter: severity.All}
	p.rebuildView()
	return p
}

// Add appends a record to the list.
func (p *ListProvider) Add(r *Record) {
	if r == nil {
		return
	}
	p.records = append(p.records, r)
	p.rebuildView()
}

// SetSeverityFilter implements Provider.
func (p *ListProvider) SetSeverityFilter(mask severity.Mask) {
	p.filter = mask
	p.rebuildView()
}

// Count implements Provider.
func (p *ListProvider) Count(mask severity.Mask) int {
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
func (p *ListProvider) ItemAt(index int) (*Record, error) {
	if index < 0 || index >= len(p.view) {
		return nil, ErrOutOfRange
	}
	return p.records[p.view[index]], nil
}

// DeleteAt implements Provider.
func (p *ListProvider) DeleteAt(index int, _ bool) error {
	if index < 0 || index >= len(p.view) {
		return ErrOutOfRange
	}
	at := p.view[index]
	p.records = append(p.records[:at], p.records[at+1:]...)
	p.rebuildView()
	return nil
}

// DeleteAll implements Provider.
func (p *ListProvider) DeleteAll() {
	p.records = nil
	p.view = nil
}

func (p *ListProvider) rebuildView() {
	p.view = p.view[:0]
	for i, r := range p.records {
		if p.filter.Matches(r.Severity()) {
			p.view = append(p.view, i)
		}
	}
}
