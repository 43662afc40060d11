package violation

import (
	"errors"

	"github.com/yaklabco/rcview/pkg/severity"
)

// ErrOutOfRange is returned for provider index access beyond the current
// filtered count.
var ErrOutOfRange = errors.New("violation index out of range")

// Provider is the abstraction a violation list is read and deleted through.
// The storage layout behind it is the implementation's business: one
// provider may wrap a flat result list, another the board's marker store.
//
// A provider maintains a filtered view selected by SetSeverityFilter;
// ItemAt and DeleteAt index into that view, in a stable order chosen by the
// provider.
type Provider interface {
	// SetSeverityFilter restricts the view to records whose severity
	// matches the mask. severity.All removes the restriction.
	SetSeverityFilter(mask severity.Mask)

	// Count returns the number of retained records matching the mask,
	// independent of the current view filter. Pass severity.All for the
	// total retained.
	Count(mask severity.Mask) int

	// ItemAt returns the record at index in the filtered view.
	// Returns ErrOutOfRange when index is outside [0, Count(filter)).
	ItemAt(index int) (*Record, error)

	// DeleteAt removes the record at index in the filtered view. When deep
	// is true the record's persistent representation (its marker) is
	// discarded from the backing store as well. Index rules match ItemAt.
	DeleteAt(index int, deep bool) error

	// DeleteAll removes every record unconditionally, with deep semantics.
	DeleteAll()
}
