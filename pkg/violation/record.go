// Package violation defines the rule-check violation record, the provider
// abstraction violation lists are read and deleted through, and two in-memory
// provider implementations.
package violation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yaklabco/rcview/pkg/board"
	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/units"
)

// Record describes one rule violation found by a design-rule or
// connectivity check. A record can reference zero, one, or two board items
// by identifier, and may belong to a marker shared with related records.
//
// Records are created by the checking subsystem and owned by their provider;
// the tree model only references them.
type Record struct {
	code     int
	message  string
	severity severity.Severity
	marker   *board.Marker
	mainItem uuid.UUID
	auxItem  uuid.UUID
	excluded bool
}

// NewRecord creates a record with the given rule code and severity.
func NewRecord(code int, sev severity.Severity) *Record {
	return &Record{code: code, severity: sev}
}

// Code returns the numeric rule-violation kind.
func (r *Record) Code() int { return r.code }

// SetCode sets the numeric rule-violation kind.
func (r *Record) SetCode(code int) { r.code = code }

// Message returns the violation message.
func (r *Record) Message() string { return r.message }

// SetMessage sets the violation message.
func (r *Record) SetMessage(msg string) { r.message = msg }

// Severity returns the violation severity.
func (r *Record) Severity() severity.Severity { return r.severity }

// SetSeverity sets the violation severity.
func (r *Record) SetSeverity(sev severity.Severity) { r.severity = sev }

// SetItems associates the offending board items by identifier. Pass
// uuid.Nil for aux when the violation involves a single item.
func (r *Record) SetItems(main, aux uuid.UUID) {
	r.mainItem = main
	r.auxItem = aux
}

// MainItemID returns the primary offending item's identifier, or uuid.Nil.
func (r *Record) MainItemID() uuid.UUID { return r.mainItem }

// AuxItemID returns the secondary offending item's identifier, or uuid.Nil.
func (r *Record) AuxItemID() uuid.UUID { return r.auxItem }

// HasAuxItem reports whether a secondary item is associated.
func (r *Record) HasAuxItem() bool { return r.auxItem != uuid.Nil }

// Marker returns the marker this record belongs to, or nil.
func (r *Record) Marker() *board.Marker { return r.marker }

// SetMarker assigns the owning marker.
func (r *Record) SetMarker(m *board.Marker) { r.marker = m }

// Excluded reports whether the violation has been excluded by the user.
// Excluded violations stay in the list but render de-emphasized.
func (r *Record) Excluded() bool { return r.excluded }

// SetExcluded marks or unmarks the violation as excluded.
func (r *Record) SetExcluded(excluded bool) { r.excluded = excluded }

// ShowReport renders the record as multi-line report text. Offending items
// are resolved through the item map; identifiers missing from the map are
// printed as bare identifiers, which is normal for items deleted since the
// check ran.
func (r *Record) ShowReport(opts units.Options, items board.ItemMap) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ErrType(%d): %s\n", r.code, r.message)

	if r.mainItem != uuid.Nil {
		b.WriteString("    " + describeItem(opts, items, r.mainItem) + "\n")
	}
	if r.auxItem != uuid.Nil {
		b.WriteString("    " + describeItem(opts, items, r.auxItem) + "\n")
	}

	return b.String()
}

func describeItem(opts units.Options, items board.ItemMap, id uuid.UUID) string {
	if item := items.Lookup(id); item != nil {
		return item.Description(opts)
	}
	return "[" + id.String() + "]"
}
