// Package tree projects a flat, severity-filtered violation list into a
// navigable three-level hierarchy: marker group, primary finding, secondary
// finding. The model owns the tree; the provider owns the records; the
// presentation layer holds only generation-checked handles.
package tree

import "errors"

// ErrInvalidHandle is returned when a handle is stale (invalidated by a
// rebuild or deletion) or was never handed out by the model.
var ErrInvalidHandle = errors.New("invalid tree node handle")

// Kind identifies what a tree node represents.
type Kind int

const (
	// KindGroup is a synthetic node collapsing records that share a marker.
	KindGroup Kind = iota
	// KindPrimary is a finding's main entry, one per record.
	KindPrimary
	// KindSecondary is the optional second offending item of a record.
	KindSecondary
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindPrimary:
		return "primary"
	case KindSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Handle is an opaque, generation-tagged token identifying a tree node.
// Handles stay valid until the next rebuild or until the node (or an
// ancestor) is deleted; stale handles are detected, not dereferenced.
//
// The zero Handle is never valid.
type Handle struct {
	slot int32
	gen  uint32
}

// Root is the sentinel handle representing "no parent". Passing Root to
// Children yields the top-level nodes.
var Root = Handle{slot: -1, gen: 1}

// IsRoot reports whether the handle is the root sentinel.
func (h Handle) IsRoot() bool { return h == Root }

// Attr carries presentation styling derived from a record's own flags.
type Attr struct {
	// Excluded marks a violation the user has excluded; presentation
	// renders it de-emphasized.
	Excluded bool
}

// Default reports whether the attributes carry no styling.
func (a Attr) Default() bool { return a == Attr{} }

// Listener receives change notifications from the model. Notifications for
// deleted nodes arrive while their handles are still resolvable; the
// handles become invalid as soon as the notification returns.
type Listener interface {
	// StructureChanged signals that the node's children changed. The root
	// sentinel signals a full rebuild.
	StructureChanged(h Handle)

	// ValueChanged signals that only the node's value or attributes
	// changed; tree shape is untouched.
	ValueChanged(h Handle)
}

// NopListener is a Listener that ignores every notification.
type NopListener struct{}

// StructureChanged implements Listener.
func (NopListener) StructureChanged(Handle) {}

// ValueChanged implements Listener.
func (NopListener) ValueChanged(Handle) {}
