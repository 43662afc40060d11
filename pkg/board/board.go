// Package board holds the minimal surface of the board/document subsystem
// that violation browsing needs: addressable items, and the markers that
// anchor violations to board positions. The real board model lives outside
// this module; these types are the contract it is reached through.
package board

import (
	"github.com/google/uuid"

	"github.com/yaklabco/rcview/pkg/units"
)

// Item is any board entity a violation can point at. Entities are always
// carried by identifier, never by reference, so a stale violation can
// outlive the entity it names.
type Item interface {
	// ID returns the item's stable identifier.
	ID() uuid.UUID

	// Description returns a short human-readable description of the item,
	// positioned with the given unit formatting.
	Description(opts units.Options) string
}

// ItemMap resolves item identifiers to items at formatting time. Items
// missing from the map are reported by identifier only; that is normal, not
// a fault.
type ItemMap map[uuid.UUID]Item

// Lookup returns the item for id, or nil if it is not present.
func (m ItemMap) Lookup(id uuid.UUID) Item {
	if m == nil {
		return nil
	}
	return m[id]
}

// Marker is the visual annotation a group of violations hangs off. One
// marker may own several violation records; the browser collapses them
// under a single tree node.
type Marker struct {
	id  uuid.UUID
	pos units.Point
}

// NewMarker creates a marker at the given board position.
func NewMarker(pos units.Point) *Marker {
	return &Marker{id: uuid.New(), pos: pos}
}

// ID returns the marker's stable identifier.
func (m *Marker) ID() uuid.UUID { return m.id }

// Position returns the marker's board position.
func (m *Marker) Position() units.Point { return m.pos }
