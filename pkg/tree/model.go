package tree

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yaklabco/rcview/pkg/board"
	"github.com/yaklabco/rcview/pkg/severity"
	"github.com/yaklabco/rcview/pkg/units"
	"github.com/yaklabco/rcview/pkg/violation"
)

// node is a single tree entry. Nodes live in the model's slot arena and are
// addressed exclusively through Handles.
type node struct {
	kind     Kind
	rec      *violation.Record
	parent   Handle
	children []Handle
}

// slotEntry pairs a node with its current generation. Freeing a slot bumps
// the generation, which is what invalidates outstanding handles.
type slotEntry struct {
	gen  uint32
	live bool
	node node
}

// Options configures a Model.
type Options struct {
	// Units selects coordinate formatting for node values.
	Units units.Options

	// Items resolves item identifiers at display time. May be nil.
	Items board.ItemMap

	// Listener receives change notifications. Nil means no notifications.
	Listener Listener
}

// Model maintains the violation tree over a swappable provider. It is
// driven synchronously by a single presentation layer; it performs no
// locking and spawns nothing.
type Model struct {
	provider violation.Provider
	mask     severity.Mask
	units    units.Options
	items    board.ItemMap
	listener Listener

	slots     []slotEntry
	free      []int32
	topLevel  []Handle
	primaries []Handle // primary nodes in provider view order
}

// New creates an empty model. Until SetProvider is called the model behaves
// as a valid, empty tree.
func New(opts Options) *Model {
	listener := opts.Listener
	if listener == nil {
		listener = NopListener{}
	}
	return &Model{
		mask:     severity.All,
		units:    opts.Units,
		items:    opts.Items,
		listener: listener,
	}
}

// SetListener replaces the change listener. A nil listener disables
// notifications.
func (m *Model) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	m.listener = l
}

// SetProvider swaps the violation source and rebuilds the tree. A nil
// provider empties the tree.
func (m *Model) SetProvider(p violation.Provider) {
	m.provider = p
	if p != nil {
		p.SetSeverityFilter(m.mask)
	}
	m.rebuild()
}

// SetSeverityFilter narrows the visible severities and rebuilds the tree.
func (m *Model) SetSeverityFilter(mask severity.Mask) {
	m.mask = mask
	if m.provider != nil {
		m.provider.SetSeverityFilter(mask)
	}
	m.rebuild()
}

// SeverityFilter returns the active severity mask.
func (m *Model) SeverityFilter() severity.Mask { return m.mask }

// Len returns the number of primary findings in the tree.
func (m *Model) Len() int { return len(m.primaries) }

// rebuild replaces the whole tree from the provider's filtered view. All
// outstanding handles are invalidated; the listener sees a single
// StructureChanged(Root) once the new tree is complete.
func (m *Model) rebuild() {
	m.freeAll()

	if m.provider == nil {
		m.listener.StructureChanged(Root)
		return
	}

	count := m.provider.Count(m.mask)
	var curMarker *board.Marker
	var curGroup Handle
	haveGroup := false

	for i := 0; i < count; i++ {
		rec, err := m.provider.ItemAt(i)
		if err != nil {
			// The provider shrank under us mid-iteration; present what we
			// have rather than a broken tree.
			break
		}

		parent := Root
		if marker := rec.Marker(); marker != nil {
			if !haveGroup || marker != curMarker {
				curGroup = m.alloc(node{kind: KindGroup, parent: Root})
				m.topLevel = append(m.topLevel, curGroup)
				curMarker = marker
				haveGroup = true
			}
			parent = curGroup
		} else {
			haveGroup = false
			curMarker = nil
		}

		primary := m.alloc(node{kind: KindPrimary, rec: rec, parent: parent})
		m.appendChild(parent, primary)
		m.primaries = append(m.primaries, primary)

		if rec.HasAuxItem() {
			secondary := m.alloc(node{kind: KindSecondary, rec: rec, parent: primary})
			m.appendChild(primary, secondary)
		}
	}

	m.listener.StructureChanged(Root)
}

// IsContainer reports whether the node can have children in the current
// projection: the root, every group, and primaries with a secondary child.
func (m *Model) IsContainer(h Handle) (bool, error) {
	if h.IsRoot() {
		return true, nil
	}
	n, err := m.resolve(h)
	if err != nil {
		return false, err
	}
	switch n.kind {
	case KindGroup:
		return true, nil
	case KindPrimary:
		return len(n.children) > 0, nil
	default:
		return false, nil
	}
}

// Parent returns the node's parent handle; top-level nodes (and the root
// itself) return Root.
func (m *Model) Parent(h Handle) (Handle, error) {
	if h.IsRoot() {
		return Root, nil
	}
	n, err := m.resolve(h)
	if err != nil {
		return Handle{}, err
	}
	return n.parent, nil
}

// Children returns the node's ordered children. Passing Root yields the
// top-level nodes. The returned slice is the caller's to keep.
func (m *Model) Children(h Handle) ([]Handle, error) {
	if h.IsRoot() {
		return append([]Handle(nil), m.topLevel...), nil
	}
	n, err := m.resolve(h)
	if err != nil {
		return nil, err
	}
	return append([]Handle(nil), n.children...), nil
}

// Kind returns the node's kind.
func (m *Model) Kind(h Handle) (Kind, error) {
	n, err := m.resolve(h)
	if err != nil {
		return 0, err
	}
	return n.kind, nil
}

// Record returns the violation record behind the node. Group nodes are
// synthetic and return the record of their first finding.
func (m *Model) Record(h Handle) (*violation.Record, error) {
	n, err := m.resolve(h)
	if err != nil {
		return nil, err
	}
	if n.kind == KindGroup {
		if len(n.children) == 0 {
			return nil, nil
		}
		first, err := m.resolve(n.children[0])
		if err != nil {
			return nil, err
		}
		return first.rec, nil
	}
	return n.rec, nil
}

// Value derives the node's single-column display string. Groups summarize
// their findings; primaries show the record message; secondaries describe
// the second offending item.
func (m *Model) Value(h Handle) (string, error) {
	n, err := m.resolve(h)
	if err != nil {
		return "", err
	}

	switch n.kind {
	case KindGroup:
		rec, err := m.Record(h)
		if err != nil || rec == nil {
			return "", err
		}
		return fmt.Sprintf("%s (%d)", rec.Message(), len(n.children)), nil
	case KindSecondary:
		return m.describeItem(n.rec.AuxItemID()), nil
	default:
		return n.rec.Message(), nil
	}
}

// Attr derives presentation styling from the record's own flags. A group
// is styled excluded only when every finding under it is excluded.
func (m *Model) Attr(h Handle) (Attr, error) {
	n, err := m.resolve(h)
	if err != nil {
		return Attr{}, err
	}

	if n.kind != KindGroup {
		return Attr{Excluded: n.rec.Excluded()}, nil
	}

	if len(n.children) == 0 {
		return Attr{}, nil
	}
	for _, child := range n.children {
		c, err := m.resolve(child)
		if err != nil {
			return Attr{}, err
		}
		if !c.rec.Excluded() {
			return Attr{}, nil
		}
	}
	return Attr{Excluded: true}, nil
}

// ValueChanged tells the presentation layer to re-query one node's value
// and attributes. Tree shape is guaranteed untouched.
func (m *Model) ValueChanged(h Handle) error {
	if _, err := m.resolve(h); err != nil {
		return err
	}
	m.listener.ValueChanged(h)
	return nil
}

func (m *Model) describeItem(id uuid.UUID) string {
	if item := m.items.Lookup(id); item != nil {
		return item.Description(m.units)
	}
	return "[" + id.String() + "]"
}

// --- arena ---

func (m *Model) alloc(n node) Handle {
	if last := len(m.free) - 1; last >= 0 {
		slot := m.free[last]
		m.free = m.free[:last]
		m.slots[slot].live = true
		m.slots[slot].node = n
		return Handle{slot: slot, gen: m.slots[slot].gen}
	}
	m.slots = append(m.slots, slotEntry{gen: 1, live: true, node: n})
	return Handle{slot: int32(len(m.slots) - 1), gen: 1}
}

// freeSlot releases one slot, invalidating handles that point at it.
func (m *Model) freeSlot(h Handle) {
	s := &m.slots[h.slot]
	s.live = false
	s.gen++
	s.node = node{}
	m.free = append(m.free, h.slot)
}

func (m *Model) freeAll() {
	for i := range m.slots {
		if m.slots[i].live {
			m.slots[i].live = false
			m.slots[i].gen++
			m.slots[i].node = node{}
			m.free = append(m.free, int32(i))
		}
	}
	m.topLevel = nil
	m.primaries = nil
}

func (m *Model) resolve(h Handle) (*node, error) {
	if h.IsRoot() {
		return nil, ErrInvalidHandle
	}
	if h.slot < 0 || int(h.slot) >= len(m.slots) {
		return nil, ErrInvalidHandle
	}
	s := &m.slots[h.slot]
	if !s.live || s.gen != h.gen {
		return nil, ErrInvalidHandle
	}
	return &s.node, nil
}

func (m *Model) appendChild(parent, child Handle) {
	if parent.IsRoot() {
		m.topLevel = append(m.topLevel, child)
		return
	}
	n := &m.slots[parent.slot].node
	n.children = append(n.children, child)
}
