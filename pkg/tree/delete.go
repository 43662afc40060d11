package tree

import (
	"fmt"
	"sort"
)

// Delete removes the violation(s) behind the node from the provider and
// repairs the tree. A group handle deletes every record under the group; a
// secondary handle deletes its record, taking the whole primary subtree
// with it. Deep deletion additionally discards the records' persistent
// representation in the backing store.
//
// The listener is notified of the structural change while the affected
// handles still resolve; they become invalid once Delete returns.
func (m *Model) Delete(h Handle, deep bool) error {
	n, err := m.resolve(h)
	if err != nil {
		return err
	}

	if n.kind == KindGroup {
		return m.deleteGroup(h, deep)
	}

	target := h
	if n.kind == KindSecondary {
		target = n.parent
	}
	return m.deletePrimary(target, deep)
}

// DeleteAll clears the provider and rebuilds into the empty state.
func (m *Model) DeleteAll() {
	if m.provider != nil {
		m.provider.DeleteAll()
	}
	m.rebuild()
}

func (m *Model) deleteGroup(group Handle, deep bool) error {
	n, err := m.resolve(group)
	if err != nil {
		return err
	}

	prims := append([]Handle(nil), n.children...)
	if err := m.deleteFromProvider(prims, deep); err != nil {
		return err
	}

	m.topLevel = removeHandle(m.topLevel, group)
	for _, p := range prims {
		m.primaries = removeHandle(m.primaries, p)
	}

	m.listener.StructureChanged(Root)

	for _, p := range prims {
		m.freeSubtree(p)
	}
	m.freeSlot(group)
	return nil
}

func (m *Model) deletePrimary(primary Handle, deep bool) error {
	n, err := m.resolve(primary)
	if err != nil {
		return err
	}
	parent := n.parent

	if err := m.deleteFromProvider([]Handle{primary}, deep); err != nil {
		return err
	}

	m.primaries = removeHandle(m.primaries, primary)

	changed := parent
	var emptiedGroup Handle
	groupEmptied := false

	if parent.IsRoot() {
		m.topLevel = removeHandle(m.topLevel, primary)
	} else {
		pn := &m.slots[parent.slot].node
		pn.children = removeHandle(pn.children, primary)
		if len(pn.children) == 0 {
			// The group lost its last finding; it goes too.
			m.topLevel = removeHandle(m.topLevel, parent)
			emptiedGroup = parent
			groupEmptied = true
			changed = Root
		}
	}

	m.listener.StructureChanged(changed)

	m.freeSubtree(primary)
	if groupEmptied {
		m.freeSlot(emptiedGroup)
	}
	return nil
}

// deleteFromProvider resolves the primaries to provider indices and deletes
// them in descending order so the remaining indices stay valid.
func (m *Model) deleteFromProvider(prims []Handle, deep bool) error {
	indices := make([]int, 0, len(prims))
	for _, p := range prims {
		idx := m.primaryIndex(p)
		if idx < 0 {
			return ErrInvalidHandle
		}
		indices = append(indices, idx)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	for _, idx := range indices {
		if err := m.provider.DeleteAt(idx, deep); err != nil {
			return fmt.Errorf("delete violation %d: %w", idx, err)
		}
	}
	return nil
}

// primaryIndex returns the node's index in the provider's filtered view, or
// -1 when the handle is not a primary of this tree.
func (m *Model) primaryIndex(h Handle) int {
	for i, p := range m.primaries {
		if p == h {
			return i
		}
	}
	return -1
}

// freeSubtree releases a node and its descendants.
func (m *Model) freeSubtree(h Handle) {
	n, err := m.resolve(h)
	if err != nil {
		return
	}
	for _, child := range n.children {
		m.freeSubtree(child)
	}
	m.freeSlot(h)
}

func removeHandle(handles []Handle, h Handle) []Handle {
	for i, cur := range handles {
		if cur == h {
			return append(handles[:i], handles[i+1:]...)
		}
	}
	return handles
}
