package beetree

// insertVisitor adds or replaces an entry.
//
// Splitting is done top-down: before descending into a full child, the child
// is split and its middle entry promoted into the current node. The current
// node is never full at that point (the root is split before the walk starts,
// every other node was checked by its parent), so promotion never overflows.
type insertVisitor[K, V any] struct {
	m        *Map[K, V]
	key      K
	value    V
	old      V
	replaced bool
}

func (v *insertVisitor[K, V]) visitInternal(n *internalNode[K, V]) motion {
	i, found := v.m.searchSeparators(n, v.key)
	if found {
		v.old = n.seps[i].cell.set(v.value)
		v.replaced = true
		return finish
	}
	child := n.child(i)
	if !v.m.full(child) {
		return descend(i)
	}
	left, sep := v.m.splitNode(child)
	n.setChild(i, left)
	n.seps = insertAt(n.seps, i, sep)
	switch c := v.m.cfg.Compare(v.key, sep.key); {
	case c == 0:
		v.old = sep.cell.set(v.value)
		v.replaced = true
		return finish
	case c > 0:
		return descend(i + 1)
	}
	return descend(i)
}

func (v *insertVisitor[K, V]) visitLeaf(n *terminalNode[K, V]) {
	i, found := v.m.searchEntries(n, v.key)
	if found {
		v.old = n.entries[i].value
		n.entries[i].value = v.value
		v.replaced = true
		return
	}
	n.entries = insertAt(n.entries, i, entry[K, V]{key: v.key, value: v.value})
	v.m.count++
}

// Insert stores value for key. If key was already present, its previous value
// is returned and replaced is true.
func (m *Map[K, V]) Insert(key K, value V) (old V, replaced bool) {
	assert(m != nil, "Insert called on nil map")
	if m.root == nil {
		m.root = &terminalNode[K, V]{
			entries: []entry[K, V]{{key: key, value: value}},
		}
		m.height = 1
		m.count = 1
		return old, false
	}
	if m.full(m.root) {
		left, sep := m.splitNode(m.root)
		m.root = &internalNode[K, V]{
			first: left,
			seps:  []separator[K, V]{sep},
		}
		m.height++
		T().Debugf("beetree: root split, height is now %d", m.height)
	}
	v := insertVisitor[K, V]{m: m, key: key, value: value}
	m.accept(&v)
	return v.old, v.replaced
}
