package beetree

// insertAt inserts values into a slice at idx, shifting the tail right.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	if len(values) == 0 {
		return src
	}
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// full reports whether n cannot take another entry without exceeding the
// fanout bound.
func (m *Map[K, V]) full(n treeNode[K, V]) bool {
	return n.size() >= m.cfg.Fanout
}

// splitNode splits a full node around its middle entry. The middle entry is
// returned as a separator whose child is the right half; the left half keeps
// the lower entries.
func (m *Map[K, V]) splitNode(n treeNode[K, V]) (left treeNode[K, V], promoted separator[K, V]) {
	switch n := n.(type) {
	case *terminalNode[K, V]:
		return m.splitTerminal(n)
	case *internalNode[K, V]:
		return m.splitInternal(n)
	default:
		panic("unknown tree node type")
	}
}

func (m *Map[K, V]) splitTerminal(leaf *terminalNode[K, V]) (*terminalNode[K, V], separator[K, V]) {
	assert(leaf != nil, "splitTerminal called with nil leaf")
	n := len(leaf.entries)
	assert(n >= MinFanout, "splitTerminal called on undersized leaf")
	mid := n / 2
	left := &terminalNode[K, V]{
		entries: append([]entry[K, V](nil), leaf.entries[:mid]...),
	}
	right := &terminalNode[K, V]{
		entries: append([]entry[K, V](nil), leaf.entries[mid+1:]...),
	}
	sep := separator[K, V]{
		key:   leaf.entries[mid].key,
		cell:  newCell(leaf.entries[mid].value),
		child: right,
	}
	T().Debugf("beetree: split terminal of %d entries at %v", n, sep.key)
	return left, sep
}

func (m *Map[K, V]) splitInternal(inner *internalNode[K, V]) (*internalNode[K, V], separator[K, V]) {
	assert(inner != nil, "splitInternal called with nil inner node")
	n := len(inner.seps)
	assert(n >= MinFanout, "splitInternal called on undersized node")
	mid := n / 2
	left := &internalNode[K, V]{
		first: inner.first,
		seps:  append([]separator[K, V](nil), inner.seps[:mid]...),
	}
	right := &internalNode[K, V]{
		first: inner.seps[mid].child,
		seps:  append([]separator[K, V](nil), inner.seps[mid+1:]...),
	}
	sep := separator[K, V]{
		key:   inner.seps[mid].key,
		cell:  inner.seps[mid].cell,
		child: right,
	}
	T().Debugf("beetree: split internal node of %d separators at %v", n, sep.key)
	return left, sep
}
