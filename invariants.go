package beetree

import "fmt"

// Check validates structural tree invariants.
//
// It verifies strict key order within and across nodes, the separator
// invariant, uniform terminal depth, node occupancy and the entry count.
// It is meant to be used in tests and while debugging collaborating
// operations.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrInvalidConfig)
	}
	if normalizeNode[K, V](m.root) == nil {
		if m.height != 0 || m.count != 0 {
			return fmt.Errorf("%w: empty map must have height=0 and len=0", ErrInvariant)
		}
		return nil
	}
	if m.height <= 0 {
		return fmt.Errorf("%w: non-empty map must have height > 0", ErrInvariant)
	}
	entries, height, err := m.checkNode(m.root, nil, nil, true)
	if err != nil {
		return err
	}
	if height != m.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, m.height)
	}
	if entries != m.count {
		return fmt.Errorf("%w: entry count mismatch (%d != %d)", ErrInvariant, entries, m.count)
	}
	return nil
}

// checkNode validates subtree n, whose keys must lie strictly between lower
// and upper (nil means unbounded).
func (m *Map[K, V]) checkNode(n treeNode[K, V], lower, upper *K, isRoot bool) (entries int, height int, err error) {
	n = normalizeNode[K, V](n)
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	if n.size() > m.cfg.Fanout {
		return 0, 0, fmt.Errorf("%w: node holds %d entries, fanout is %d",
			ErrInvariant, n.size(), m.cfg.Fanout)
	}
	if !isRoot && n.size() == 0 {
		return 0, 0, fmt.Errorf("%w: empty non-root node", ErrInvariant)
	}
	inBounds := func(key K) bool {
		if lower != nil && m.cfg.Compare(*lower, key) >= 0 {
			return false
		}
		if upper != nil && m.cfg.Compare(key, *upper) >= 0 {
			return false
		}
		return true
	}
	if n.isLeaf() {
		leaf := n.(*terminalNode[K, V])
		for i := range leaf.entries {
			key := leaf.entries[i].key
			if i > 0 && m.cfg.Compare(leaf.entries[i-1].key, key) >= 0 {
				return 0, 0, fmt.Errorf("%w: terminal keys not strictly increasing at index %d", ErrInvariant, i)
			}
			if !inBounds(key) {
				return 0, 0, fmt.Errorf("%w: terminal key %v outside separator bounds", ErrInvariant, key)
			}
		}
		return len(leaf.entries), 1, nil
	}
	inner := n.(*internalNode[K, V])
	if len(inner.seps) == 0 {
		return 0, 0, fmt.Errorf("%w: internal node has no separators", ErrInvariant)
	}
	var total, childHeight int
	for i := 0; i < inner.children(); i++ {
		lo, hi := lower, upper
		if i > 0 {
			sep := &inner.seps[i-1]
			if sep.cell.p == nil {
				return 0, 0, fmt.Errorf("%w: separator %v has an empty cell", ErrInvariant, sep.key)
			}
			if !inBounds(sep.key) {
				return 0, 0, fmt.Errorf("%w: separator key %v outside parent bounds", ErrInvariant, sep.key)
			}
			if i > 1 && m.cfg.Compare(inner.seps[i-2].key, sep.key) >= 0 {
				return 0, 0, fmt.Errorf("%w: separator keys not strictly increasing at index %d", ErrInvariant, i-1)
			}
			lo = &sep.key
			total++ // the separator's own entry
		}
		if i < len(inner.seps) {
			hi = &inner.seps[i].key
		}
		cEntries, cHeight, cErr := m.checkNode(inner.child(i), lo, hi, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		total += cEntries
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariant)
		}
	}
	return total, childHeight + 1, nil
}
