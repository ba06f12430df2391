package beetree

// getVisitor looks up key and records a pointer to its value, either inside a
// separator's cell or inside a terminal entry.
type getVisitor[K, V any] struct {
	m      *Map[K, V]
	key    K
	result *V
}

func (v *getVisitor[K, V]) visitInternal(n *internalNode[K, V]) motion {
	i, found := v.m.searchSeparators(n, v.key)
	if found {
		v.result = n.seps[i].cell.ptr()
		return finish
	}
	return descend(i)
}

func (v *getVisitor[K, V]) visitLeaf(n *terminalNode[K, V]) {
	if i, found := v.m.searchEntries(n, v.key); found {
		v.result = &n.entries[i].value
	}
}

// Get returns the value stored for key. The boolean is false if key is not
// present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v := getVisitor[K, V]{m: m, key: key}
	m.accept(&v)
	if v.result == nil {
		var zero V
		return zero, false
	}
	return *v.result, true
}

// GetMut returns a pointer to the value stored for key, through which the
// value may be updated in place. It returns nil and false if key is not
// present.
//
// The pointer must not be used after the next Insert on m, which may move
// terminal entries.
func (m *Map[K, V]) GetMut(key K) (*V, bool) {
	if m == nil {
		return nil, false
	}
	v := getVisitor[K, V]{m: m, key: key}
	m.accept(&v)
	return v.result, v.result != nil
}
