package beetree

// cell is the single owner of a separator's value.
//
// The value is always held behind a pointer. Separators move inside their
// node's slice whenever a sibling is inserted or a node splits; the pointer
// keeps the value's address stable across those moves, so a handle returned
// by GetMut stays valid as long as the separator exists.
type cell[V any] struct {
	p *V
}

func newCell[V any](v V) cell[V] {
	return cell[V]{p: &v}
}

func (c cell[V]) get() V {
	assert(c.p != nil, "cell.get on empty cell")
	return *c.p
}

func (c cell[V]) ptr() *V {
	assert(c.p != nil, "cell.ptr on empty cell")
	return c.p
}

// set replaces the value in place and returns the previous one.
func (c cell[V]) set(v V) V {
	assert(c.p != nil, "cell.set on empty cell")
	old := *c.p
	*c.p = v
	return old
}

