package beetree

// NodeView is a read-only snapshot of one tree node, handed out by Walk for
// debugging output.
type NodeView[K any] struct {
	ID       int  // pre-order number, starting at 1
	Parent   int  // ID of the parent node, 0 for the root
	Depth    int  // 0 for the root
	Terminal bool // true for terminal nodes
	// Keys are the node's keys in order. For internal nodes these are the
	// separator keys; child i sits left of Keys[i].
	Keys []K
}

// Walk visits every node in pre-order, children left to right.
//
// Walk stops early if fn returns false. It is not an ordered iteration over
// entries: separator keys appear at their own level.
func (m *Map[K, V]) Walk(fn func(node NodeView[K]) bool) {
	if m == nil || fn == nil || normalizeNode[K, V](m.root) == nil {
		return
	}
	id := 0
	m.walkNode(m.root, 0, 0, &id, fn)
}

func (m *Map[K, V]) walkNode(n treeNode[K, V], parent, depth int, id *int, fn func(NodeView[K]) bool) bool {
	assert(n != nil, "walkNode called with nil node")
	*id++
	view := NodeView[K]{
		ID:       *id,
		Parent:   parent,
		Depth:    depth,
		Terminal: n.isLeaf(),
	}
	if n.isLeaf() {
		leaf := n.(*terminalNode[K, V])
		view.Keys = make([]K, len(leaf.entries))
		for i, e := range leaf.entries {
			view.Keys[i] = e.key
		}
		return fn(view)
	}
	inner := n.(*internalNode[K, V])
	view.Keys = make([]K, len(inner.seps))
	for i, s := range inner.seps {
		view.Keys[i] = s.key
	}
	if !fn(view) {
		return false
	}
	self := view.ID
	for i := 0; i < inner.children(); i++ {
		if !m.walkNode(inner.child(i), self, depth+1, id, fn) {
			return false
		}
	}
	return true
}
