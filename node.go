package beetree

type treeNode[K, V any] interface {
	isLeaf() bool
	size() int
}

// entry is a key/value pair stored in a terminal node.
type entry[K, V any] struct {
	key   K
	value V
}

// separator is an internal node entry. key is the minimum key of the subtree
// made up of the separator and its child; the value for key is owned by the
// cell and is not repeated anywhere inside child.
type separator[K, V any] struct {
	key   K
	cell  cell[V]
	child treeNode[K, V]
}

type terminalNode[K, V any] struct {
	// entries are sorted strictly increasing by key.
	entries []entry[K, V]
}

func (l *terminalNode[K, V]) isLeaf() bool { return true }
func (l *terminalNode[K, V]) size() int    { return len(l.entries) }

type internalNode[K, V any] struct {
	// first holds all keys less than seps[0].key.
	first treeNode[K, V]
	// seps are sorted strictly increasing by key. seps[i].child holds the keys
	// strictly between seps[i].key and seps[i+1].key.
	seps []separator[K, V]
}

func (n *internalNode[K, V]) isLeaf() bool { return false }
func (n *internalNode[K, V]) size() int    { return len(n.seps) }

// children returns the number of child subtrees, which is one more than the
// number of separators.
func (n *internalNode[K, V]) children() int {
	return len(n.seps) + 1
}

// child returns child subtree i. Child 0 is the leading child, child i > 0
// hangs off separator i-1.
func (n *internalNode[K, V]) child(i int) treeNode[K, V] {
	assert(i >= 0 && i <= len(n.seps), "child index out of range")
	if i == 0 {
		return n.first
	}
	return n.seps[i-1].child
}

func (n *internalNode[K, V]) setChild(i int, c treeNode[K, V]) {
	assert(i >= 0 && i <= len(n.seps), "setChild index out of range")
	if i == 0 {
		n.first = c
		return
	}
	n.seps[i-1].child = c
}

// normalizeNode removes typed-nil interface wrappers.
func normalizeNode[K, V any](n treeNode[K, V]) treeNode[K, V] {
	switch v := n.(type) {
	case nil:
		return nil
	case *terminalNode[K, V]:
		if v == nil {
			return nil
		}
	case *internalNode[K, V]:
		if v == nil {
			return nil
		}
	}
	return n
}
