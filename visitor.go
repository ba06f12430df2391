package beetree

import "slices"

// motion is the directive a visitor returns at an internal node.
type motion struct {
	done  bool
	index int
}

// finish stops the walk at the current internal node.
var finish = motion{done: true}

// descend continues the walk into child i of the current internal node.
func descend(i int) motion {
	return motion{index: i}
}

// visitor describes an operation's decisions at each level of the tree.
//
// visitInternal receives the current internal node and either resolves the
// operation there (finish) or names the child to continue with. visitLeaf
// receives the terminal node reached at the bottom of the walk; nothing is
// visited after it.
//
// A visitor may mutate the nodes it is handed, as long as sort order,
// uniqueness and the separator invariant hold when it returns.
type visitor[K, V any] interface {
	visitInternal(n *internalNode[K, V]) motion
	visitLeaf(n *terminalNode[K, V])
}

// accept drives v from the root down to a conclusion.
//
// Every visited level gets exactly one call. The engine itself never changes
// tree shape; it re-reads the child after visitInternal returns, so a visitor
// may replace the child it is about to descend into.
func (m *Map[K, V]) accept(v visitor[K, V]) {
	cur := normalizeNode[K, V](m.root)
	for cur != nil {
		switch n := cur.(type) {
		case *internalNode[K, V]:
			mv := v.visitInternal(n)
			if mv.done {
				return
			}
			assert(mv.index >= 0 && mv.index < n.children(), "visitor descended out of range")
			cur = n.child(mv.index)
		case *terminalNode[K, V]:
			v.visitLeaf(n)
			return
		default:
			panic("unknown tree node type")
		}
	}
}

// searchSeparators and searchEntries share one tie-break policy over strictly
// increasing keys: an exact match returns its index and found=true, otherwise
// the index of the first key strictly greater than key. That index is the
// insertion position and, at internal nodes, the child number to descend into.
func (m *Map[K, V]) searchSeparators(n *internalNode[K, V], key K) (int, bool) {
	return slices.BinarySearchFunc(n.seps, key, func(s separator[K, V], k K) int {
		return m.cfg.Compare(s.key, k)
	})
}

func (m *Map[K, V]) searchEntries(n *terminalNode[K, V], key K) (int, bool) {
	return slices.BinarySearchFunc(n.entries, key, func(e entry[K, V], k K) int {
		return m.cfg.Compare(e.key, k)
	})
}
