/*
Package beetree implements an in-memory sorted map backed by a multi-level
search tree with configurable fanout.

The tree distinguishes internal nodes, holding ordered separators, from
terminal nodes, holding ordered key/value entries. A separator carries the
minimum key of the subtree below it together with that key's value, so a
lookup for a subtree's minimum key resolves at the separator's level without
descending further.

Operations are written as visitors. A visitor decides what to do at an
internal node (stop, or descend into one of its children) and what to do at
a terminal node; the traversal engine walks from the root and drives it.
Get, GetMut and Insert are visitors over the same engine.

Current status:
  - node model with separator short-circuit,
  - single-owner value cells for separators,
  - visitor protocol and traversal engine,
  - point lookup (Get) and mutable lookup (GetMut),
  - insertion with top-down node splitting,
  - invariant checker (Check) and structural walk (Walk) for debugging,
  - operation stubs for Delete and GetBefore.

A Map is not safe for concurrent use. Callers must not use a pointer
obtained from GetMut after a subsequent Insert, and must not hold it while
another goroutine accesses the same Map.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package beetree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
