/*
Package dump renders the node structure of a beetree.Map for debugging.

Three renderings are available: Graphviz DOT (Dot), an indented console
listing with colored keys (Console), and a nested HTML list (HTML). All of
them are built on beetree.Map.Walk and show separator keys at the level
they live on, so they are useful to inspect splits and the separator
short-circuit.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package dump

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'beetree'
func tracer() tracing.Trace {
	return tracing.Select("beetree")
}

func keyLabels[K any](keys []K) []string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = fmt.Sprint(k)
	}
	return labels
}

func joinKeys[K any](keys []K) string {
	return strings.Join(keyLabels(keys), " ")
}
