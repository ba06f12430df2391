package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/JoelCourtney/beetree"
)

// Dot outputs the internal structure of a map in Graphviz DOT format.
//
// Internal nodes are drawn as filled records of separator keys, terminal
// nodes as boxes. Edges run from parent to child, left to right.
func Dot[K, V any](m *beetree.Map[K, V], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	m.Walk(func(node beetree.NodeView[K]) bool {
		label := joinKeys(node.Keys)
		if label == "" {
			label = "∅"
		}
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=%q %s];\n", node.ID, label, nodeDotStyles(node.Terminal))
		if node.Parent > 0 {
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", node.Parent, node.ID)
		}
		return true
	})
	out := []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	}
	for _, s := range out {
		if _, err := io.WriteString(w, s); err != nil {
			tracer().Errorf("beetree DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=record"
	}
	return s
}
