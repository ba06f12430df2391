package dump

import (
	"io"
	"strconv"

	"github.com/JoelCourtney/beetree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the structure of m as a nested list:
//
//	<ul class="beetree">
//	  <li class="internal" data-node="1"><span class="keys">6 13</span>
//	    <ul><li class="terminal" data-node="2">…</li> … </ul>
//	  </li>
//	</ul>
//
// An empty map renders as an empty list.
func HTML[K, V any](m *beetree.Map[K, V], w io.Writer) error {
	err := html.Render(w, HTMLNode(m))
	if err != nil {
		tracer().Errorf("beetree HTML: %s", err.Error())
	}
	return err
}

// HTMLNode builds the list rendered by HTML as an html.Node tree, for
// callers who want to embed it into a larger document.
func HTMLNode[K, V any](m *beetree.Map[K, V]) *html.Node {
	top := element(atom.Ul, "beetree")
	items := make(map[int]*html.Node)
	m.Walk(func(node beetree.NodeView[K]) bool {
		class := "terminal"
		if !node.Terminal {
			class = "internal"
		}
		li := element(atom.Li, class)
		li.Attr = append(li.Attr, html.Attribute{Key: "data-node", Val: strconv.Itoa(node.ID)})
		span := element(atom.Span, "keys")
		span.AppendChild(&html.Node{Type: html.TextNode, Data: joinKeys(node.Keys)})
		li.AppendChild(span)
		items[node.ID] = li
		if node.Parent == 0 {
			top.AppendChild(li)
			return true
		}
		parent := items[node.Parent]
		sub := parent.LastChild
		if sub == nil || sub.DataAtom != atom.Ul {
			sub = element(atom.Ul, "")
			parent.AppendChild(sub)
		}
		sub.AppendChild(li)
		return true
	})
	return top
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
