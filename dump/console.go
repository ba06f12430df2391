package dump

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/JoelCourtney/beetree"
	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleConfig controls the console listing.
type ConsoleConfig struct {
	// LineWidth is the width in fixed-width positions after which a node's
	// key list wraps onto a continuation line. Zero disables wrapping.
	LineWidth int
	// Context is used to measure the display width of keys. If nil,
	// uax11.LatinContext is used.
	Context *uax11.Context
	// Separator and Terminal color the keys of internal resp. terminal nodes.
	// Nil colors print plain keys.
	Separator *color.Color
	Terminal  *color.Color
	// Indent is the number of positions per tree level. Zero selects 2.
	Indent int
}

// ConfigFromTerminal is a simple helper for creating a console config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and turns on colors. Otherwise output is plain and not wrapped.
func ConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return config
	}
	config.Context = uax11.ContextFromEnvironment()
	config.Separator, config.Terminal = defaultPalette()
	if w, _, err := term.GetSize(fd); err != nil {
		config.LineWidth = 80
	} else {
		config.LineWidth = w
	}
	return config
}

func defaultPalette() (sep, leaf *color.Color) {
	sep = color.New(color.FgRed, color.Bold)
	leaf = color.New(color.FgBlue)
	// color disables itself for non-tty output; we already checked for a terminal
	sep.EnableColor()
	leaf.EnableColor()
	return sep, leaf
}

// Print lists the structure of m on stdout, using a config derived from the
// current terminal.
func Print[K, V any](m *beetree.Map[K, V]) error {
	return Console(m, os.Stdout, ConfigFromTerminal())
}

var setupGraphemes sync.Once

// Console writes an indented listing of m's nodes to w, one node per line
// (plus continuation lines if wrapping is on). Keys within a node are padded
// to a common display width.
//
//	#1 internal: 6  13
//	  #2 terminal: 0  1  2
//	  ...
func Console[K, V any](m *beetree.Map[K, V], w io.Writer, config *ConsoleConfig) error {
	if config == nil {
		config = &ConsoleConfig{}
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	indent := config.Indent
	if indent <= 0 {
		indent = 2
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	var err error
	out := func(s string, c *color.Color) {
		if err != nil {
			return
		}
		if c != nil {
			_, err = c.Fprint(w, s)
			return
		}
		_, err = io.WriteString(w, s)
	}
	m.Walk(func(node beetree.NodeView[K]) bool {
		labels := keyLabels(node.Keys)
		widths := make([]int, len(labels))
		colw := 0
		for i, l := range labels {
			widths[i] = uax11.StringWidth(grapheme.StringFromString(l), ctx)
			if widths[i] > colw {
				colw = widths[i]
			}
		}
		kind, c := "terminal: ", config.Terminal
		if !node.Terminal {
			kind, c = "internal: ", config.Separator
		}
		head := strings.Repeat(" ", node.Depth*indent) + "#" + strconv.Itoa(node.ID) + " " + kind
		out(head, nil)
		pos := len(head)
		for i, l := range labels {
			cell := colw + 2
			if config.LineWidth > 0 && i > 0 && pos+cell > config.LineWidth {
				out("\n", nil)
				out(strings.Repeat(" ", len(head)), nil)
				pos = len(head)
			}
			out(l, c)
			if i < len(labels)-1 {
				out(strings.Repeat(" ", cell-widths[i]), nil)
			}
			pos += cell
		}
		out("\n", nil)
		return err == nil
	})
	if err != nil {
		tracer().Errorf("beetree console: %s", err.Error())
	}
	return err
}
