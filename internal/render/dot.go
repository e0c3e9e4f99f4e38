// Package render turns finished automata into text for display. Renderers
// only read the automaton.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"subsetviz/internal/automaton"
)

// DOT prints a Graphviz digraph of a. Accepting states are double circles.
func DOT(w io.Writer, a *automaton.Automaton, title string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", strconv.Quote(title))
	fmt.Fprintln(bw, "    rankdir=LR;")
	for _, s := range a.States {
		shape := "circle"
		if a.IsAccepting(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    %s [shape=%s];\n", strconv.Quote(string(s)), shape)
	}
	for _, e := range a.Edges() {
		fmt.Fprintf(bw, "    %s -> %s [label=%s];\n",
			strconv.Quote(string(e.From)), strconv.Quote(string(e.To)), strconv.Quote(e.Label.String()))
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> %s;\n", strconv.Quote(string(a.Start)))
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
