package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"subsetviz/internal/automaton"
)

// Table prints a transition table: one row per state, one column per symbol
// (plus ε when any epsilon move exists). The start row is marked "->" and
// accepting rows "*". With subsets, a last column shows each DFA state's NFA
// states.
func Table(w io.Writer, a *automaton.Automaton, subsets map[automaton.State][]automaton.State) error {
	cols := append([]automaton.Symbol(nil), a.Alphabet...)
	for _, row := range a.Trans {
		if len(row[automaton.Epsilon]) > 0 {
			cols = append(cols, automaton.Epsilon)
			break
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := []string{"", "state"}
	for _, sym := range cols {
		header = append(header, sym.String())
	}
	if subsets != nil {
		header = append(header, "subset")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, s := range a.States {
		mark := ""
		if s == a.Start {
			mark = "->"
		}
		if a.IsAccepting(s) {
			mark += "*"
		}
		row := []string{mark, string(s)}
		for _, sym := range cols {
			dst := a.Trans.Targets(s, sym)
			if len(dst) == 0 {
				row = append(row, "-")
				continue
			}
			row = append(row, "{"+join(dst)+"}")
		}
		if subsets != nil {
			row = append(row, "{"+join(subsets[s])+"}")
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func join(states []automaton.State) string {
	return strings.Join(strs(states), ",")
}
