package definition

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"subsetviz/internal/automaton"
)

var plainName = regexp.MustCompile(`^[\p{L}\p{N}_]+$`)

var reserved = map[string]bool{"states": true, "alphabet": true, "start": true, "accept": true}

func name(s automaton.State) string {
	if plainName.MatchString(string(s)) && !reserved[string(s)] {
		return string(s)
	}
	return strconv.Quote(string(s))
}

func names(states []automaton.State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = name(s)
	}
	return strings.Join(parts, ", ")
}

// Format writes a in the syntax Parse reads.
func Format(w io.Writer, a *automaton.Automaton) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("states: " + names(a.States) + ";\n")
	if len(a.Alphabet) > 0 {
		syms := make([]string, len(a.Alphabet))
		for i, sym := range a.Alphabet {
			syms[i] = sym.String()
		}
		bw.WriteString("alphabet: " + strings.Join(syms, ", ") + ";\n")
	}
	bw.WriteString("start: " + name(a.Start) + ";\n")
	bw.WriteString("accept: " + names(a.Accepting) + ";\n")

	// group destinations of one (state, symbol) pair on a single line
	var from automaton.State
	var sym automaton.Symbol
	var to []automaton.State
	flush := func() {
		if len(to) > 0 {
			bw.WriteString(name(from) + " " + sym.String() + " -> " + names(to) + ";\n")
		}
	}
	for _, e := range a.Edges() {
		if e.From != from || e.Label != sym {
			flush()
			from, sym, to = e.From, e.Label, nil
		}
		to = append(to, e.To)
	}
	flush()
	return bw.Flush()
}
