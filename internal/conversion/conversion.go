// Package conversion runs the whole pipeline: regex -> AST -> NFA -> DFA.
package conversion

import (
	"subsetviz/internal/automaton"
	"subsetviz/internal/regex"
	"subsetviz/internal/subset"
	"subsetviz/internal/thompson"
)

type Conversion struct {
	Expr string      // empty when the NFA did not come from a regex
	AST  *regex.Node // nil when the NFA did not come from a regex
	NFA  *automaton.Automaton
	DFA  *automaton.Automaton
	// Subsets maps each DFA state to the NFA states it stands for.
	Subsets map[automaton.State][]automaton.State
}

// FromRegex parses expr and converts it. Only parsing can fail, and a failed
// parse builds nothing.
func FromRegex(expr string, naming subset.Naming) (*Conversion, error) {
	ast, err := regex.Parse(expr)
	if err != nil {
		return nil, err
	}
	c := FromNFA(thompson.Build(ast), naming)
	c.Expr = expr
	c.AST = ast
	return c, nil
}

// FromNFA determinizes an NFA from any source.
func FromNFA(nfa *automaton.Automaton, naming subset.Naming) *Conversion {
	res := subset.Run(nfa, naming)
	return &Conversion{NFA: nfa, DFA: res.DFA, Subsets: res.Subsets}
}

// Accepts runs word through both automata.
func (c *Conversion) Accepts(word string) (nfa, dfa bool) {
	return c.NFA.Accepts(word), c.DFA.Accepts(word)
}
