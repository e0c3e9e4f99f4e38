package source

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"subsetviz/internal/automaton"
)

// MaxStringLength bounds FromString; the NFA doubles its live states per symbol.
const MaxStringLength = 12

const stringAlphabet = "01abε"

// FromString builds the demonstration NFA for s. For every symbol each live
// state gains two moves on it: one to a fresh state and one back to itself.
// Both the fresh state and the old one stay live for the next symbol, and the
// states live at the end accept. ε produces epsilon moves and is kept out of
// the alphabet.
func FromString(s string) (*automaton.Automaton, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(s); n > MaxStringLength {
		return nil, fmt.Errorf("%w: %d symbols, at most %d allowed", ErrInvalidInput, n, MaxStringLength)
	}
	for i, r := range s {
		if !strings.ContainsRune(stringAlphabet, r) {
			return nil, fmt.Errorf("%w: %q at offset %d, use only 0, 1, a, b or ε", ErrInvalidInput, r, i)
		}
	}

	nfa := automaton.New()
	count := 0
	fresh := func() automaton.State {
		st := automaton.State(fmt.Sprintf("q%d", count))
		count++
		// fresh names are unique, so skip AddState's linear scan
		nfa.States = append(nfa.States, st)
		return st
	}

	nfa.Start = fresh()
	live := []automaton.State{nfa.Start}
	for _, r := range s {
		sym := automaton.Symbol(r)
		nfa.AddSymbol(sym)
		next := make([]automaton.State, 0, 2*len(live))
		for _, cur := range live {
			advance := fresh()
			nfa.Trans.Add(cur, sym, advance, cur)
			next = append(next, advance, cur)
		}
		live = next
	}
	for _, st := range live {
		nfa.AddAccepting(st)
	}
	return nfa, nil
}
