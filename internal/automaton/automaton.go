// Package automaton holds the representation shared by NFAs and DFAs.
package automaton

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// State is an opaque state identifier.
type State string

// Symbol is a single input character. Epsilon marks a move that consumes no input.
type Symbol rune

const Epsilon Symbol = 'ε'

func (s Symbol) String() string { return string(rune(s)) }

var ErrInvalid = errors.New("invalid automaton")

// Transitions maps state -> symbol -> ordered set of destinations.
type Transitions map[State]map[Symbol][]State

// Add records from --sym--> to. Missing rows are created on first write and a
// destination already present is not added twice.
func (t Transitions) Add(from State, sym Symbol, to ...State) {
	row, ok := t[from]
	if !ok {
		row = map[Symbol][]State{}
		t[from] = row
	}
	dst := row[sym]
	for _, s := range to {
		if !slices.Contains(dst, s) {
			dst = append(dst, s)
		}
	}
	row[sym] = dst
}

func (t Transitions) Targets(from State, sym Symbol) []State {
	return t[from][sym]
}

// Symbols returns the symbols leaving from in canonical order (epsilon last).
func (t Transitions) Symbols(from State) []Symbol {
	row := t[from]
	out := make([]Symbol, 0, len(row))
	for sym := range row {
		out = append(out, sym)
	}
	slices.SortFunc(out, CompareSymbols)
	return out
}

// Automaton is an NFA or, when IsDeterministic holds, a DFA.
type Automaton struct {
	States    []State
	Alphabet  []Symbol
	Trans     Transitions
	Start     State
	Accepting []State
}

func New() *Automaton {
	return &Automaton{Trans: Transitions{}}
}

func (a *Automaton) AddState(s State) {
	if !slices.Contains(a.States, s) {
		a.States = append(a.States, s)
	}
}

// AddSymbol extends the alphabet. Epsilon is never part of an alphabet.
func (a *Automaton) AddSymbol(sym Symbol) {
	if sym == Epsilon || slices.Contains(a.Alphabet, sym) {
		return
	}
	a.Alphabet = append(a.Alphabet, sym)
}

func (a *Automaton) AddAccepting(s State) {
	if !slices.Contains(a.Accepting, s) {
		a.Accepting = append(a.Accepting, s)
	}
}

func (a *Automaton) IsAccepting(s State) bool { return slices.Contains(a.Accepting, s) }

func (a *Automaton) HasState(s State) bool { return slices.Contains(a.States, s) }

// Validate reports the first broken structural invariant.
func (a *Automaton) Validate() error {
	if !a.HasState(a.Start) {
		return fmt.Errorf("%w: start state %q not declared", ErrInvalid, a.Start)
	}
	if slices.Contains(a.Alphabet, Epsilon) {
		return fmt.Errorf("%w: epsilon in alphabet", ErrInvalid)
	}
	for _, s := range a.Accepting {
		if !a.HasState(s) {
			return fmt.Errorf("%w: accepting state %q not declared", ErrInvalid, s)
		}
	}
	for _, from := range sortedKeys(a.Trans) {
		if !a.HasState(from) {
			return fmt.Errorf("%w: transition source %q not declared", ErrInvalid, from)
		}
		for _, sym := range a.Trans.Symbols(from) {
			if sym != Epsilon && !slices.Contains(a.Alphabet, sym) {
				return fmt.Errorf("%w: symbol %q on %q not in alphabet", ErrInvalid, sym, from)
			}
			for _, to := range a.Trans[from][sym] {
				if !a.HasState(to) {
					return fmt.Errorf("%w: transition target %q not declared", ErrInvalid, to)
				}
			}
		}
	}
	return nil
}

// IsDeterministic reports whether there are no epsilon moves and every
// (state, symbol) pair has at most one destination.
func (a *Automaton) IsDeterministic() bool {
	for _, row := range a.Trans {
		for sym, dst := range row {
			if sym == Epsilon && len(dst) > 0 {
				return false
			}
			if len(dst) > 1 {
				return false
			}
		}
	}
	return true
}

// Next steps a deterministic automaton.
func (a *Automaton) Next(from State, sym Symbol) (State, bool) {
	dst := a.Trans.Targets(from, sym)
	if len(dst) == 0 {
		return "", false
	}
	return dst[0], true
}

// Edge is one flattened transition, the shape handed to renderers.
type Edge struct {
	From  State  `json:"from"`
	To    State  `json:"to"`
	Label Symbol `json:"label"`
}

// Edges flattens the transition relation. Sources follow States order (any
// undeclared source after them in natural order), labels follow CompareSymbols
// and destinations keep insertion order.
func (a *Automaton) Edges() []Edge {
	var out []Edge
	seen := map[State]bool{}
	emit := func(from State) {
		seen[from] = true
		for _, sym := range a.Trans.Symbols(from) {
			for _, to := range a.Trans[from][sym] {
				out = append(out, Edge{From: from, To: to, Label: sym})
			}
		}
	}
	for _, s := range a.States {
		if !seen[s] {
			emit(s)
		}
	}
	for _, s := range sortedKeys(a.Trans) {
		if !seen[s] {
			emit(s)
		}
	}
	return out
}

/* ----------------------------- ordering ----------------------------- */

// CompareSymbols orders symbols by code point with epsilon last.
func CompareSymbols(x, y Symbol) int {
	switch {
	case x == y:
		return 0
	case x == Epsilon:
		return 1
	case y == Epsilon:
		return -1
	case x < y:
		return -1
	default:
		return 1
	}
}

// CompareStates is a natural order: names sharing a prefix compare by their
// numeric suffix, so q2 sorts before q10.
func CompareStates(x, y State) int {
	px, nx, okx := splitNumber(string(x))
	py, ny, oky := splitNumber(string(y))
	if okx && oky && px == py && nx != ny {
		if nx < ny {
			return -1
		}
		return 1
	}
	return strings.Compare(string(x), string(y))
}

func SortStates(s []State) { slices.SortFunc(s, CompareStates) }

func splitNumber(s string) (string, uint64, bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, 0, false
	}
	n, err := strconv.ParseUint(s[i:], 10, 64)
	if err != nil {
		return s, 0, false
	}
	return s[:i], n, true
}

func sortedKeys(t Transitions) []State {
	out := make([]State, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	SortStates(out)
	return out
}
