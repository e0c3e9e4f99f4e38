// Package subset converts an NFA into an equivalent DFA by subset construction.
//
// Every DFA state stands for the epsilon-closed set of NFA states it was built
// from. Two DFA states are the same iff those sets are equal; the set's
// member indices decide it, never the DFA state's display name.
package subset

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"subsetviz/internal/automaton"
)

// Naming picks the DFA name for the index-th discovered subset.
type Naming func(index int, subset []automaton.State) automaton.State

// SubsetNames names a DFA state after its subset, e.g. "q0,q1,q3".
func SubsetNames(_ int, subset []automaton.State) automaton.State {
	return automaton.State(joinStates(subset))
}

// Numbered names DFA states D0, D1, ... in discovery order.
func Numbered(index int, _ []automaton.State) automaton.State {
	return automaton.State(fmt.Sprintf("D%d", index))
}

type Result struct {
	DFA *automaton.Automaton
	// Subsets maps every DFA state to its canonical NFA subset.
	Subsets map[automaton.State][]automaton.State
}

// Determinize builds the DFA for nfa with states named by SubsetNames.
func Determinize(nfa *automaton.Automaton) *automaton.Automaton {
	return Run(nfa, SubsetNames).DFA
}

// EpsilonClosure returns the smallest epsilon-closed superset of states in
// canonical order.
func EpsilonClosure(nfa *automaton.Automaton, states []automaton.State) []automaton.State {
	d := newDeterminizer(nfa)
	set := bitset.New(uint(len(d.order)))
	for _, s := range states {
		set.Set(d.id(s))
	}
	return d.names(d.closure(set))
}

// Run performs the worklist exploration. Transitions whose target closure is
// empty are left out rather than routed to a dead state.
func Run(nfa *automaton.Automaton, name Naming) *Result {
	if name == nil {
		name = SubsetNames
	}
	d := newDeterminizer(nfa)
	dfa := automaton.New()
	for _, sym := range nfa.Alphabet {
		dfa.AddSymbol(sym)
	}
	res := &Result{DFA: dfa, Subsets: map[automaton.State][]automaton.State{}}

	type item struct {
		set  *bitset.BitSet
		name automaton.State
	}
	seen := map[string]automaton.State{}
	taken := map[automaton.State]bool{}
	register := func(set *bitset.BitSet) (automaton.State, bool) {
		key := d.key(set)
		if s, ok := seen[key]; ok {
			return s, false
		}
		subset := d.names(set)
		s := name(len(dfa.States), subset)
		// display names may clash when state names contain ","
		for taken[s] {
			s += "'"
		}
		taken[s] = true
		seen[key] = s
		dfa.States = append(dfa.States, s)
		res.Subsets[s] = subset
		if set.IntersectionCardinality(d.accept) > 0 {
			dfa.Accepting = append(dfa.Accepting, s)
		}
		return s, true
	}

	startSet := bitset.New(uint(len(d.order)))
	startSet.Set(d.id(nfa.Start))
	startSet = d.closure(startSet)
	dfa.Start, _ = register(startSet)
	queue := []item{{set: startSet, name: dfa.Start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range dfa.Alphabet {
			moved := d.move(cur.set, sym)
			if moved.None() {
				continue
			}
			target := d.closure(moved)
			to, fresh := register(target)
			if fresh {
				queue = append(queue, item{set: target, name: to})
			}
			dfa.Trans.Add(cur.name, sym, to)
		}
	}
	return res
}

func joinStates(states []automaton.State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}
