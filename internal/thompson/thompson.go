// Package thompson lowers a regex syntax tree into an epsilon-NFA.
package thompson

import (
	"fmt"
	"slices"

	"subsetviz/internal/automaton"
	"subsetviz/internal/regex"
)

// frag is a sub-automaton: one start state and its accepting states. All
// fragments of one build share a single state allocator, so they never
// collide.
type frag struct {
	start     automaton.State
	accepting []automaton.State
}

type builder struct {
	nfa    *automaton.Automaton
	nextID int
}

func (b *builder) newState() automaton.State {
	s := automaton.State(fmt.Sprintf("q%d", b.nextID))
	b.nextID++
	b.nfa.AddState(s)
	return s
}

func (b *builder) epsilon(from automaton.State, to ...automaton.State) {
	b.nfa.Trans.Add(from, automaton.Epsilon, to...)
}

// Build runs Thompson's construction over root. States are named q0, q1, ...
// in allocation order.
func Build(root *regex.Node) *automaton.Automaton {
	b := &builder{nfa: automaton.New()}
	f := b.build(root)
	b.nfa.Start = f.start
	b.nfa.Accepting = f.accepting
	slices.SortFunc(b.nfa.Alphabet, automaton.CompareSymbols)
	return b.nfa
}

func (b *builder) build(n *regex.Node) frag {
	switch n.Kind {
	case regex.KLiteral:
		s, f := b.newState(), b.newState()
		b.nfa.Trans.Add(s, n.Sym, f)
		b.nfa.AddSymbol(n.Sym)
		return frag{start: s, accepting: []automaton.State{f}}
	case regex.KConcat:
		l := b.build(n.Left)
		r := b.build(n.Right)
		for _, a := range l.accepting {
			b.epsilon(a, r.start)
		}
		return frag{start: l.start, accepting: r.accepting}
	case regex.KUnion:
		l := b.build(n.Left)
		r := b.build(n.Right)
		s, f := b.newState(), b.newState()
		b.epsilon(s, l.start, r.start)
		for _, a := range l.accepting {
			b.epsilon(a, f)
		}
		for _, a := range r.accepting {
			b.epsilon(a, f)
		}
		return frag{start: s, accepting: []automaton.State{f}}
	case regex.KStar:
		x := b.build(n.Left)
		s, f := b.newState(), b.newState()
		b.epsilon(s, x.start, f)
		for _, a := range x.accepting {
			b.epsilon(a, x.start, f)
		}
		return frag{start: s, accepting: []automaton.State{f}}
	default:
		panic("thompson: unknown node kind")
	}
}
