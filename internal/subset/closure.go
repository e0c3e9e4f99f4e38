package subset

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"subsetviz/internal/automaton"
)

// determinizer indexes NFA states so state sets can live in bitsets. It is
// private to one call; nothing is shared between calls.
type determinizer struct {
	nfa    *automaton.Automaton
	order  []automaton.State
	index  map[automaton.State]uint
	single map[uint]*bitset.BitSet // memoised closures of one state
	accept *bitset.BitSet
}

func newDeterminizer(nfa *automaton.Automaton) *determinizer {
	d := &determinizer{
		nfa:    nfa,
		index:  map[automaton.State]uint{},
		single: map[uint]*bitset.BitSet{},
	}
	// transitions may mention states missing from States; index them too
	var all []automaton.State
	all = append(all, nfa.States...)
	all = append(all, nfa.Start)
	for from, row := range nfa.Trans {
		all = append(all, from)
		for _, dst := range row {
			all = append(all, dst...)
		}
	}
	automaton.SortStates(all)
	for _, s := range all {
		d.id(s)
	}
	d.accept = bitset.New(uint(len(d.order)))
	for _, s := range nfa.Accepting {
		d.accept.Set(d.id(s))
	}
	return d
}

func (d *determinizer) id(s automaton.State) uint {
	if i, ok := d.index[s]; ok {
		return i
	}
	i := uint(len(d.order))
	d.index[s] = i
	d.order = append(d.order, s)
	return i
}

func (d *determinizer) names(set *bitset.BitSet) []automaton.State {
	out := make([]automaton.State, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, d.order[i])
	}
	// ids handed out after construction are not in canonical position
	automaton.SortStates(out)
	return out
}

// key identifies a set by its member indices, which are fixed for one call.
func (d *determinizer) key(set *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// closure unions the memoised single-state closures of every member.
func (d *determinizer) closure(set *bitset.BitSet) *bitset.BitSet {
	out := set.Clone()
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out.InPlaceUnion(d.closureOf(i))
	}
	return out
}

func (d *determinizer) closureOf(i uint) *bitset.BitSet {
	if c, ok := d.single[i]; ok {
		return c
	}
	c := bitset.New(uint(len(d.order)))
	c.Set(i)
	stack := []uint{i}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range d.nfa.Trans.Targets(d.order[top], automaton.Epsilon) {
			j := d.id(to)
			if !c.Test(j) {
				c.Set(j)
				stack = append(stack, j)
			}
		}
	}
	d.single[i] = c
	return c
}

func (d *determinizer) move(set *bitset.BitSet, sym automaton.Symbol) *bitset.BitSet {
	out := bitset.New(uint(len(d.order)))
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		for _, to := range d.nfa.Trans.Targets(d.order[i], sym) {
			out.Set(d.id(to))
		}
	}
	return out
}
