package automaton

// Accepts reports whether some path of symbol and epsilon moves from Start
// consumes exactly word and ends in an accepting state.
func (a *Automaton) Accepts(word string) bool {
	cur := a.closure(map[State]bool{a.Start: true})
	for _, r := range word {
		next := map[State]bool{}
		for s := range cur {
			for _, to := range a.Trans.Targets(s, Symbol(r)) {
				next[to] = true
			}
		}
		if len(next) == 0 {
			return false
		}
		cur = a.closure(next)
	}
	for s := range cur {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}

func (a *Automaton) closure(set map[State]bool) map[State]bool {
	stack := make([]State, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range a.Trans.Targets(s, Epsilon) {
			if !set[to] {
				set[to] = true
				stack = append(stack, to)
			}
		}
	}
	return set
}
