package subset

import (
	"math"
	"strings"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/require"

	"subsetviz/internal/automaton"
	"subsetviz/internal/regex"
	"subsetviz/internal/thompson"
)

func nfaFor(t *testing.T, expr string) *automaton.Automaton {
	t.Helper()
	n, err := regex.Parse(expr)
	require.NoError(t, err)
	return thompson.Build(n)
}

// words enumerates every word over alpha up to length max.
func words(alpha []automaton.Symbol, max int) []string {
	out := []string{""}
	layer := []string{""}
	for i := 0; i < max; i++ {
		var next []string
		for _, w := range layer {
			for _, a := range alpha {
				next = append(next, w+string(rune(a)))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// dfaAccepts walks the single deterministic path.
func dfaAccepts(dfa *automaton.Automaton, w string) bool {
	cur := dfa.Start
	for _, r := range w {
		next, ok := dfa.Next(cur, automaton.Symbol(r))
		if !ok {
			return false
		}
		cur = next
	}
	return dfa.IsAccepting(cur)
}

func TestAcceptanceExamples(t *testing.T) {
	tests := []struct {
		expr   string
		accept []string
		reject []string
	}{
		{"a*b", []string{"b", "ab", "aab"}, []string{"a", "ba"}},
		{"ab|ba", []string{"ab", "ba"}, []string{"aa", "abba"}},
		{"(0|1)*11", []string{"11", "011", "101011"}, []string{"1", "10"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			nfa := nfaFor(t, tt.expr)
			dfa := Determinize(nfa)
			require.True(t, dfa.IsDeterministic())
			require.NoError(t, dfa.Validate())
			for _, w := range tt.accept {
				require.True(t, nfa.Accepts(w), "nfa %q", w)
				require.True(t, dfaAccepts(dfa, w), "dfa %q", w)
			}
			for _, w := range tt.reject {
				require.False(t, nfa.Accepts(w), "nfa %q", w)
				require.False(t, dfaAccepts(dfa, w), "dfa %q", w)
			}
		})
	}
}

func TestEquivalenceAgainstRegexp2(t *testing.T) {
	for _, expr := range []string{
		"a*b", "ab|ba", "(0|1)*11", "(ab|a)*b", "a(b|a)*|b*", "((0|1)(0|1))*", "(a*b*)*a",
	} {
		t.Run(expr, func(t *testing.T) {
			nfa := nfaFor(t, expr)
			dfa := Determinize(nfa)
			require.True(t, dfa.IsDeterministic())
			oracle := regexp2.MustCompile(`^(?:`+expr+`)$`, regexp2.None)
			for _, w := range words(nfa.Alphabet, 6) {
				want, err := oracle.MatchString(w)
				require.NoError(t, err)
				require.Equal(t, want, nfa.Accepts(w), "nfa on %q", w)
				require.Equal(t, want, dfaAccepts(dfa, w), "dfa on %q", w)
			}
		})
	}
}

func TestEpsilonClosureIdempotent(t *testing.T) {
	nfa := nfaFor(t, "(a|b)*ab(a*|b)")
	for _, s := range nfa.States {
		once := EpsilonClosure(nfa, []automaton.State{s})
		require.Contains(t, once, s)
		require.Equal(t, once, EpsilonClosure(nfa, once))
	}
	all := EpsilonClosure(nfa, nfa.States)
	require.Equal(t, len(nfa.States), len(all))
}

func TestEpsilonClosureCanonical(t *testing.T) {
	// a* : q2 -ε-> {q0,q3}
	nfa := nfaFor(t, "a*")
	got := EpsilonClosure(nfa, []automaton.State{"q2", "q2"})
	require.Equal(t, []automaton.State{"q0", "q2", "q3"}, got)
	require.Empty(t, EpsilonClosure(nfa, nil))
}

func TestSubsetNaming(t *testing.T) {
	nfa := nfaFor(t, "a*b")
	res := Run(nfa, SubsetNames)
	for s, sub := range res.Subsets {
		parts := make([]string, len(sub))
		for i, q := range sub {
			parts[i] = string(q)
		}
		require.Equal(t, strings.Join(parts, ","), string(s))
	}
	require.Equal(t, EpsilonClosure(nfa, []automaton.State{nfa.Start}), res.Subsets[res.DFA.Start])

	num := Run(nfa, Numbered)
	require.Equal(t, automaton.State("D0"), num.DFA.Start)
	require.Len(t, num.DFA.States, len(res.DFA.States))
	require.Len(t, num.DFA.Edges(), len(res.DFA.Edges()))
	for i, s := range num.DFA.States {
		require.Equal(t, Numbered(i, nil), s)
		require.Equal(t, res.Subsets[res.DFA.States[i]], num.Subsets[s])
	}
}

func TestNoReachableAccepting(t *testing.T) {
	nfa := automaton.New()
	for _, s := range []automaton.State{"q0", "q1", "q2"} {
		nfa.AddState(s)
	}
	nfa.AddSymbol('0')
	nfa.AddSymbol('1')
	nfa.Start = "q0"
	nfa.AddAccepting("q2") // unreachable
	nfa.Trans.Add("q0", '0', "q0", "q1")
	nfa.Trans.Add("q1", '1', "q0")

	dfa := Determinize(nfa)
	require.Empty(t, dfa.Accepting)
	require.NotEmpty(t, dfa.States)
	require.True(t, dfa.IsDeterministic())
}

func TestDeadTransitionsOmitted(t *testing.T) {
	dfa := Determinize(nfaFor(t, "ab"))
	// the start state has no b-move, and no explicit reject state exists
	_, ok := dfa.Next(dfa.Start, 'b')
	require.False(t, ok)
	for _, s := range dfa.States {
		require.NotEmpty(t, s)
	}
	require.Len(t, dfa.States, 3)
}

func TestStateCountBounded(t *testing.T) {
	for _, expr := range []string{"(a|b)*a(a|b)(a|b)", "((a|b)*|ab)*", "a"} {
		nfa := nfaFor(t, expr)
		dfa := Determinize(nfa)
		bound := math.Pow(2, float64(len(nfa.States)))
		require.LessOrEqual(t, float64(len(dfa.States)), bound)
	}
}

func TestHandBuiltEpsilonNFA(t *testing.T) {
	// q0 -ε-> q1 -a-> q2
	nfa := automaton.New()
	for _, s := range []automaton.State{"q0", "q1", "q2"} {
		nfa.AddState(s)
	}
	nfa.AddSymbol('a')
	nfa.AddSymbol('b')
	nfa.Start = "q0"
	nfa.AddAccepting("q2")
	nfa.Trans.Add("q0", automaton.Epsilon, "q1")
	nfa.Trans.Add("q1", 'a', "q2")

	dfa := Determinize(nfa)
	require.Equal(t, automaton.State("q0,q1"), dfa.Start)
	require.Equal(t, []automaton.State{"q0,q1", "q2"}, dfa.States)
	require.Equal(t, []automaton.State{"q2"}, dfa.Accepting)
	require.Equal(t, []automaton.Edge{{From: "q0,q1", To: "q2", Label: 'a'}}, dfa.Edges())
}

func TestCommaInStateName(t *testing.T) {
	// {"a,b"} and {a,b} are different subsets even though their names join alike
	nfa := automaton.New()
	for _, s := range []automaton.State{"s", "a", "b", "a,b"} {
		nfa.AddState(s)
	}
	nfa.AddSymbol('x')
	nfa.AddSymbol('y')
	nfa.Start = "s"
	nfa.AddAccepting("a")
	nfa.Trans.Add("s", 'x', "a,b")
	nfa.Trans.Add("s", 'y', "a", "b")

	for _, naming := range []Naming{Numbered, SubsetNames} {
		res := Run(nfa, naming)
		dfa := res.DFA
		require.Len(t, dfa.States, 3)
		require.Len(t, dfa.Accepting, 1)
		require.NoError(t, dfa.Validate())

		x, ok := dfa.Next(dfa.Start, 'x')
		require.True(t, ok)
		y, ok := dfa.Next(dfa.Start, 'y')
		require.True(t, ok)
		require.NotEqual(t, x, y)
		require.Equal(t, []automaton.State{"a,b"}, res.Subsets[x])
		require.Equal(t, []automaton.State{"a", "b"}, res.Subsets[y])

		for _, w := range []string{"x", "y", "", "xy"} {
			require.Equal(t, nfa.Accepts(w), dfaAccepts(dfa, w), "on %q", w)
		}
	}
}
