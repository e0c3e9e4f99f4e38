package source

import (
	"errors"
	"testing"

	"subsetviz/internal/automaton"
)

func TestExamplesLoad(t *testing.T) {
	want := []string{"contains-101", "ends-in-01", "epsilon-nfa", "even-zeros", "starts-with-0"}
	names := ExampleNames()
	if len(names) != len(want) {
		t.Fatalf("examples %v", names)
	}
	for i, name := range names {
		if name != want[i] {
			t.Fatalf("examples %v", names)
		}
		a, err := Example(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := a.Validate(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}

func TestExampleLanguages(t *testing.T) {
	tests := []struct {
		name   string
		accept []string
		reject []string
	}{
		{"starts-with-0", []string{"0", "01", "0110"}, []string{"", "1", "10"}},
		{"ends-in-01", []string{"01", "1101", "0001"}, []string{"", "0", "10", "011"}},
		{"contains-101", []string{"101", "01010", "1101"}, []string{"", "100", "0110"}},
		{"even-zeros", []string{"", "1", "00", "1010"}, []string{"0", "000", "01"}},
		{"epsilon-nfa", []string{"a"}, []string{"", "b", "aa"}},
	}
	for _, tt := range tests {
		a, err := Example(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		for _, w := range tt.accept {
			if !a.Accepts(w) {
				t.Errorf("%s should accept %q", tt.name, w)
			}
		}
		for _, w := range tt.reject {
			if a.Accepts(w) {
				t.Errorf("%s should reject %q", tt.name, w)
			}
		}
	}
}

func TestExampleUnknown(t *testing.T) {
	for _, name := range []string{"nope", "", "../examples/even-zeros", "examples/even-zeros"} {
		if _, err := Example(name); !errors.Is(err, ErrUnknownExample) {
			t.Fatalf("%q: want ErrUnknownExample, got %v", name, err)
		}
	}
}

func TestExampleFreshCopy(t *testing.T) {
	a, _ := Example("even-zeros")
	a.Trans.Add("q0", '1', "q1")
	b, _ := Example("even-zeros")
	if got := b.Trans.Targets("q0", '1'); len(got) != 1 {
		t.Fatalf("example table mutated: %v", got)
	}
}

func TestFromStringBranching(t *testing.T) {
	nfa, err := FromString("ab")
	if err != nil {
		t.Fatal(err)
	}
	// a: q0 -> {q1, q0}; b: q1 -> {q2, q1}, q0 -> {q3, q0}
	if len(nfa.States) != 4 || nfa.Start != "q0" {
		t.Fatalf("states %v start %s", nfa.States, nfa.Start)
	}
	checks := []struct {
		from automaton.State
		sym  automaton.Symbol
		want []automaton.State
	}{
		{"q0", 'a', []automaton.State{"q1", "q0"}},
		{"q1", 'b', []automaton.State{"q2", "q1"}},
		{"q0", 'b', []automaton.State{"q3", "q0"}},
	}
	for _, c := range checks {
		got := nfa.Trans.Targets(c.from, c.sym)
		if len(got) != len(c.want) || got[0] != c.want[0] || got[1] != c.want[1] {
			t.Fatalf("%s --%s--> %v, want %v", c.from, c.sym, got, c.want)
		}
	}
	wantAcc := []automaton.State{"q2", "q1", "q3", "q0"}
	if len(nfa.Accepting) != len(wantAcc) {
		t.Fatalf("accepting %v", nfa.Accepting)
	}
	for i := range wantAcc {
		if nfa.Accepting[i] != wantAcc[i] {
			t.Fatalf("accepting %v", nfa.Accepting)
		}
	}
	if err := nfa.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestFromStringGrowth(t *testing.T) {
	nfa, err := FromString("0101")
	if err != nil {
		t.Fatal(err)
	}
	// 1 + 1 + 2 + 4 + 8
	if len(nfa.States) != 16 || len(nfa.Accepting) != 16 {
		t.Fatalf("%d states, %d accepting", len(nfa.States), len(nfa.Accepting))
	}
	if len(nfa.Alphabet) != 2 {
		t.Fatalf("alphabet %v", nfa.Alphabet)
	}
}

func TestFromStringEpsilon(t *testing.T) {
	nfa, err := FromString("aε")
	if err != nil {
		t.Fatal(err)
	}
	if len(nfa.Alphabet) != 1 || nfa.Alphabet[0] != 'a' {
		t.Fatalf("alphabet %v", nfa.Alphabet)
	}
	if got := nfa.Trans.Targets("q1", automaton.Epsilon); len(got) != 2 {
		t.Fatalf("q1 -ε-> %v", got)
	}
	if err := nfa.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestFromStringRejects(t *testing.T) {
	for _, s := range []string{"", "abc", "a b", "0101010101010"} {
		if _, err := FromString(s); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: want ErrInvalidInput, got %v", s, err)
		}
	}
}
