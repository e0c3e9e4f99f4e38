// Package definition reads and writes hand-authored automata:
//
//	# ends in 01
//	states: q0, q1, q2;
//	alphabet: 0, 1;
//	start: q0;
//	accept: q2;
//	q0 0 -> q0;
//	q0 1 -> q0, q1;
//	q1 1 -> q2;
//
// Clauses may appear in any order and repeat; repeated lists are merged.
// Epsilon moves are written with the symbol ε or eps. Names that are not
// plain words are double-quoted. states, alphabet, start and accept are
// reserved and cannot name a state.
package definition

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"subsetviz/internal/automaton"
)

var ErrDefinition = errors.New("bad automaton definition")

type file struct {
	Clauses []*clause `parser:"@@*"`
}

type clause struct {
	Pos lexer.Position

	States   []string `parser:"  'states' ':' (@Name | @String) (',' (@Name | @String))* ';'"`
	Alphabet []string `parser:"| 'alphabet' ':' @Name (',' @Name)* ';'"`
	Start    *string  `parser:"| 'start' ':' (@Name | @String) ';'"`
	Accept   *accept  `parser:"| @@"`
	Edge     *edge    `parser:"| @@"`
}

type accept struct {
	Keyword string   `parser:"@'accept' ':'"`
	States  []string `parser:"((@Name | @String) (',' (@Name | @String))*)? ';'"`
}

type edge struct {
	Pos lexer.Position

	From   string   `parser:"(@Name | @String)"`
	Symbol string   `parser:"@Name '->'"`
	To     []string `parser:"(@Name | @String) (',' (@Name | @String))* ';'"`
}

var defLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Name", Pattern: `[\p{L}\p{N}_]+`},
	{Name: "Punct", Pattern: `[:;,]`},
})

var parser = participle.MustBuild[file](
	participle.Lexer(defLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// Parse reads one definition. The result always passes Validate.
func Parse(filename, src string) (*automaton.Automaton, error) {
	f, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, err)
	}
	a := automaton.New()
	haveStart := false
	for _, c := range f.Clauses {
		switch {
		case c.States != nil:
			for _, s := range c.States {
				a.AddState(automaton.State(s))
			}
		case c.Alphabet != nil:
			for _, s := range c.Alphabet {
				sym, err := symbol(s)
				if err != nil {
					return nil, fmt.Errorf("%w: %s: %v", ErrDefinition, c.Pos, err)
				}
				if sym == automaton.Epsilon {
					return nil, fmt.Errorf("%w: %s: epsilon cannot be in the alphabet", ErrDefinition, c.Pos)
				}
				a.AddSymbol(sym)
			}
		case c.Start != nil:
			if haveStart {
				return nil, fmt.Errorf("%w: %s: start state given twice", ErrDefinition, c.Pos)
			}
			haveStart = true
			a.Start = automaton.State(*c.Start)
		case c.Accept != nil:
			for _, s := range c.Accept.States {
				a.AddAccepting(automaton.State(s))
			}
		case c.Edge != nil:
			sym, err := symbol(c.Edge.Symbol)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrDefinition, c.Edge.Pos, err)
			}
			for _, to := range c.Edge.To {
				a.Trans.Add(automaton.State(c.Edge.From), sym, automaton.State(to))
			}
		}
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: %s: no start state", ErrDefinition, filename)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDefinition, filename, err)
	}
	return a, nil
}

func symbol(s string) (automaton.Symbol, error) {
	if s == "eps" {
		return automaton.Epsilon, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("symbol %q is not a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return automaton.Symbol(r), nil
}
