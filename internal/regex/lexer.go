package regex

import (
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"subsetviz/internal/automaton"
)

type tokenType int

const (
	tChar   tokenType = iota // literal symbol
	tLParen                  // (
	tRParen                  // )
	tStar                    // *
	tUnion                   // |
	tConcat                  // inserted, never scanned
)

func (t tokenType) String() string {
	switch t {
	case tChar:
		return "symbol"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tStar:
		return "'*'"
	case tUnion:
		return "'|'"
	case tConcat:
		return "concatenation"
	default:
		return "?"
	}
}

type token struct {
	typ tokenType
	ch  automaton.Symbol // for tChar
	pos int              // byte offset in the expression
}

var (
	lexOnce sync.Once
	lex     *lexmachine.Lexer
	lexErr  error
)

func compiledLexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`[a-z01]`), tokAction(tChar))
		l.Add([]byte(`[(]`), tokAction(tLParen))
		l.Add([]byte(`[)]`), tokAction(tRParen))
		l.Add([]byte(`[*]`), tokAction(tStar))
		l.Add([]byte(`[|]`), tokAction(tUnion))
		lexErr = l.Compile()
		lex = l
	})
	return lex, lexErr
}

func tokAction(typ tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		tok := token{typ: typ, pos: m.TC}
		if typ == tChar {
			r, _ := utf8.DecodeRune(m.Bytes)
			tok.ch = automaton.Symbol(r)
		}
		return tok, nil
	}
}

// tokenize scans expr and inserts explicit concatenation between a token that
// can end an operand and a token that can start one.
func tokenize(expr string) ([]token, error) {
	l, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := l.Scanner([]byte(expr))
	if err != nil {
		return nil, err
	}

	var out []token
	end := 0
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			var ui *machines.UnconsumedInput
			if !errors.As(err, &ui) {
				return nil, &SyntaxError{Expr: expr, Pos: end, Msg: err.Error()}
			}
			r, _ := utf8.DecodeRuneInString(expr[end:])
			return nil, &SyntaxError{Expr: expr, Pos: end, Msg: "unsupported symbol " + quoteRune(r)}
		}
		cur := tok.(token)
		end = cur.pos + 1
		if n := len(out); n > 0 && needsConcat(out[n-1].typ, cur.typ) {
			out = append(out, token{typ: tConcat, pos: cur.pos})
		}
		out = append(out, cur)
	}
	return out, nil
}

func needsConcat(a, b tokenType) bool {
	if a == tLParen || a == tUnion || a == tConcat {
		return false
	}
	return b == tLParen || b == tChar
}
