package regex

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrSyntax = errors.New("syntax error")

// SyntaxError describes a malformed expression. Pos is a byte offset.
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

func quoteRune(r rune) string { return strconv.QuoteRune(r) }
