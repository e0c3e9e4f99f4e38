// Package regex parses regular expressions over literal symbols with
// concatenation, union, Kleene star and grouping.
package regex

func precedence(t tokenType) int {
	switch t {
	case tUnion:
		return 1
	case tConcat:
		return 2
	default:
		return 0 // '(' sentinel never reduces
	}
}

type parser struct {
	expr     string
	operands []*Node
	ops      []token
}

// Parse turns expr into a syntax tree. Malformed input yields a *SyntaxError
// and no tree.
func Parse(expr string) (*Node, error) {
	if expr == "" {
		return nil, &SyntaxError{Expr: expr, Msg: "empty expression"}
	}
	toks, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{expr: expr}
	return p.run(toks)
}

func (p *parser) errorf(pos int, msg string) error {
	return &SyntaxError{Expr: p.expr, Pos: pos, Msg: msg}
}

// run is a shunting-yard pass. wantOperand tracks whether the next token must
// start an operand, which is how misplaced operators are caught.
func (p *parser) run(toks []token) (*Node, error) {
	wantOperand := true
	for _, tok := range toks {
		switch tok.typ {
		case tChar:
			if !wantOperand {
				return nil, p.errorf(tok.pos, "unexpected symbol")
			}
			p.operands = append(p.operands, literal(tok.ch))
			wantOperand = false
		case tStar:
			if wantOperand {
				return nil, p.errorf(tok.pos, "'*' without operand")
			}
			n := len(p.operands) - 1
			p.operands[n] = &Node{Kind: KStar, Left: p.operands[n]}
		case tConcat, tUnion:
			if wantOperand {
				return nil, p.errorf(tok.pos, "operand expected before "+tok.typ.String())
			}
			for len(p.ops) > 0 && precedence(p.ops[len(p.ops)-1].typ) >= precedence(tok.typ) {
				if err := p.reduce(); err != nil {
					return nil, err
				}
			}
			p.ops = append(p.ops, tok)
			wantOperand = true
		case tLParen:
			if !wantOperand {
				return nil, p.errorf(tok.pos, "unexpected '('")
			}
			p.ops = append(p.ops, tok)
		case tRParen:
			if wantOperand {
				return nil, p.errorf(tok.pos, "operand expected before ')'")
			}
			for {
				if len(p.ops) == 0 {
					return nil, p.errorf(tok.pos, "unmatched ')'")
				}
				if p.ops[len(p.ops)-1].typ == tLParen {
					p.ops = p.ops[:len(p.ops)-1]
					break
				}
				if err := p.reduce(); err != nil {
					return nil, err
				}
			}
		}
	}
	if wantOperand {
		return nil, p.errorf(len(p.expr), "unexpected end of expression")
	}
	for len(p.ops) > 0 {
		if top := p.ops[len(p.ops)-1]; top.typ == tLParen {
			return nil, p.errorf(top.pos, "unmatched '('")
		}
		if err := p.reduce(); err != nil {
			return nil, err
		}
	}
	if len(p.operands) != 1 {
		return nil, p.errorf(len(p.expr), "ill-formed expression")
	}
	return p.operands[0], nil
}

// reduce pops one binary operator and combines the two most recent operands.
func (p *parser) reduce() error {
	op := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	n := len(p.operands)
	if n < 2 {
		return p.errorf(op.pos, "operand expected for "+op.typ.String())
	}
	left, right := p.operands[n-2], p.operands[n-1]
	kind := KConcat
	if op.typ == tUnion {
		kind = KUnion
	}
	p.operands = append(p.operands[:n-2], &Node{Kind: kind, Left: left, Right: right})
	return nil
}
