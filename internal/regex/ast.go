package regex

import (
	"fmt"

	"subsetviz/internal/automaton"
)

type Kind int

const (
	KLiteral Kind = iota
	KConcat
	KUnion
	KStar // operand in Left
)

// Node is an immutable syntax tree node.
type Node struct {
	Kind  Kind
	Sym   automaton.Symbol // KLiteral only
	Left  *Node
	Right *Node
}

func literal(sym automaton.Symbol) *Node { return &Node{Kind: KLiteral, Sym: sym} }

func (n *Node) String() string {
	switch n.Kind {
	case KLiteral:
		return n.Sym.String()
	case KConcat:
		return fmt.Sprintf("Concat(%s,%s)", n.Left, n.Right)
	case KUnion:
		return fmt.Sprintf("Union(%s,%s)", n.Left, n.Right)
	case KStar:
		return fmt.Sprintf("Star(%s)", n.Left)
	default:
		return "?"
	}
}

// Alphabet lists the literal symbols of the tree in first-occurrence order.
func (n *Node) Alphabet() []automaton.Symbol {
	var out []automaton.Symbol
	seen := map[automaton.Symbol]bool{}
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Kind == KLiteral && !seen[n.Sym] {
			seen[n.Sym] = true
			out = append(out, n.Sym)
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(n)
	return out
}
