package astcalc

import (
	"strconv"
	"strings"
)

// node is a node in the syntax tree of an expression. Unary operators keep
// their operand in left.
type node struct {
	// kind is the type of this node.
	kind nodeKind

	// val is the value of a nodeNum.
	val float64

	// left and right are this node's operands.
	left, right *node
}

type nodeKind int8

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

const (
	nodeNone nodeKind = iota

	nodeNum // produce val
	nodeEnd // no expression

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, subtract right
	nodeMul // evaluate left, multiply by right
	nodeDiv // evaluate left, divide by right
	nodePow // evaluate left, raise to right

	nodeNeg // evaluate left, negate
	nodeSin // evaluate left, sine
	nodeCos // evaluate left, cosine
	nodeTan // evaluate left, tangent
	nodeExp // evaluate left, natural exponential
	nodeLog // evaluate left, natural logarithm
	nodeFac // evaluate left, factorial
)

// binary reports whether the kind is a binary operator.
func (k nodeKind) binary() bool {
	switch k {
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		return true
	}
	return false
}

// unary reports whether the kind is a unary operator, whether prefix or
// postfix.
func (k nodeKind) unary() bool {
	switch k {
	case nodeNeg, nodeSin, nodeCos, nodeTan, nodeExp, nodeLog, nodeFac:
		return true
	}
	return false
}

// label returns the display text for the node: the operator symbol, the
// function name, or the shortest decimal formatting of the number. The end
// marker has no label.
func (n *node) label() string {
	switch n.kind {
	case nodeNum:
		return strconv.FormatFloat(n.val, 'g', -1, 64)
	case nodeEnd:
		return ""
	case nodeAdd:
		return "+"
	case nodeSub, nodeNeg:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodePow:
		return "^"
	case nodeSin:
		return "sin"
	case nodeCos:
		return "cos"
	case nodeTan:
		return "tan"
	case nodeExp:
		return "exp"
	case nodeLog:
		return "log"
	case nodeFac:
		return "!"
	default:
		panic("astcalc: invalid node kind " + n.kind.String())
	}
}

// String creates a parenthesized string representation of the subtree
// rooted at n.
func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeEnd:
		// Nothing between the parentheses.
	case nodeNum:
		b.WriteString(n.label())
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeSin, nodeCos, nodeTan, nodeExp, nodeLog:
		b.WriteString(n.label())
		n.left.fmt(b)
	case nodeFac:
		n.left.fmt(b)
		b.WriteByte('!')
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.label())
		b.WriteByte(' ')
		n.right.fmt(b)
	default:
		panic("astcalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
