package astcalc

import (
	"math"
	"strconv"
)

// Eval evaluates the expression. The arithmetic is ordinary float64
// arithmetic, so dividing by zero produces an infinity rather than an
// error and 0^0 is 1. Evaluating the same expression more than once gives
// the same result each time.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// EvalString is a shortcut to parse and evaluate an expression in one
// call.
func EvalString(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeEnd:
		return 0, &EmptyExpressionError{}
	case nodeAdd:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeSub:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case nodeMul:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case nodeDiv:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l / r, nil
	case nodePow:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return math.Pow(l, r), nil
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeSin:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return math.Sin(v), nil
	case nodeCos:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return math.Cos(v), nil
	case nodeTan:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return math.Tan(v), nil
	case nodeExp:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return math.Exp(v), nil
	case nodeLog:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return math.Log(v), nil
	case nodeFac:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return factorial(v)
	default:
		panic("astcalc: invalid node kind " + n.kind.String())
	}
}

// operands evaluates both children of a binary node.
func (n *node) operands() (l, r float64, err error) {
	l, err = n.left.eval()
	if err != nil {
		return 0, 0, err
	}
	r, err = n.right.eval()
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// factorial computes v! for a float64 v with no fractional part. The
// product accumulates in uint64 arithmetic, so results past 20! wrap
// rather than grow. An infinite or NaN operand has no integral value and
// is an error like any other fractional operand. Negative operands
// truncate to zero, so their factorial is 1.
func factorial(v float64) (float64, error) {
	ip, frac := math.Modf(v)
	if frac != 0 {
		return 0, &FactorialError{X: v}
	}
	var n uint64
	switch {
	case ip < 0:
		n = 0
	case ip >= 1<<64:
		n = math.MaxUint64
	default:
		n = uint64(ip)
	}
	acc := uint64(1)
	for i := uint64(2); i <= n; i++ {
		acc *= i
		if acc == 0 {
			// Once the product wraps to zero it stays zero.
			break
		}
	}
	return float64(acc), nil
}

// EmptyExpressionError is an error from evaluating an expression with no
// content.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "empty expression"
}

// FactorialError is an error from taking the factorial of a value with a
// fractional part.
type FactorialError struct {
	// X is the operand of the factorial.
	X float64
}

func (err *FactorialError) Error() string {
	return "factorial of non-integer " + strconv.FormatFloat(err.X, 'g', -1, 64)
}
