package astcalc

// Expr = num | Neg | Fn | Add | Sub | Mul | Div | Pow | Fac | '(' Expr ')'
// Fn = ('sin' | 'cos' | 'tan' | 'exp' | 'ln') Expr
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr
// Fac = Expr '!'

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression. An input with no tokens parses successfully
// to the empty expression, for which Empty reports true, but input left
// over after a complete expression is an error.
func Parse(src string) (*Expr, error) {
	scan := lex(src)
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
	case tokenClose:
		return nil, &ParenError{Col: tok.pos, Tok: tok.text}
	default:
		return nil, &TrailingError{Col: tok.pos, Tok: tok.text}
	}
	return &Expr{n: n}, nil
}

// Empty reports whether the expression has no content, i.e. the input it
// was parsed from contained no tokens. Evaluating an empty expression is
// an error, but rendering it is fine.
func (e *Expr) Empty() bool {
	return e.n.kind == nodeEnd
}

// String creates a parenthesized string representation of the expression.
func (e *Expr) String() string {
	return e.n.String()
}

// parseterm parses a subexpression in which every operator binds more
// tightly than until. If there is no error, then parseterm pushes the last
// token it scans, including EOF.
func parseterm(scan *lexer, until operator) (*node, error) {
	n, err := parselhs(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenFac:
			// Postfix operator; no rhs to parse.
			if !facprec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			n = &node{kind: nodeFac, left: n}
		case tokenPlus, tokenMinus, tokenMul, tokenDiv, tokenPow:
			prec := binop(tok.kind)
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		default:
			// End of the subexpression. The caller decides whether the
			// token is legal there.
			scan.push(tok)
			return n, nil
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are
// prefix, and any encountered token must be valid as the start of a
// subexpression. An exhausted input produces the end marker node rather
// than an error, so that empty input parses.
func parselhs(scan *lexer) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeNum, val: tok.val}, nil
	case tokenMinus, tokenSin, tokenCos, tokenTan, tokenExp, tokenLog:
		prec := unop(tok.kind)
		rhs, err := parseterm(scan, prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: prec.op, left: rhs}, nil
	case tokenOpen:
		n, err := parseterm(scan, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, &ParenError{Col: end.pos, Tok: end.text}
		}
		return n, nil
	case tokenEOF:
		return &node{kind: nodeEnd}, nil
	default:
		return nil, &TokenError{Col: tok.pos, Tok: tok.text}
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the infix operator for a token kind. If the kind is not an
// infix operator, then the result has an op of nodeNone.
func binop(kind tokenKind) operator {
	switch kind {
	case tokenPlus:
		return operator{1, false, nodeAdd}
	case tokenMinus:
		return operator{1, false, nodeSub}
	case tokenMul:
		return operator{3, false, nodeMul}
	case tokenDiv:
		return operator{3, false, nodeDiv}
	case tokenPow:
		return operator{5, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets the prefix operator for a token kind. If the kind is not a
// prefix operator, then the result has an op of nodeNone. Every prefix
// operator binds more tightly than exponentiation and less tightly than
// the factorial, which is how -2^2 means (-2)^2 while -2! means -(2!).
func unop(kind tokenKind) operator {
	switch kind {
	case tokenMinus:
		return operator{8, true, nodeNeg}
	case tokenSin:
		return operator{8, true, nodeSin}
	case tokenCos:
		return operator{8, true, nodeCos}
	case tokenTan:
		return operator{8, true, nodeTan}
	case tokenExp:
		return operator{8, true, nodeExp}
	case tokenLog:
		return operator{8, true, nodeLog}
	default:
		return operator{}
	}
}

var (
	// facprec is the precedence of the postfix factorial, the most binding
	// operator.
	facprec = operator{9, false, nodeFac}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, nodeNone}
)
