package astcalc

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// diff finds the first in-order node of n that differs from m, or nil,
// nil if the two trees are equal.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.kind != m.kind {
		return n, m
	}
	if n.kind == nodeNum && n.val != m.val {
		return n, m
	}
	if l, r := n.left.diff(m.left); l != nil || r != nil {
		return l, r
	}
	return n.right.diff(m.right)
}

func TestParseTrees(t *testing.T) {
	// Each pair of inputs must parse to the same tree, with the second
	// input spelling the grouping explicitly.
	cases := []struct {
		name string
		a, b string
	}{
		{"add-left", "1-2-3", "(1-2)-3"},
		{"div-left", "8/4/2", "(8/4)/2"},
		{"pow-right", "2^3^2", "2^(3^2)"},
		{"mul-before-add", "1+2*3", "1+(2*3)"},
		{"pow-before-mul", "2*3^2", "2*(3^2)"},
		{"pemdas", "1^2*3+4", "((1^2)*3)+4"},
		{"pemdas-rising", "1+2*3^4", "1+(2*(3^4))"},
		{"neg-pow", "-2^2", "(-2)^2"},
		{"pow-neg-rhs", "2^-3", "2^(-3)"},
		{"neg-mul", "-2*3", "(-2)*3"},
		{"neg-neg", "--2", "-(-2)"},
		{"fac-pow", "3!^2", "(3!)^2"},
		{"pow-fac", "2^3!", "2^(3!)"},
		{"neg-fac", "-3!", "-(3!)"},
		{"neg-fac-pow", "-2!^2", "(-(2!))^2"},
		{"fac-fac", "3!!", "(3!)!"},
		{"fn-add", "sin 1 + 2", "(sin 1) + 2"},
		{"fn-pow", "sin 2 ^ 2", "(sin 2)^2"},
		{"fn-fac", "exp 2!", "exp(2!)"},
		{"nested-parens", "(((1)))", "1"},
		{"whitespace", " 1\t+\n2 \f", "1+2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.a)
			if err != nil {
				t.Fatalf("error parsing %q: %v", c.a, err)
			}
			b, err := Parse(c.b)
			if err != nil {
				t.Fatalf("error parsing %q: %v", c.b, err)
			}
			if l, r := a.n.diff(b.n); l != nil || r != nil {
				t.Errorf("%q parsed to %v, but %q parsed to %v; first difference %v vs %v", c.a, a, c.b, b, l, r)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	num := func(v float64) *node { return &node{kind: nodeNum, val: v} }
	un := func(k nodeKind, l *node) *node { return &node{kind: k, left: l} }
	bin := func(k nodeKind, l, r *node) *node { return &node{kind: k, left: l, right: r} }
	cases := []struct {
		name string
		src  string
		n    *node
	}{
		{
			name: "empty",
			src:  "",
			n:    &node{kind: nodeEnd},
		},
		{
			name: "blank",
			src:  " \t ",
			n:    &node{kind: nodeEnd},
		},
		{
			name: "number",
			src:  "42",
			n:    num(42),
		},
		{
			name: "fn-nested-neg",
			src:  "sin(3--1)",
			n:    un(nodeSin, bin(nodeSub, num(3), un(nodeNeg, num(1)))),
		},
		{
			name: "sums-of-quotients",
			src:  "1+2/3-4/5",
			n: bin(nodeSub,
				bin(nodeAdd, num(1), bin(nodeDiv, num(2), num(3))),
				bin(nodeDiv, num(4), num(5)),
			),
		},
		{
			name: "dangling-add",
			src:  "1+",
			n:    bin(nodeAdd, num(1), &node{kind: nodeEnd}),
		},
		{
			name: "dangling-fn",
			src:  "sin",
			n:    un(nodeSin, &node{kind: nodeEnd}),
		},
		{
			name: "pow-fac",
			src:  "2^3!",
			n:    bin(nodePow, num(2), un(nodeFac, num(3))),
		},
		{
			name: "mixed",
			src:  "-2 + 4 * -(5^3 + 7 * 3!)",
			n: bin(nodeAdd,
				un(nodeNeg, num(2)),
				bin(nodeMul,
					num(4),
					un(nodeNeg, bin(nodeAdd,
						bin(nodePow, num(5), num(3)),
						bin(nodeMul, num(7), un(nodeFac, num(3))),
					)),
				),
			),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if err != nil {
				t.Fatalf("error parsing %q: %v", c.src, err)
			}
			if l, r := a.n.diff(c.n); l != nil || r != nil {
				t.Errorf("wrong tree parsing %q:\nwant %sgot %s", c.src, spew.Sdump(c.n), spew.Sdump(a.n))
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "   ", "\t\n"} {
		a, err := Parse(src)
		if err != nil {
			t.Fatalf("error parsing %q: %v", src, err)
		}
		if !a.Empty() {
			t.Errorf("parsing %q gave non-empty %v", src, a)
		}
	}
	a, err := Parse("1+2")
	if err != nil {
		t.Fatal(err)
	}
	if a.Empty() {
		t.Errorf("1+2 parsed to empty expression")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		col  int
		res  []string
	}{
		{
			name: "bad-char",
			src:  "2^$",
			err:  new(LexError),
			col:  3,
			res:  []string{`\$`, `column 3`},
		},
		{
			name: "bad-char-cr",
			src:  "1\r2",
			err:  new(LexError),
			col:  2,
		},
		{
			name: "lhs-star",
			src:  "*1",
			err:  new(TokenError),
			col:  1,
			res:  []string{`(?i)unexpected`, `\*`},
		},
		{
			name: "lhs-fac",
			src:  "!",
			err:  new(TokenError),
			col:  1,
		},
		{
			name: "empty-parens",
			src:  "()",
			err:  new(TokenError),
			col:  2,
			res:  []string{`(?i)unexpected`, `\)`},
		},
		{
			name: "lhs-close",
			src:  ")",
			err:  new(TokenError),
			col:  1,
		},
		{
			name: "unclosed",
			src:  "(1",
			err:  new(ParenError),
			col:  3,
			res:  []string{`(?i)open paren`},
		},
		{
			name: "unclosed-nested",
			src:  "((1)",
			err:  new(ParenError),
			col:  5,
			res:  []string{`(?i)open paren`},
		},
		{
			name: "unopened",
			src:  "1)",
			err:  new(ParenError),
			col:  2,
			res:  []string{`(?i)close paren`},
		},
		{
			name: "interrupted-parens",
			src:  "(1 2)",
			err:  new(ParenError),
			col:  4,
			res:  []string{`(?i)expected close paren`, `"2"`},
		},
		{
			name: "trailing-num",
			src:  "1 2",
			err:  new(TrailingError),
			col:  3,
			res:  []string{`(?i)trailing`, `"2"`},
		},
		{
			name: "trailing-fn",
			src:  "1 sin",
			err:  new(TrailingError),
			col:  3,
		},
		{
			name: "trailing-open",
			src:  "2(3)",
			err:  new(TrailingError),
			col:  2,
			res:  []string{`"\("`},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if err == nil {
				t.Fatalf("no error parsing %q; got %v", c.src, a)
			}
			if a != nil {
				t.Errorf("non-nil expr %v with error %v", a, err)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("wrong error type parsing %q: want %T, got %T (%v)", c.src, c.err, err, err)
			}
			if ie, ok := err.(InputError); ok {
				if ie.Pos() != c.col {
					t.Errorf("wrong position parsing %q: want %d, got %d (%v)", c.src, c.col, ie.Pos(), err)
				}
			} else {
				t.Errorf("error %#v does not implement InputError", err)
			}
			for _, res := range c.res {
				re := regexp.MustCompile(res)
				if !re.MatchString(err.Error()) {
					t.Errorf("error message %q does not match %q", err.Error(), res)
				}
			}
		})
	}
}

func TestParseString(t *testing.T) {
	// The string form groups every node, which makes the grouping the
	// parser chose explicit.
	cases := []struct {
		src string
		s   string
	}{
		{"1+2*3", "((1) + ((2) * (3)))"},
		{"-2^2", "((-(2)) ^ (2))"},
		{"sin(3--1)", "(sin((3) - (-(1))))"},
		{"3!", "((3)!)"},
		{"", "()"},
	}
	for _, c := range cases {
		a, err := Parse(c.src)
		if err != nil {
			t.Fatalf("error parsing %q: %v", c.src, err)
		}
		if a.String() != c.s {
			t.Errorf("%q formatted as %q, want %q", c.src, a.String(), c.s)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"number", "123.456e2"},
		{"flat", "1+2-3+4-5+6"},
		{"rising", "1+2*3^4!"},
		{"parens", "((((((1))))))"},
		{"mixed", "-2 + 4 * -(5^3 + 7 * 3!)"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				a, err := Parse(c.src)
				if err != nil {
					b.Fatal(err)
				}
				_ = a
			}
		})
	}
}
