package astcalc

import "strings"

// Hierarchy renders the expression as an indented listing with one node
// per line and children connected by branch glyphs, like a directory tree
// drawn by tree(1). Lines are newline-terminated. The result is empty for
// the empty expression.
func (e *Expr) Hierarchy() string {
	var b strings.Builder
	e.n.hierarchy(&b, "", false)
	return b.String()
}

// hierarchy writes the subtree rooted at n, one label per line. left marks
// a node with a following sibling, which draws the continuing connector.
func (n *node) hierarchy(b *strings.Builder, prefix string, left bool) {
	if n.kind == nodeEnd {
		return
	}
	branch, descend := "└── ", "    "
	if left {
		branch, descend = "├── ", "│   "
	}
	b.WriteString(prefix)
	b.WriteString(branch)
	b.WriteString(n.label())
	b.WriteByte('\n')
	switch {
	case n.kind.binary():
		n.left.hierarchy(b, prefix+descend, true)
		n.right.hierarchy(b, prefix+descend, false)
	case n.kind.unary():
		n.left.hierarchy(b, prefix+descend, false)
	}
}

// Grid renders the expression as a two-dimensional picture: one row of
// fixed-width cells per tree level, with a row of connector glyphs below
// each, laid out breadth-first. Binary operators sit a little off their
// subtrees' center and join them with / and \ edges; unary operators sit
// directly above their operand, joined with |. Every row has the same
// length, and the result always ends with a blank connector row.
func (e *Expr) Grid() string {
	width := e.n.width()
	if width%2 == 0 {
		width++
	}
	cell := e.n.maxLabelLen()
	if cell%2 == 0 {
		cell++
	}
	blank := strings.Repeat(" ", cell)

	var b strings.Builder
	row := []gridSlot{{n: e.n, col: (width - 1) / 2}}
	for len(row) > 0 {
		nodes := make([]string, width)
		edges := make([]string, width)
		for i := range nodes {
			nodes[i] = blank
			edges[i] = blank
		}
		var next []gridSlot
		for _, s := range row {
			switch {
			case s.n.kind.binary():
				nodes[s.col] = padCenter(s.n.label(), cell, s.right)
				edges[s.col] = "/" + blank[:cell-2] + `\`
				ld, rd := 1, 1
				if s.n.left.kind.binary() {
					ld = 2
				}
				if s.n.right.kind.binary() {
					rd = 2
				}
				next = append(next,
					gridSlot{n: s.n.left, col: s.col - ld},
					gridSlot{n: s.n.right, col: s.col + rd, right: true},
				)
			case s.n.kind.unary():
				nodes[s.col] = padCenter(s.n.label(), cell, s.right)
				edges[s.col] = padCenter("|", cell, s.right)
				next = append(next, gridSlot{n: s.n.left, col: s.col})
			case s.n.kind == nodeNum:
				nodes[s.col] = padCenter(s.n.label(), cell, s.right)
			}
		}
		for _, c := range nodes {
			b.WriteString(c)
		}
		b.WriteByte('\n')
		for _, c := range edges {
			b.WriteString(c)
		}
		b.WriteByte('\n')
		row = next
	}
	return b.String()
}

// gridSlot is a node positioned in a grid row. right selects right-leaning
// centering when the cell padding is uneven.
type gridSlot struct {
	n     *node
	col   int
	right bool
}

// width reports the number of grid cells the subtree needs. Binary nodes
// reserve three cells between their subtrees; unary nodes stack over their
// operand for free.
func (n *node) width() int {
	switch {
	case n.kind.binary():
		return n.left.width() + n.right.width() + 3
	case n.kind.unary():
		return n.left.width()
	case n.kind == nodeNum:
		return 1
	case n.kind == nodeEnd:
		return 0
	default:
		panic("astcalc: invalid node kind " + n.kind.String())
	}
}

// maxLabelLen reports the grid cell size the subtree needs, which is the
// length of its longest number label and at least 3 so the operator labels
// and connectors fit.
func (n *node) maxLabelLen() int {
	switch {
	case n.kind.binary():
		l, r := n.left.maxLabelLen(), n.right.maxLabelLen()
		if l < r {
			return r
		}
		return l
	case n.kind.unary():
		return n.left.maxLabelLen()
	case n.kind == nodeNum:
		if l := len(n.label()); l > 3 {
			return l
		}
		return 3
	case n.kind == nodeEnd:
		return 0
	default:
		panic("astcalc: invalid node kind " + n.kind.String())
	}
}

// padCenter centers s in a cell of the given width. Uneven padding leaves
// the extra space on the right, or on the left when right is set. Strings
// at least as long as the cell are returned unchanged.
func padCenter(s string, width int, right bool) string {
	if len(s) >= width {
		return s
	}
	d := width - len(s)
	if d%2 == 0 {
		pad := strings.Repeat(" ", d/2)
		return pad + s + pad
	}
	short := strings.Repeat(" ", d/2)
	long := strings.Repeat(" ", (d+1)/2)
	if right {
		return long + s + short
	}
	return short + s + long
}
