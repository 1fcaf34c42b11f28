// Package astcalc implements a floating-point arithmetic calculator.
//
// Expressions combine numbers with the binary operators +, -, *, / and ^,
// the prefix functions sin, cos, tan, exp and ln, prefix negation, the
// postfix factorial, and parentheses. Negation binds tighter than
// exponentiation, so "-2^2" is the same as "(-2)^2", while "2^-2" still
// parses the way you'd want. Exponentiation is right-associative and the
// factorial binds tightest of all, so "-2^3!" is "(-2)^(3!)".
//
// Parsing and evaluating are separate steps. Parse builds a syntax tree
// once; Eval, Hierarchy and Grid are independent views over that tree, so
// one parse can be evaluated and rendered any number of times.
package astcalc
