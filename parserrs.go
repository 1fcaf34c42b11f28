package astcalc

import "strconv"

// TokenError is an error indicating a token where no expression can start.
// It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Tok is the text of the token.
	Tok string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Tok))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// ParenError is an error indicating an unmatched parenthesis. It
// implements InputError.
type ParenError struct {
	// Col is the position of the token found where a parenthesis was
	// required.
	Col int
	// Tok is the text of that token. It is ")" for a close parenthesis
	// with no matching open, and empty when the input ended with an open
	// parenthesis unclosed.
	Tok string
}

func (err *ParenError) Error() string {
	switch err.Tok {
	case "":
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	case ")":
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	default:
		return errpos(err.Col, "expected close parenthesis, found "+strconv.Quote(err.Tok))
	}
}

func (err *ParenError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input left over after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first leftover token.
	Col int
	// Tok is the text of that token.
	Tok string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "trailing input starting at "+strconv.Quote(err.Tok))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*LexError)(nil)
)
