package token

import "fmt"

// UnexpectedTokenError is reported when the input does not have the shape a
// reader expected at Got.
type UnexpectedTokenError struct {
	Expected string
	Got      *Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s: unexpected token: expect %s, got %s", e.Got.Src, e.Expected, e.Got.Kind)
}

// Unexpected builds the error for a token of the wrong kind.
func Unexpected(expected Kind, got *Token) error {
	return &UnexpectedTokenError{Expected: expected.String(), Got: got}
}
