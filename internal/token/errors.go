package token

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Each error type below unwraps to one of them.
var (
	ErrBrokenChain     = errors.New("broken chain")
	ErrStackUnderflow  = errors.New("state stack underflow")
	ErrUnboundState    = errors.New("unbound parser state")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrPrematureEnd    = errors.New("unexpected end of document")
	ErrUnsupported     = errors.New("unsupported construct")
)

// LinkageError reports an internal fault in the token or block chains or
// in the state machine itself. Cause is ErrBrokenChain, ErrStackUnderflow
// or ErrUnboundState.
type LinkageError struct {
	Cause   error
	Token   Token
	Message string
}

func (e *LinkageError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at %s", e.Cause, e.Token.Span.Start)
	}
	return fmt.Sprintf("%s: %s at %s", e.Cause, e.Message, e.Token.Span.Start)
}

func (e *LinkageError) Unwrap() error { return e.Cause }

// UnexpectedTokenError reports a token that the active handler does not
// accept.
type UnexpectedTokenError struct {
	Token    Token
	State    string
	Expected string
}

func (e *UnexpectedTokenError) Error() string {
	msg := fmt.Sprintf("unexpected %s %q at %s", e.Token.Kind, e.Token.Value, e.Token.Span.Start)
	if e.State != "" {
		msg += " in " + e.State
	}
	if e.Expected != "" {
		msg += ", expected " + e.Expected
	}
	return msg
}

func (e *UnexpectedTokenError) Unwrap() error { return ErrUnexpectedToken }

// PrematureEndError reports that the token stream ended while a construct
// was still open.
type PrematureEndError struct {
	Token Token
	State string
}

func (e *PrematureEndError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("%s at %s", ErrPrematureEnd, e.Token.Span.Start)
	}
	return fmt.Sprintf("%s at %s in %s", ErrPrematureEnd, e.Token.Span.Start, e.State)
}

func (e *PrematureEndError) Unwrap() error { return ErrPrematureEnd }

// UnsupportedError reports a construct that is recognised but not parsed.
type UnsupportedError struct {
	Token     Token
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrUnsupported, e.Construct, e.Token.Span.Start)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }
