package exception

import (
	"fmt"
	"io"
	"maps"

	"github.com/perfective/ts.common-sub001/pkg/fp/fn"
	"github.com/perfective/ts.common-sub001/pkg/fp/predicate"
	"github.com/pkg/errors"
)

const (
	// Name identifies errors built by New, CausedBy and Chained.
	Name = "Exception"
	// TypeErrorName identifies a programming error caught at construction.
	TypeErrorName = "TypeError"

	unknownTemplate = "Unknown error"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Exception is an immutable error node in a causal chain.
type Exception struct {
	name     string
	message  Message
	rendered string
	context  Context
	previous error
	stack    errors.StackTrace
}

// New builds a terminal Exception.
func New(template string, tokens Tokens, context Context) *Exception {
	return build(Name, nil, template, tokens, context)
}

// CausedBy builds an Exception linked to the error that caused it.
func CausedBy(previous error, template string, tokens Tokens, context Context) *Exception {
	return build(Name, previous, template, tokens, context)
}

// Chained is CausedBy with the cause supplied last, for use as an error
// mapper (for example in result.MapError).
func Chained(template string, tokens Tokens, context Context) func(previous error) error {
	return func(previous error) error {
		return build(Name, previous, template, tokens, context)
	}
}

// NewTypeError builds a terminal TypeError, used for values that violate a
// construction invariant.
func NewTypeError(template string, tokens Tokens, context Context) *Exception {
	return build(TypeErrorName, nil, template, tokens, context)
}

// Unknown normalizes an arbitrary value, typically a recovered panic, into an
// error. Errors pass through; anything else, including a typed nil error,
// becomes an Exception holding the value in its context under "error".
func Unknown(value any) error {
	if err, ok := value.(error); ok && !predicate.IsNil(err) {
		return err
	}
	return build(Name, nil, unknownTemplate, nil, Context{"error": value})
}

// Throw panics with err. A nil err is a no-op.
func Throw(err error) {
	if err != nil {
		panic(err)
	}
}

// Panics returns a fallback that panics with a new Exception when called.
// Passed to Otherwise it turns "absent" into a panic only on the absent path.
func Panics[T any](template string, tokens Tokens, context Context) fn.Nullary[T] {
	return func() T {
		panic(build(Name, nil, template, tokens, context))
	}
}

// build must be called directly by the exported constructors: the captured
// stack drops its own frame, the helper frame and the constructor.
func build(name string, previous error, template string, tokens Tokens, context Context) *Exception {
	message := NewMessage(template, tokens)
	if predicate.IsNil(previous) {
		previous = nil
	}
	return &Exception{
		name:     name,
		message:  message,
		rendered: message.String(),
		context:  maps.Clone(context),
		previous: previous,
		stack:    callers(),
	}
}

func callers() errors.StackTrace {
	st := errors.New("").(stackTracer).StackTrace()
	if len(st) > 3 {
		return st[3:]
	}
	return st
}

// Error returns the rendered message of this node only.
func (e *Exception) Error() string {
	return e.rendered
}

func (e *Exception) ErrorName() string {
	return e.name
}

func (e *Exception) Unwrap() error {
	return e.previous
}

func (e *Exception) Previous() error {
	return e.previous
}

func (e *Exception) Message() Message {
	return NewMessage(e.message.Template, e.message.Tokens)
}

func (e *Exception) Template() string {
	return e.message.Template
}

func (e *Exception) Tokens() Tokens {
	return maps.Clone(e.message.Tokens)
}

func (e *Exception) Context() Context {
	return maps.Clone(e.context)
}

func (e *Exception) StackTrace() errors.StackTrace {
	return e.stack
}

// Format prints the message for %s and %v, the quoted message for %q, and the
// whole chain with stack traces for %+v. Other verbs format the message as a
// string.
func (e *Exception) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, StackString(e))
			return
		}
		_, _ = io.WriteString(s, e.rendered)
	case 's':
		_, _ = io.WriteString(s, e.rendered)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.rendered)
	default:
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), e.rendered)
	}
}
