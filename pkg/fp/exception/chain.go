package exception

import (
	"fmt"
	"strings"

	"github.com/perfective/ts.common-sub001/pkg/fp/predicate"
)

const (
	// ChainSeparator joins the lines rendered by ChainString.
	ChainSeparator = "\n\t- "
	// CausedBySeparator joins the entries rendered by StackString.
	CausedBySeparator = "\nCaused by: "

	plainErrorName = "Error"
)

// Unchained lists err and every cause behind it, most recent first. Only
// Exception nodes link to a cause, so a plain error is a one-element
// chain. A nil err, typed or not, gives an empty list.
func Unchained(err error) []error {
	chain := make([]error, 0, 4)
	for !predicate.IsNil(err) {
		chain = append(chain, err)
		e, ok := err.(*Exception)
		if !ok {
			break
		}
		err = e.previous
	}
	return chain
}

// Fault returns the root cause of err, or nil.
func Fault(err error) error {
	chain := Unchained(err)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

// Kind names the kind of err: its ErrorName when it has one, "Error" otherwise.
func Kind(err error) string {
	if named, ok := err.(interface{ ErrorName() string }); ok {
		return named.ErrorName()
	}
	return plainErrorName
}

// Line renders a single node as "<Kind>: <message>".
func Line(err error) string {
	return Kind(err) + ": " + err.Error()
}

// Lines renders every node of the chain, most recent first.
func Lines(err error) []string {
	chain := Unchained(err)
	lines := make([]string, len(chain))
	for i, e := range chain {
		lines[i] = Line(e)
	}
	return lines
}

// ChainString renders the chain one node per line.
func ChainString(err error) string {
	return strings.Join(Lines(err), ChainSeparator)
}

// StackString renders the chain the way a stack trace is printed: each node
// followed by its stack, causes introduced with "Caused by: ".
func StackString(err error) string {
	chain := Unchained(err)
	entries := make([]string, len(chain))
	for i, e := range chain {
		entries[i] = Line(e)
		if st, ok := e.(stackTracer); ok {
			entries[i] += fmt.Sprintf("%+v", st.StackTrace())
		}
	}
	return strings.Join(entries, CausedBySeparator)
}

// Errors splits an errors.Join value into its parts. Other errors are
// returned as a single element and nil as an empty list.
func Errors(err error) []error {
	if err == nil {
		return []error{}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
