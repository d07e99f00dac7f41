package exception

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Terminal(t *testing.T) {
	t.Parallel()
	e := New("User {{id}} not found", Tokens{"id": "42"}, Context{"table": "users"})

	assert.Equal(t, "User 42 not found", e.Error())
	assert.Equal(t, Name, e.ErrorName())
	assert.Equal(t, "User {{id}} not found", e.Template())
	assert.Equal(t, Tokens{"id": "42"}, e.Tokens())
	assert.Equal(t, Context{"table": "users"}, e.Context())
	assert.NotContains(t, e.Error(), "users", "context never reaches the message")
	assert.Nil(t, e.Previous())
	assert.NotEmpty(t, e.StackTrace())
}

func TestException_Immutable(t *testing.T) {
	t.Parallel()
	tokens := Tokens{"id": "1"}
	context := Context{"k": "v"}
	e := New("{{id}}", tokens, context)

	tokens["id"] = "2"
	context["k"] = "changed"
	e.Tokens()["id"] = "3"
	e.Context()["k"] = "again"

	assert.Equal(t, "1", e.Error())
	assert.Equal(t, Tokens{"id": "1"}, e.Tokens())
	assert.Equal(t, Context{"k": "v"}, e.Context())
}

func TestCausedBy_ThreeDeep(t *testing.T) {
	t.Parallel()
	root := errors.New("A")
	b := CausedBy(root, "B", nil, nil)
	c := CausedBy(b, "C", nil, nil)

	chain := Unchained(c)
	require.Len(t, chain, 3)
	assert.Same(t, c, chain[0])
	assert.Same(t, b, chain[1])
	assert.Equal(t, root, chain[2])
	assert.Equal(t, root, Fault(c))
	assert.True(t, errors.Is(c, root))
}

func TestChained_LinksPreviousLast(t *testing.T) {
	t.Parallel()
	wrap := Chained("Failed to load {{file}}", Tokens{"file": "a.json"}, nil)
	err := wrap(io.ErrUnexpectedEOF)

	var e *Exception
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "Failed to load a.json", e.Error())
	assert.Equal(t, io.ErrUnexpectedEOF, e.Previous())
}

func TestUnchained_PlainAndNil(t *testing.T) {
	t.Parallel()
	plain := errors.New("plain")
	assert.Equal(t, []error{plain}, Unchained(plain))
	assert.Empty(t, Unchained(nil))
	assert.Nil(t, Fault(nil))
	assert.Equal(t, plain, Fault(plain))
}

func TestCausedBy_TypedNilPrevious(t *testing.T) {
	t.Parallel()
	var previous *Exception
	outer := CausedBy(previous, "outer", nil, nil)

	assert.Nil(t, outer.Previous())
	assert.Nil(t, outer.Unwrap())
	assert.Equal(t, "Exception: outer", ChainString(outer))
	assert.Same(t, outer, Fault(outer))
	assert.Empty(t, Unchained(previous))
}

func TestUnchained_StopsAtPlainWrapper(t *testing.T) {
	t.Parallel()
	inner := New("inner", nil, nil)
	wrapped := fmt.Errorf("wrapped: %w", inner)
	outer := CausedBy(wrapped, "outer", nil, nil)

	chain := Unchained(outer)
	assert.Len(t, chain, 2, "only Exception nodes carry a previous link")
	assert.Equal(t, wrapped, Fault(outer))
}

func TestChainString(t *testing.T) {
	t.Parallel()
	err := CausedBy(CausedBy(errors.New("A"), "B", nil, nil), "C", nil, nil)

	assert.Equal(t, "Exception: C\n\t- Exception: B\n\t- Error: A", ChainString(err))
	assert.Equal(t, []string{"Exception: C", "Exception: B", "Error: A"}, Lines(err))
}

func TestStackString(t *testing.T) {
	t.Parallel()
	err := CausedBy(CausedBy(errors.New("A"), "B", nil, nil), "C", nil, nil)
	out := StackString(err)

	assert.True(t, strings.HasPrefix(out, "Exception: C\n"), out)
	assert.Equal(t, 2, strings.Count(out, CausedBySeparator))
	assert.True(t, strings.HasSuffix(out, "Caused by: Error: A"), out)
	assert.Greater(t, strings.Count(out, "\n\t"), 2, "stack frames are printed after each exception")
}

func TestFormat(t *testing.T) {
	t.Parallel()
	err := CausedBy(errors.New("A"), "Value {{v}}", Tokens{"v": "1"}, nil)

	assert.Equal(t, "Value 1", fmt.Sprintf("%v", err))
	assert.Equal(t, "Value 1", fmt.Sprintf("%s", err))
	assert.Equal(t, `"Value 1"`, fmt.Sprintf("%q", err))
	assert.Contains(t, fmt.Sprintf("%+v", err), "Caused by: Error: A")
	assert.Equal(t, "56616c75652031", fmt.Sprintf("%x", err))
}

func TestKind(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Error", Kind(errors.New("x")))
	assert.Equal(t, "Exception", Kind(New("x", nil, nil)))
	assert.Equal(t, "TypeError", Kind(NewTypeError("x", nil, nil)))
}

func TestUnknown(t *testing.T) {
	t.Parallel()
	original := errors.New("known")
	assert.Same(t, original, Unknown(original))

	err := Unknown(42)
	var e *Exception
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "Unknown error", e.Error())
	assert.Equal(t, Context{"error": 42}, e.Context())
	assert.Nil(t, e.Previous())

	assert.Equal(t, Context{"error": nil}, Unknown(nil).(*Exception).Context())

	var typedNil *Exception
	wrapped := Unknown(typedNil)
	require.True(t, errors.As(wrapped, &e))
	require.NotNil(t, e)
	assert.Equal(t, "Unknown error", e.Error())
}

func TestThrow(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { Throw(nil) })
	assert.PanicsWithError(t, "boom", func() { Throw(errors.New("boom")) })
}

func TestPanics_OnlyWhenCalled(t *testing.T) {
	t.Parallel()
	fallback := Panics[int]("Missing {{field}}", Tokens{"field": "id"}, nil)
	assert.PanicsWithError(t, "Missing id", func() { fallback() })
}

func TestErrors_SplitsJoined(t *testing.T) {
	t.Parallel()
	a := errors.New("a")
	b := errors.New("b")

	assert.Equal(t, []error{a, b}, Errors(errors.Join(a, b)))
	assert.Equal(t, []error{a}, Errors(a))
	assert.Empty(t, Errors(nil))
}
