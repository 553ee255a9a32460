package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"illegal argument", NewIllegalArgumentError("illegal position provided: %d", 7), IsIllegalArgument},
		{"index not found", NewIndexNotFoundError("anchor %q", "x"), IsIndexNotFound},
		{"unsupported", NewUnsupportedOperationError("real values are not supported"), IsUnsupportedOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(Wrap(tt.err, "outer")))
		})
	}
}

func TestSentinelsDoNotCrossMatch(t *testing.T) {
	err := NewIllegalArgumentError("bad")
	assert.False(t, IsIndexNotFound(err))
	assert.False(t, IsUnsupportedOperation(err))
	assert.False(t, IsIllegalArgument(nil))
}

func TestFormattedMessage(t *testing.T) {
	err := NewIllegalArgumentError("illegal position provided: %d", 7)
	assert.Equal(t, "illegal position provided: 7: illegal argument", err.Error())
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("error"), "use SetPos with a value in [0, Size()]")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "use SetPos with a value in [0, Size()]", hints[0])
}

func TestAssertionFailure(t *testing.T) {
	err := AssertionFailedf("outdent below zero")
	assert.True(t, IsAssertionFailure(err))
}

func TestCombineErrors(t *testing.T) {
	first := New("write failed")
	second := New("close failed")

	combined := CombineErrors(first, second)
	assert.True(t, Is(combined, first))
	assert.Nil(t, CombineErrors(nil, nil))
	assert.Equal(t, second, CombineErrors(nil, second))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
}

func ExampleWrap() {
	err := Wrap(ErrIndexNotFound, "insert before")
	fmt.Println(err)
	// Output: insert before: index not found
}
