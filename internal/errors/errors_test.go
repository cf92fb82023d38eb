package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codedError{code: 7}, "outer")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsChain(t *testing.T) {
	base := New("base")

	assert.True(t, Is(Wrapf(WithStack(base), "step %d", 2), base))
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Equal(t, "step 2: base", Wrapf(base, "step %d", 2).Error())
}
