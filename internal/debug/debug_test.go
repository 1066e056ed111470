package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	prev := SetEnabled(true)
	t.Cleanup(func() { SetEnabled(prev) })

	assert.True(t, Enabled())
	assert.NotPanics(t, func() { Assert(true, "never") })
	assert.PanicsWithError(t, "assertion failed: offset 9 outside 0..4", func() {
		Assert(false, "offset %d outside 0..%d", 9, 4)
	})

	SetEnabled(false)
	assert.False(t, Enabled())
	assert.NotPanics(t, func() { Assert(false, "ignored") })
}
