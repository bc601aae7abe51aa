package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerived_RecomputeSkipsOverride(t *testing.T) {
	d := Computed(10)

	d = d.Recompute(20)
	assert.Equal(t, 20, d.Value)
	assert.False(t, d.Overridden)

	d = d.Override(99)
	assert.Equal(t, 99, d.Value)
	assert.True(t, d.Overridden)

	d = d.Recompute(30)
	assert.Equal(t, 99, d.Value, "recompute must not disturb an override")

	d = d.Clear(30)
	assert.Equal(t, 30, d.Value)
	assert.False(t, d.Overridden)
}
