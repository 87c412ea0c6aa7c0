package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntnStaysInRange(t *testing.T) {
	r := New()
	for i := 0; i < 200; i++ {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestIntnNonPositive(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestStringUsesAlphabet(t *testing.T) {
	r := New()
	s := r.String(32, "AB")
	assert.Len(t, s, 32)
	assert.Empty(t, strings.Trim(s, "AB"))
}

func TestStringEmpty(t *testing.T) {
	r := New()
	assert.Empty(t, r.String(0, "AB"))
	assert.Empty(t, r.String(5, ""))
}
