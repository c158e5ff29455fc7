package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type faceID int

func TestName(t *testing.T) {
	first := Name(faceID(3))
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(faceID(3)), "names are memoized")
	// Different types with the same underlying value are distinct keys
	assert.NotEqual(t, "Ø", Name(3))

	assert.Equal(t, "Ø", Name(faceID(-1)))
	assert.Equal(t, "Ø", Name(nil))
	var p *int
	assert.Equal(t, "Ø", Name(p))
}
