package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, Correct, Status("done"))
	assert.Equal(t, Incorrect, Status("error"))
	assert.Equal(t, Active, Status("processing"))
	assert.Equal(t, Pending, Status("pending"))
	assert.Equal(t, Pending, Status("whatever"))
}

func TestLevel(t *testing.T) {
	assert.Equal(t, Incorrect, Level("ERROR"))
	assert.Equal(t, Caution, Level("warn"))
	assert.Equal(t, Hint, Level("DEBUG"))
	assert.Equal(t, Body, Level("INFO"))
}
