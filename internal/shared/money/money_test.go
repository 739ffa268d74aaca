package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$13.00", Format(1300))
	assert.Equal(t, "$5.00", Format(500))
	assert.Equal(t, "$0.99", Format(99))
	assert.Equal(t, "$0.00", Format(0))
	assert.Equal(t, "-$2.50", Format(-250))
}
