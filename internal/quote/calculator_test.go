package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVAT(t *testing.T) {
	assert.InDelta(t, 9.0, VAT(45), 0.001)
	assert.InDelta(t, 0.0, VAT(0), 0.001)
}

func TestTotal(t *testing.T) {
	assert.InDelta(t, 54.0, Total(45), 0.001)
	assert.InDelta(t, 120.0, Total(100), 0.001)
}
