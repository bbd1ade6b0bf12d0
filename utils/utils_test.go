package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDiscount(t *testing.T) {
	assert.Equal(t, 31, CalculateDiscount(129000, 89000))
	assert.Equal(t, 50, CalculateDiscount(100000, 50000))
	assert.Equal(t, 0, CalculateDiscount(100000, 100000))

	// Degenerate original prices carry no discount
	assert.Equal(t, 0, CalculateDiscount(0, 50000))
	assert.Equal(t, 0, CalculateDiscount(-1, 50000))
}
