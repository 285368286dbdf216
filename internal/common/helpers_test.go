package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMicroAlgosToAlgos(t *testing.T) {
	tests := []struct {
		micro    uint64
		expected string
	}{
		{0, "0.000000"},
		{1, "0.000001"},
		{1000, "0.001000"},
		{1000000, "1.000000"},
		{24981836, "24.981836"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MicroAlgosToAlgos(tt.micro))
	}
}

func TestTrimAccountAddress(t *testing.T) {
	opts := DefaultTrimOptions()
	address := "VCMJKWOY5P5P7SKMZFFOCEROPJCZOTIJMNIYNUCKH7LRO45JMJP6UYBIJA"

	t.Run("long address is shortened", func(t *testing.T) {
		assert.Equal(t, "VCMJKW...UYBIJA", TrimAccountAddress(address, opts))
	})

	t.Run("short address is kept", func(t *testing.T) {
		assert.Equal(t, "ABCDEF", TrimAccountAddress("ABCDEF", opts))
	})

	t.Run("surrounding whitespace is removed", func(t *testing.T) {
		assert.Equal(t, "ABC", TrimAccountAddress("  ABC \n", opts))
	})

	t.Run("custom lengths", func(t *testing.T) {
		got := TrimAccountAddress(address, TrimOptions{AddressPrefix: 4, AddressSuffix: 2})
		assert.Equal(t, "VCMJ...JA", got)
	})

	t.Run("empty address", func(t *testing.T) {
		assert.Equal(t, "", TrimAccountAddress("", opts))
	})
}

func TestTrimAccountName(t *testing.T) {
	opts := TrimOptions{NameMax: 8}

	assert.Equal(t, "Savings", TrimAccountName("Savings", opts))
	assert.Equal(t, "Savings...", TrimAccountName("Savings account", opts))
	assert.Equal(t, "Main", TrimAccountName("  Main  ", opts))
	assert.Equal(t, "Ünïcödé...", TrimAccountName("Ünïcödé Ñame", TrimOptions{NameMax: 8}))

	// zero disables truncation
	assert.Equal(t, "Savings account", TrimAccountName("Savings account", TrimOptions{}))
}
