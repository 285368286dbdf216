package common

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	AlgoDecimals = 6 // ALGO has 6 decimals (microAlgos)

	ellipsis = "..."
)

// TrimOptions holds the presentation thresholds for addresses and names
type TrimOptions struct {
	AddressPrefix int // characters kept at the start of an address
	AddressSuffix int // characters kept at the end of an address
	NameMax       int // maximum characters of an account name before truncation
}

// DefaultTrimOptions returns thresholds matching the mobile review screen
func DefaultTrimOptions() TrimOptions {
	return TrimOptions{
		AddressPrefix: 6,
		AddressSuffix: 6,
		NameMax:       18,
	}
}

// MicroAlgosToAlgos converts microAlgos to ALGO string without float precision loss
func MicroAlgosToAlgos(micro uint64) string {
	return formatWithDecimals(micro, AlgoDecimals)
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 6) = "24.981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := fmt.Sprintf("%d", value)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// TrimAccountAddress shortens an address to prefix...suffix.
// Addresses short enough to show in full are returned unchanged.
func TrimAccountAddress(address string, opts TrimOptions) string {
	address = strings.TrimSpace(address)
	if opts.AddressPrefix < 0 || opts.AddressSuffix < 0 {
		return address
	}
	if len(address) <= opts.AddressPrefix+opts.AddressSuffix+len(ellipsis) {
		return address
	}
	return address[:opts.AddressPrefix] + ellipsis + address[len(address)-opts.AddressSuffix:]
}

// TrimAccountName truncates a name to NameMax characters followed by an ellipsis.
// A non-positive NameMax disables truncation.
func TrimAccountName(name string, opts TrimOptions) string {
	name = strings.TrimSpace(name)
	if opts.NameMax <= 0 || utf8.RuneCountInString(name) <= opts.NameMax {
		return name
	}
	runes := []rune(name)
	return strings.TrimSpace(string(runes[:opts.NameMax])) + ellipsis
}
