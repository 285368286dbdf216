package crypto

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const (
	// 128 bits of entropy encode to 12 words
	passphraseEntropyBits = 128
	PassphraseWords       = 12
)

// GenerateBackupPassphrase creates a new 12-word backup key
func GenerateBackupPassphrase() (string, error) {
	entropy, err := bip39.NewEntropy(passphraseEntropyBits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to encode passphrase: %w", err)
	}

	return mnemonic, nil
}

// IsValidBackupPassphrase reports whether passphrase is a 12-word key with a valid checksum
func IsValidBackupPassphrase(passphrase string) bool {
	normalized := string(NormalizePassphrase([]byte(passphrase)))
	return len(strings.Fields(normalized)) == PassphraseWords && bip39.IsMnemonicValid(normalized)
}

// NormalizePassphrase lowercases the words and joins them with single spaces,
// so keys typed with extra whitespace or capitals derive the same key.
func NormalizePassphrase(passphrase []byte) []byte {
	words := bytes.Fields(bytes.ToLower(passphrase))
	return bytes.Join(words, []byte(" "))
}
