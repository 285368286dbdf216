package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/AlexZinkM/algo-wallet/internal/model"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for backup files, N=2^15 (~32MB RAM)
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 24

	BackupVersion   = "1.0"
	BackupSuffix    = "algo-wallet-backup"
	BackupExtension = ".txt"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SealBackup encrypts payload with a key derived from passphrase.
// passphrase must be []byte for security (caller should zero it after use)
func SealBackup(payload *model.BackupPayload, passphrase []byte) (*model.BackupFile, error) {
	if payload == nil {
		return nil, errors.New("backup payload is nil")
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	var nonce [nonceLen]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer clear(key[:])

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backup payload: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	ciphertext := secretbox.Seal(nil, plaintext, &nonce, key)

	return &model.BackupFile{
		Version:    BackupVersion,
		Suffix:     BackupSuffix,
		DeviceID:   payload.DeviceID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce[:]),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// EncryptBackup encrypts payload and writes it to a new .txt backup file.
// An existing non-empty file is never overwritten.
func EncryptBackup(filePath string, payload *model.BackupPayload, passphrase []byte) error {
	if !strings.HasSuffix(filePath, BackupExtension) {
		return fmt.Errorf("file must have %s extension", BackupExtension)
	}

	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return fmt.Errorf("file is not empty: %w", os.ErrExist)
	}

	backup, err := SealBackup(payload, passphrase)
	if err != nil {
		return err
	}

	return writeBackupFile(filePath, backup)
}

func writeBackupFile(filePath string, backup *model.BackupFile) error {
	fileData, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	fileDataWithBOM := append(append([]byte{}, utf8BOM...), fileData...)

	if err := os.WriteFile(filePath, fileDataWithBOM, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// deriveKey stretches the normalized passphrase into a secretbox key
func deriveKey(passphrase []byte, salt []byte) (*[scryptKeyLen]byte, error) {
	normalized := NormalizePassphrase(passphrase)
	defer clear(normalized)

	if len(normalized) == 0 {
		return nil, errors.New("passphrase cannot be empty")
	}

	derived, err := scrypt.Key(normalized, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(derived)

	var key [scryptKeyLen]byte
	copy(key[:], derived)
	return &key, nil
}
