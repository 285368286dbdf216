package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/algo-wallet/internal/model"

	"golang.org/x/crypto/nacl/secretbox"
)

// ErrInvalidPassphrase is returned when a backup cannot be opened with the given passphrase
var ErrInvalidPassphrase = errors.New("invalid passphrase")

// OpenBackup decrypts an in-memory backup.
// passphrase must be []byte for security (caller should zero it after use)
func OpenBackup(backup *model.BackupFile, passphrase []byte) (*model.BackupPayload, error) {
	if backup == nil {
		return nil, errors.New("backup file is nil")
	}
	if backup.Suffix != BackupSuffix {
		return nil, fmt.Errorf("unsupported backup suffix %q", backup.Suffix)
	}

	salt, err := base64.StdEncoding.DecodeString(backup.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonceBytes, err := base64.StdEncoding.DecodeString(backup.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}
	if len(nonceBytes) != nonceLen {
		return nil, fmt.Errorf("invalid nonce length: %d", len(nonceBytes))
	}
	var nonce [nonceLen]byte
	copy(nonce[:], nonceBytes)

	ciphertext, err := base64.StdEncoding.DecodeString(backup.CipherText)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer clear(key[:])

	plaintext, ok := secretbox.Open(nil, ciphertext, &nonce, key)
	if !ok {
		return nil, ErrInvalidPassphrase
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	var payload model.BackupPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal backup payload: %w", err)
	}

	return &payload, nil
}

// DecryptBackup reads and decrypts a backup file
func DecryptBackup(filePath string, passphrase []byte) (*model.BackupFile, *model.BackupPayload, error) {
	backup, err := ReadBackupHeader(filePath)
	if err != nil {
		return nil, nil, err
	}

	payload, err := OpenBackup(backup, passphrase)
	if err != nil {
		return nil, nil, err
	}

	return backup, payload, nil
}

// ReadBackupHeader reads the backup file structure without decrypting it
func ReadBackupHeader(filePath string) (*model.BackupFile, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	fileData = bytes.TrimPrefix(fileData, utf8BOM)

	var backup model.BackupFile
	if err := json.Unmarshal(fileData, &backup); err != nil {
		return nil, fmt.Errorf("failed to unmarshal backup file: %w", err)
	}

	return &backup, nil
}

// RekeyBackup re-encrypts the backup at srcPath under newPassphrase and writes it to dstPath.
// The device id and accounts are kept; salt and nonce are fresh.
func RekeyBackup(srcPath, dstPath string, oldPassphrase, newPassphrase []byte) error {
	_, payload, err := DecryptBackup(srcPath, oldPassphrase)
	if err != nil {
		return fmt.Errorf("failed to decrypt backup: %w", err)
	}
	defer payload.Clear()

	if err := EncryptBackup(dstPath, payload, newPassphrase); err != nil {
		return fmt.Errorf("failed to encrypt backup: %w", err)
	}

	return nil
}
