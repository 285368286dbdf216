package wallet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlexZinkM/algo-wallet/internal/crypto"
	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/google/uuid"
)

const providerName = "algo-wallet"

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var target *FileExistsError
	return errors.As(err, &target)
}

// GenerateBackupKey creates the 12-word key that encrypts backups
func GenerateBackupKey() (*model.BackupKeyResponse, error) {
	passphrase, err := crypto.GenerateBackupPassphrase()
	if err != nil {
		return nil, fmt.Errorf("failed to generate backup key: %w", err)
	}
	return &model.BackupKeyResponse{
		Passphrase: passphrase,
		Words:      crypto.PassphraseWords,
	}, nil
}

// ExportBackup encrypts the selected accounts into a new backup file.
// A device id is generated when the request has none.
// passphrase must be []byte for security (caller should zero it after use)
func ExportBackup(filePath string, passphrase []byte, deviceID string, accounts []model.BackupAccount) (*model.BackupExportResponse, error) {
	if ext := filepath.Ext(filePath); ext != crypto.BackupExtension {
		return nil, fmt.Errorf("file must have %s extension", crypto.BackupExtension)
	}

	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return nil, &FileExistsError{Message: "backup file is not empty"}
	}

	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	payload := &model.BackupPayload{
		DeviceID:     deviceID,
		ProviderName: providerName,
		Accounts:     accounts,
	}

	if err := crypto.EncryptBackup(filePath, payload, passphrase); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, &FileExistsError{Message: "backup file is not empty"}
		}
		return nil, fmt.Errorf("failed to encrypt backup: %w", err)
	}

	return &model.BackupExportResponse{
		Success:  true,
		Message:  "Backup exported successfully",
		File:     filePath,
		DeviceID: deviceID,
		Accounts: len(accounts),
	}, nil
}

// RestoreBackup decrypts a backup file. The caller owns the returned private keys
// and should call Clear on the payload when done.
func RestoreBackup(filePath string, passphrase []byte) (*model.BackupPayload, error) {
	_, payload, err := crypto.DecryptBackup(filePath, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to restore backup: %w", err)
	}
	return payload, nil
}

// RekeyBackup re-encrypts a backup under a new passphrase into dstPath
func RekeyBackup(srcPath, dstPath string, oldPassphrase, newPassphrase []byte) error {
	if fileInfo, err := os.Stat(dstPath); err == nil && fileInfo.Size() > 0 {
		return &FileExistsError{Message: "destination file is not empty"}
	}
	return crypto.RekeyBackup(srcPath, dstPath, oldPassphrase, newPassphrase)
}
