package wallet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlexZinkM/algo-wallet/internal/model"
)

// LoadDirectory reads the account directory snapshot, a JSON array of
// {"address", "name"} objects. An empty path yields an empty directory.
func LoadDirectory(filePath string) (model.AccountDirectory, error) {
	if filePath == "" {
		return model.AccountDirectory{}, nil
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	fileData = bytes.TrimPrefix(fileData, []byte{0xEF, 0xBB, 0xBF})

	var accounts []model.Account
	if err := json.Unmarshal(fileData, &accounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts file: %w", err)
	}

	return model.NewAccountDirectory(accounts), nil
}

// LoadBackupAccounts reads accounts selected for a backup export from a JSON array
func LoadBackupAccounts(filePath string) ([]model.BackupAccount, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	var accounts []model.BackupAccount
	if err := json.Unmarshal(fileData, &accounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts file: %w", err)
	}

	return accounts, nil
}
