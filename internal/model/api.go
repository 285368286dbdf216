package model

import (
	"errors"
	"strings"
)

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// BackupKeyResponse represents response for POST /backup/key
type BackupKeyResponse struct {
	Passphrase string `json:"passphrase"`
	Words      int    `json:"words"`
}

// BackupExportRequest represents request for POST /backup/export
type BackupExportRequest struct {
	Passphrase string          `json:"passphrase" binding:"required"`
	DeviceID   string          `json:"device_id"`
	Accounts   []BackupAccount `json:"accounts" binding:"required"`
}

// Validate checks the export request before any file is touched.
func (r *BackupExportRequest) Validate() error {
	if len(strings.Fields(r.Passphrase)) == 0 {
		return errors.New("passphrase is required")
	}
	if len(r.Accounts) == 0 {
		return errors.New("at least one account must be selected")
	}
	for _, a := range r.Accounts {
		if a.Address == "" {
			return errors.New("every account must have an address")
		}
	}
	return nil
}

// BackupExportResponse represents response for POST /backup/export
type BackupExportResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	DeviceID string `json:"device_id,omitempty"`
	Accounts int    `json:"accounts"`
}

// AccountQRResponse represents response for GET /accounts/qr
type AccountQRResponse struct {
	Address string `json:"address"`
	QR      string `json:"qr"` // base64 PNG
}
