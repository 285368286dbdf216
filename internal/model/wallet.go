package model

// BackupFile represents the backup file structure written to disk
type BackupFile struct {
	Version    string `json:"version"`
	Suffix     string `json:"suffix"`
	DeviceID   string `json:"device_id"`
	CreatedAt  string `json:"created_at"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipher_text"`
}

// BackupAccount is one account inside an encrypted backup
type BackupAccount struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	AccountType string `json:"account_type"`
	PrivateKey  []byte `json:"private_key,omitempty"` // stored as base64 in JSON
}

// BackupPayload represents decrypted backup data
type BackupPayload struct {
	DeviceID     string          `json:"device_id"`
	ProviderName string          `json:"provider_name"`
	Accounts     []BackupAccount `json:"accounts"`
}

// Clear wipes private keys held by the payload
func (p *BackupPayload) Clear() {
	if p == nil {
		return
	}
	for i := range p.Accounts {
		clear(p.Accounts[i].PrivateKey)
	}
}
