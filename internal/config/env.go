package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlexZinkM/algo-wallet/internal/common"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Backup passphrases are never part of the configuration: they are generated,
// sent with a request or prompted at runtime.
type Config struct {
	Port                 string `envconfig:"PORT" default:"8080"`
	LogLevel             string `envconfig:"LOG_LEVEL" default:"info"`
	AccountsFilePath     string `envconfig:"ACCOUNTS_FILE_PATH"`
	BackupFilePath       string `envconfig:"BACKUP_FILE_PATH" default:"algo-wallet-backup.txt"`
	BackupCooldownSecond int    `envconfig:"BACKUP_EXPORT_COOLDOWN_SECONDS" default:"60"`
	TrimAddressPrefix    int    `envconfig:"TRIM_ADDRESS_PREFIX" default:"6"`
	TrimAddressSuffix    int    `envconfig:"TRIM_ADDRESS_SUFFIX" default:"6"`
	TrimNameMax          int    `envconfig:"TRIM_NAME_MAX" default:"18"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads and validates configuration without touching the global instance.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks values envconfig cannot express
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.BackupCooldownSecond < 0 {
		errs = append(errs, errors.New("BACKUP_EXPORT_COOLDOWN_SECONDS cannot be negative"))
	}
	if c.TrimAddressPrefix < 0 || c.TrimAddressSuffix < 0 {
		errs = append(errs, errors.New("TRIM_ADDRESS_PREFIX and TRIM_ADDRESS_SUFFIX cannot be negative"))
	}
	if c.TrimNameMax < 0 {
		errs = append(errs, errors.New("TRIM_NAME_MAX cannot be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// TrimOptions returns the display thresholds for addresses and names
func (c *Config) TrimOptions() common.TrimOptions {
	return common.TrimOptions{
		AddressPrefix: c.TrimAddressPrefix,
		AddressSuffix: c.TrimAddressSuffix,
		NameMax:       c.TrimNameMax,
	}
}

// BackupCooldown returns the minimum time between two backup exports
func (c *Config) BackupCooldown() time.Duration {
	return time.Duration(c.BackupCooldownSecond) * time.Second
}

// Set replaces the global configuration instance.
func Set(c *Config) {
	cfg = c
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetAccountsFilePath returns path to the account directory snapshot
func GetAccountsFilePath() string {
	return Get().AccountsFilePath
}

// GetBackupFilePath returns path of the backup file written by exports
func GetBackupFilePath() string {
	return Get().BackupFilePath
}

// PromptForPassphrase prompts for a passphrase in the terminal without echoing it.
// Caller must zero the returned slice after use for security.
func PromptForPassphrase(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively to enter the passphrase")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("passphrase cannot be empty")
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}
