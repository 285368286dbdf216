package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexZinkM/algo-wallet/internal/config"
	"github.com/AlexZinkM/algo-wallet/internal/crypto"
	"github.com/AlexZinkM/algo-wallet/wallet"

	"github.com/urfave/cli/v2"
)

func backupKeyCommand() *cli.Command {
	return &cli.Command{
		Name:  "key",
		Usage: "Generate a 12-word backup key",
		Action: func(c *cli.Context) error {
			key, err := wallet.GenerateBackupKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, key.Passphrase)
			fmt.Fprintln(c.App.ErrWriter, "Write these words down. They are not stored anywhere.")
			return nil
		},
	}
}

func backupExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Encrypt accounts into a new backup file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "accounts-file",
				Usage:    "JSON array of accounts to back up (address, name, account_type, private_key)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "device-id",
				Usage: "Device id stored in the backup (generated when empty)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Backup file to create (defaults to BACKUP_FILE_PATH)",
			},
		},
		Action: func(c *cli.Context) error {
			if err := loadConfig(c); err != nil {
				return err
			}

			output := config.GetBackupFilePath()
			if c.IsSet("output") {
				output = c.String("output")
			}

			// the subcommand flag shadows the global one
			accounts, err := wallet.LoadBackupAccounts(c.String("accounts-file"))
			if err != nil {
				return err
			}

			passphrase, err := promptNewPassphrase()
			if err != nil {
				return err
			}
			defer clear(passphrase)

			resp, err := wallet.ExportBackup(output, passphrase, c.String("device-id"), accounts)
			for i := range accounts {
				clear(accounts[i].PrivateKey)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "✓ %s\n", resp.Message)
			fmt.Fprintf(c.App.Writer, "  File: %s\n", resp.File)
			fmt.Fprintf(c.App.Writer, "  Device ID: %s\n", resp.DeviceID)
			fmt.Fprintf(c.App.Writer, "  Accounts: %d\n", resp.Accounts)
			return nil
		},
	}
}

func backupRestoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "restore",
		Usage:     "Decrypt a backup file and list its accounts",
		ArgsUsage: "[BACKUP_FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the decrypted payload as JSON, private keys included",
			},
		},
		Action: func(c *cli.Context) error {
			if err := loadConfig(c); err != nil {
				return err
			}

			path := config.GetBackupFilePath()
			if c.NArg() > 0 {
				path = c.Args().First()
			}

			header, err := crypto.ReadBackupHeader(path)
			if err != nil {
				return err
			}

			passphrase, err := config.PromptForPassphrase("Backup key: ")
			if err != nil {
				return err
			}
			defer clear(passphrase)

			payload, err := wallet.RestoreBackup(path, passphrase)
			if err != nil {
				return err
			}
			defer payload.Clear()

			if c.Bool("json") {
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}

			fmt.Fprintf(c.App.Writer, "Backup created %s on device %s\n", header.CreatedAt, payload.DeviceID)
			for _, acc := range payload.Accounts {
				fmt.Fprintf(c.App.Writer, "  %s  %-20s %s\n", acc.Address, acc.Name, acc.AccountType)
			}
			return nil
		},
	}
}

func backupRekeyCommand() *cli.Command {
	return &cli.Command{
		Name:  "rekey",
		Usage: "Re-encrypt a backup under a new backup key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "Existing backup file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "New backup file to create",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			oldPassphrase, err := config.PromptForPassphrase("Current backup key: ")
			if err != nil {
				return err
			}
			defer clear(oldPassphrase)

			newPassphrase, err := promptNewPassphrase()
			if err != nil {
				return err
			}
			defer clear(newPassphrase)

			if err := wallet.RekeyBackup(c.String("from"), c.String("to"), oldPassphrase, newPassphrase); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "✓ Backup re-encrypted to %s\n", c.String("to"))
			return nil
		},
	}
}

// promptNewPassphrase asks for a backup key twice
func promptNewPassphrase() ([]byte, error) {
	first, err := config.PromptForPassphrase("Backup key: ")
	if err != nil {
		return nil, err
	}

	second, err := config.PromptForPassphrase("Repeat backup key: ")
	if err != nil {
		clear(first)
		return nil, err
	}
	defer clear(second)

	if !bytes.Equal(crypto.NormalizePassphrase(first), crypto.NormalizePassphrase(second)) {
		clear(first)
		return nil, errors.New("backup keys do not match")
	}
	if !crypto.IsValidBackupPassphrase(string(first)) {
		clear(first)
		return nil, errors.New("backup key must be 12 words from `algo-wallet backup key`")
	}
	return first, nil
}
