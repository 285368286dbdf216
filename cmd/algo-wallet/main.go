package main

import (
	"fmt"
	"log"
	"os"

	"github.com/AlexZinkM/algo-wallet/internal/config"

	"github.com/urfave/cli/v2"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
)

func main() {
	app := &cli.App{
		Name:  "algo-wallet",
		Usage: "Local Algorand wallet: review transactions before signing, export encrypted backups",
		Description: `Runs the local wallet HTTP API or performs the same operations from the terminal.

Configuration comes from the environment; the global flags below override it.`,
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Commands: []*cli.Command{
			serveCommand(),
			reviewCommand(),
			{
				Name:  "backup",
				Usage: "Encrypted account backup commands",
				Subcommands: []*cli.Command{
					backupKeyCommand(),
					backupExportCommand(),
					backupRestoreCommand(),
					backupRekeyCommand(),
				},
			},
			{
				Name:  "account",
				Usage: "Account commands",
				Subcommands: []*cli.Command{
					accountQRCommand(),
				},
			},
		},
		// Global flags available to all commands
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "accounts-file",
				Usage: "JSON array of {address, name} known to the wallet",
			},
			&cli.StringFlag{
				Name:  "backup-file",
				Usage: "Path of the .txt backup file",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the environment and applies global flag overrides
func loadConfig(c *cli.Context) error {
	if err := config.Init(); err != nil {
		return err
	}

	cfg := config.Get()
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("accounts-file") {
		cfg.AccountsFilePath = c.String("accounts-file")
	}
	if c.IsSet("backup-file") {
		cfg.BackupFilePath = c.String("backup-file")
	}
	return nil
}
