package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/AlexZinkM/algo-wallet/wallet"

	"github.com/urfave/cli/v2"
)

func accountQRCommand() *cli.Command {
	return &cli.Command{
		Name:  "qr",
		Usage: "Render an account address as a QR code",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Aliases:  []string{"a"},
				Usage:    "Algorand address",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write the PNG to this file instead of printing base64",
			},
		},
		Action: func(c *cli.Context) error {
			resp, err := wallet.AccountQRCode(c.String("address"))
			if err != nil {
				return err
			}

			out := c.String("out")
			if out == "" {
				fmt.Fprintln(c.App.Writer, resp.QR)
				return nil
			}

			png, err := base64.StdEncoding.DecodeString(resp.QR)
			if err != nil {
				return fmt.Errorf("failed to decode QR code: %w", err)
			}
			if err := os.WriteFile(out, png, 0644); err != nil {
				return fmt.Errorf("failed to write QR code: %w", err)
			}
			fmt.Fprintf(c.App.Writer, "✓ QR code for %s written to %s\n", resp.Address, out)
			return nil
		},
	}
}
