package wallet

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/skip2/go-qrcode"
)

// AccountQRCode validates an address and returns it with its QR code
func AccountQRCode(address string) (*model.AccountQRResponse, error) {
	address = strings.TrimSpace(address)
	if _, err := types.DecodeAddress(address); err != nil {
		return nil, fmt.Errorf("invalid Algorand address: %w", err)
	}

	qr, err := generateQRCode(address)
	if err != nil {
		return nil, err
	}

	return &model.AccountQRResponse{Address: address, QR: qr}, nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
