package parser

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

// ErrEmptyTransaction is returned for empty input
var ErrEmptyTransaction = errors.New("empty transaction")

// DecodeBase64 decodes a base64 msgpack transaction (signed or unsigned)
func DecodeBase64(encoded string) (model.Transaction, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return model.Transaction{}, ErrEmptyTransaction
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// dApps also send URL-safe encodings
		raw, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if err != nil {
			return model.Transaction{}, fmt.Errorf("failed to decode base64: %w", err)
		}
	}

	return Decode(raw)
}

// Decode decodes msgpack bytes. A signed transaction envelope is tried first,
// then a bare transaction.
func Decode(raw []byte) (model.Transaction, error) {
	if len(raw) == 0 {
		return model.Transaction{}, ErrEmptyTransaction
	}

	var stx types.SignedTxn
	if err := msgpack.Decode(raw, &stx); err == nil && stx.Txn.Type != "" {
		return FromSDK(stx.Txn), nil
	}

	var txn types.Transaction
	if err := msgpack.Decode(raw, &txn); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to decode msgpack transaction: %w", err)
	}
	if txn.Type == "" {
		return model.Transaction{}, errors.New("transaction has no type")
	}

	return FromSDK(txn), nil
}

// FromSDK converts an SDK transaction into the review model.
// Optional ids are nil when zero, and the asset configuration action is decided here.
func FromSDK(txn types.Transaction) model.Transaction {
	out := model.Transaction{
		ID:     crypto.GetTxID(txn),
		Kind:   kindOf(txn.Type),
		Sender: addressBytes(txn.Sender),
		Fee:    uint64(txn.Fee),
		Note:   txn.Note,
	}

	switch out.Kind {
	case model.KindPayment:
		out.Receiver = addressBytes(txn.Receiver)
		out.Amount = uint64(txn.Amount)
	case model.KindAssetTransfer:
		out.Receiver = addressBytes(txn.AssetReceiver)
		out.Amount = txn.AssetAmount
	case model.KindApplicationCall:
		out.Application = &model.ApplicationCall{
			ApplicationID: optionalID(uint64(txn.ApplicationID)),
			OnComplete:    onCompleteOf(txn.OnCompletion),
		}
	case model.KindAssetConfig:
		out.AssetConfig = assetConfigOf(txn.AssetConfigTxnFields)
	}

	return out
}

func kindOf(t types.TxType) model.Kind {
	switch t {
	case types.PaymentTx:
		return model.KindPayment
	case types.AssetTransferTx:
		return model.KindAssetTransfer
	case types.ApplicationCallTx:
		return model.KindApplicationCall
	case types.AssetConfigTx:
		return model.KindAssetConfig
	default:
		return model.KindOther
	}
}

func onCompleteOf(oc types.OnCompletion) model.OnComplete {
	switch oc {
	case types.OptInOC:
		return model.OnCompleteOptIn
	case types.CloseOutOC:
		return model.OnCompleteCloseOut
	case types.ClearStateOC:
		return model.OnCompleteClearState
	case types.UpdateApplicationOC:
		return model.OnCompleteUpdateApplication
	case types.DeleteApplicationOC:
		return model.OnCompleteDeleteApplication
	default:
		return model.OnCompleteNoOp
	}
}

func assetConfigOf(fields types.AssetConfigTxnFields) *model.AssetConfig {
	hasParams := fields.AssetParams != (types.AssetParams{})
	cfg := &model.AssetConfig{
		Action:  model.AssetConfigActionOf(fields.ConfigAsset != 0, hasParams),
		AssetID: optionalID(uint64(fields.ConfigAsset)),
	}
	if fields.AssetParams.AssetName != "" {
		name := fields.AssetParams.AssetName
		cfg.AssetName = &name
	}
	return cfg
}

func optionalID(id uint64) *uint64 {
	if id == 0 {
		return nil
	}
	return &id
}

func addressBytes(a types.Address) []byte {
	if a == (types.Address{}) {
		return nil
	}
	out := make([]byte, len(a))
	copy(out, a[:])
	return out
}
