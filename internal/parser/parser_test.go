package parser

import (
	"encoding/base64"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/algo-wallet/internal/model"
)

func testAddress(b byte) types.Address {
	var a types.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func header() types.Header {
	return types.Header{
		Sender:     testAddress(1),
		Fee:        1000,
		FirstValid: 10,
		LastValid:  1010,
		GenesisID:  "testnet-v1.0",
	}
}

func TestDecode_Payment(t *testing.T) {
	txn := types.Transaction{
		Type:   types.PaymentTx,
		Header: header(),
		PaymentTxnFields: types.PaymentTxnFields{
			Receiver: testAddress(2),
			Amount:   2500000,
		},
	}

	got, err := Decode(msgpack.Encode(txn))
	require.NoError(t, err)

	receiver := testAddress(2)
	sender := testAddress(1)
	assert.Equal(t, model.KindPayment, got.Kind)
	assert.Equal(t, sender[:], got.Sender)
	assert.Equal(t, receiver[:], got.Receiver)
	assert.Equal(t, uint64(2500000), got.Amount)
	assert.Equal(t, uint64(1000), got.Fee)
	assert.NotEmpty(t, got.ID)
	assert.Nil(t, got.Application)
	assert.Nil(t, got.AssetConfig)
}

func TestDecode_SignedEnvelope(t *testing.T) {
	txn := types.Transaction{
		Type:   types.PaymentTx,
		Header: header(),
		PaymentTxnFields: types.PaymentTxnFields{
			Receiver: testAddress(3),
			Amount:   1,
		},
	}

	got, err := Decode(msgpack.Encode(types.SignedTxn{Txn: txn}))
	require.NoError(t, err)
	assert.Equal(t, model.KindPayment, got.Kind)
	assert.Equal(t, uint64(1), got.Amount)
}

func TestDecodeBase64_ApplicationCall(t *testing.T) {
	tests := []struct {
		name       string
		appID      types.AppIndex
		oc         types.OnCompletion
		expectedID *uint64
		expectedOC model.OnComplete
	}{
		{"create", 0, types.NoOpOC, nil, model.OnCompleteNoOp},
		{"noop", 55, types.NoOpOC, ptr(55), model.OnCompleteNoOp},
		{"optin", 55, types.OptInOC, ptr(55), model.OnCompleteOptIn},
		{"closeout", 55, types.CloseOutOC, ptr(55), model.OnCompleteCloseOut},
		{"clearstate", 55, types.ClearStateOC, ptr(55), model.OnCompleteClearState},
		{"update", 55, types.UpdateApplicationOC, ptr(55), model.OnCompleteUpdateApplication},
		{"delete", 55, types.DeleteApplicationOC, ptr(55), model.OnCompleteDeleteApplication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := types.Transaction{
				Type:   types.ApplicationCallTx,
				Header: header(),
				ApplicationFields: types.ApplicationFields{
					ApplicationCallTxnFields: types.ApplicationCallTxnFields{
						ApplicationID: tt.appID,
						OnCompletion:  tt.oc,
					},
				},
			}

			encoded := base64.StdEncoding.EncodeToString(msgpack.Encode(txn))
			got, err := DecodeBase64(encoded)
			require.NoError(t, err)

			assert.Equal(t, model.KindApplicationCall, got.Kind)
			require.NotNil(t, got.Application)
			assert.Equal(t, tt.expectedID, got.Application.ApplicationID)
			assert.Equal(t, tt.expectedOC, got.Application.OnComplete)
			assert.Nil(t, got.Receiver)
		})
	}
}

func TestFromSDK_AssetConfig(t *testing.T) {
	params := types.AssetParams{
		Total:     1000,
		AssetName: "Foo",
		UnitName:  "FOO",
		Manager:   testAddress(1),
	}

	tests := []struct {
		name    string
		fields  types.AssetConfigTxnFields
		action  model.AssetConfigAction
		assetID *uint64
		hasName bool
	}{
		{"create", types.AssetConfigTxnFields{AssetParams: params}, model.AssetConfigCreate, nil, true},
		{"update", types.AssetConfigTxnFields{ConfigAsset: 42, AssetParams: types.AssetParams{Manager: testAddress(4)}}, model.AssetConfigUpdate, ptr(42), false},
		{"destroy", types.AssetConfigTxnFields{ConfigAsset: 42}, model.AssetConfigDelete, ptr(42), false},
		{"empty", types.AssetConfigTxnFields{}, model.AssetConfigUnknown, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSDK(types.Transaction{
				Type:                 types.AssetConfigTx,
				Header:               header(),
				AssetConfigTxnFields: tt.fields,
			})

			assert.Equal(t, model.KindAssetConfig, got.Kind)
			require.NotNil(t, got.AssetConfig)
			assert.Equal(t, tt.action, got.AssetConfig.Action)
			assert.Equal(t, tt.assetID, got.AssetConfig.AssetID)
			if tt.hasName {
				require.NotNil(t, got.AssetConfig.AssetName)
				assert.Equal(t, "Foo", *got.AssetConfig.AssetName)
			} else {
				assert.Nil(t, got.AssetConfig.AssetName)
			}
		})
	}
}

func TestFromSDK_AssetTransferAndOtherKinds(t *testing.T) {
	axfer := FromSDK(types.Transaction{
		Type:   types.AssetTransferTx,
		Header: header(),
		AssetTransferTxnFields: types.AssetTransferTxnFields{
			XferAsset:     31566704,
			AssetAmount:   25,
			AssetReceiver: testAddress(9),
		},
	})
	receiver := testAddress(9)
	assert.Equal(t, model.KindAssetTransfer, axfer.Kind)
	assert.Equal(t, receiver[:], axfer.Receiver)
	assert.Equal(t, uint64(25), axfer.Amount)

	keyreg := FromSDK(types.Transaction{Type: types.KeyRegistrationTx, Header: header()})
	assert.Equal(t, model.KindOther, keyreg.Kind)
	assert.Nil(t, keyreg.Receiver)
}

func TestFromSDK_ZeroReceiverIsAbsent(t *testing.T) {
	got := FromSDK(types.Transaction{Type: types.PaymentTx, Header: header()})
	assert.Nil(t, got.Receiver)
}

func TestDecode_Errors(t *testing.T) {
	_, err := DecodeBase64("")
	assert.ErrorIs(t, err, ErrEmptyTransaction)

	_, err = DecodeBase64("!!!not base64!!!")
	assert.Error(t, err)

	_, err = Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyTransaction)

	_, err = Decode([]byte{0xc1})
	assert.Error(t, err)
}

func ptr(v uint64) *uint64 { return &v }
