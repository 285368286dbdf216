package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/algo-wallet/internal/config"
	"github.com/AlexZinkM/algo-wallet/internal/crypto"
	"github.com/AlexZinkM/algo-wallet/internal/metrics"
	"github.com/AlexZinkM/algo-wallet/internal/model"
)

func testConfig(t *testing.T, cooldownSeconds int) *config.Config {
	t.Helper()
	return &config.Config{
		Port:                 "8080",
		BackupFilePath:       filepath.Join(t.TempDir(), "backup.txt"),
		BackupCooldownSecond: cooldownSeconds,
		TrimAddressPrefix:    6,
		TrimAddressSuffix:    6,
		TrimNameMax:          18,
	}
}

func newTestHandler(t *testing.T, cfg *config.Config) (*WalletHandler, *prometheus.Registry) {
	t.Helper()
	config.Set(cfg)
	t.Cleanup(func() { config.Set(nil) })

	registry := prometheus.NewRegistry()
	h, err := NewWalletHandler(model.AccountDirectory{}, metrics.NewMetrics(registry))
	require.NoError(t, err)
	return h, registry
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data)))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func backupKey(t *testing.T) string {
	t.Helper()
	key, err := crypto.GenerateBackupPassphrase()
	require.NoError(t, err)
	return key
}

func TestNewWalletHandler_RequiresBackupPath(t *testing.T) {
	config.Set(&config.Config{})
	defer config.Set(nil)

	_, err := NewWalletHandler(nil, nil)
	assert.Error(t, err)
}

func TestReviewTransactions(t *testing.T) {
	h, registry := newTestHandler(t, testConfig(t, 0))

	var sender types.Address
	sender[0] = 9
	txn := types.Transaction{
		Type:   types.AssetConfigTx,
		Header: types.Header{Sender: sender, Fee: 1000, FirstValid: 1, LastValid: 10},
		AssetConfigTxnFields: types.AssetConfigTxnFields{
			AssetParams: types.AssetParams{Total: 100, AssetName: "Gold"},
		},
	}

	rec := postJSON(t, h.ReviewTransactions, "/transactions/review", model.ReviewRequest{
		Transactions: []string{base64.StdEncoding.EncodeToString(msgpack.Encode(txn)), "%%%"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp model.ReviewResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Reviews, 2)
	assert.Equal(t, model.CategoryCreateAsset, resp.Reviews[0].Category)
	assert.Equal(t, `Create "Gold" Asset`, resp.Reviews[0].Label)
	assert.NotEmpty(t, resp.Reviews[1].Error)

	expected := `
# HELP transaction_decode_errors_total Total number of transactions that could not be decoded for review
# TYPE transaction_decode_errors_total counter
transaction_decode_errors_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "transaction_decode_errors_total"))
}

func TestReviewTransactions_BadRequests(t *testing.T) {
	h, _ := newTestHandler(t, testConfig(t, 0))

	t.Run("wrong method", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ReviewTransactions(rec, httptest.NewRequest(http.MethodGet, "/transactions/review", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ReviewTransactions(rec, httptest.NewRequest(http.MethodPost, "/transactions/review", bytes.NewBufferString("{")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_body", decodeError(t, rec).Code)
	})

	t.Run("empty group", func(t *testing.T) {
		rec := postJSON(t, h.ReviewTransactions, "/transactions/review", model.ReviewRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_group", decodeError(t, rec).Code)
	})
}

func TestGenerateBackupKey(t *testing.T) {
	h, _ := newTestHandler(t, testConfig(t, 0))

	rec := httptest.NewRecorder()
	h.GenerateBackupKey(rec, httptest.NewRequest(http.MethodPost, "/backup/key", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.BackupKeyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, crypto.PassphraseWords, resp.Words)
	assert.True(t, crypto.IsValidBackupPassphrase(resp.Passphrase))
}

func TestExportBackup(t *testing.T) {
	cfg := testConfig(t, 60)
	h, _ := newTestHandler(t, cfg)

	passphrase := backupKey(t)
	req := model.BackupExportRequest{
		Passphrase: passphrase,
		DeviceID:   "device-1",
		Accounts:   []model.BackupAccount{{Address: "ADDR1", Name: "Main"}},
	}

	rec := postJSON(t, h.ExportBackup, "/backup/export", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.BackupExportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "device-1", resp.DeviceID)
	assert.Equal(t, 1, resp.Accounts)

	_, payload, err := crypto.DecryptBackup(cfg.BackupFilePath, []byte(passphrase))
	require.NoError(t, err)
	assert.Equal(t, "ADDR1", payload.Accounts[0].Address)

	// second export inside the cooldown window
	require.NoError(t, os.Remove(cfg.BackupFilePath))
	rec = postJSON(t, h.ExportBackup, "/backup/export", req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", decodeError(t, rec).Code)
}

func TestExportBackup_FileExists(t *testing.T) {
	cfg := testConfig(t, 0)
	require.NoError(t, os.WriteFile(cfg.BackupFilePath, []byte("existing"), 0600))
	h, _ := newTestHandler(t, cfg)

	rec := postJSON(t, h.ExportBackup, "/backup/export", model.BackupExportRequest{
		Passphrase: backupKey(t),
		Accounts:   []model.BackupAccount{{Address: "ADDR1"}},
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "file_exists", decodeError(t, rec).Code)
}

func TestExportBackup_FailedExportKeepsCooldown(t *testing.T) {
	cfg := testConfig(t, 60)
	require.NoError(t, os.WriteFile(cfg.BackupFilePath, []byte("existing"), 0600))
	h, registry := newTestHandler(t, cfg)

	req := model.BackupExportRequest{
		Passphrase: backupKey(t),
		Accounts:   []model.BackupAccount{{Address: "ADDR1"}},
	}

	rec := postJSON(t, h.ExportBackup, "/backup/export", req)
	require.Equal(t, http.StatusConflict, rec.Code)

	require.NoError(t, os.Remove(cfg.BackupFilePath))
	rec = postJSON(t, h.ExportBackup, "/backup/export", req)
	assert.Equal(t, http.StatusOK, rec.Code)

	expected := `
# HELP backup_exports_total Total number of backup exports by status
# TYPE backup_exports_total counter
backup_exports_total{status="file_exists"} 1
backup_exports_total{status="success"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "backup_exports_total"))
}

func TestExportBackup_Validation(t *testing.T) {
	h, _ := newTestHandler(t, testConfig(t, 0))
	key := backupKey(t)

	tests := []struct {
		name string
		req  model.BackupExportRequest
	}{
		{name: "missing passphrase", req: model.BackupExportRequest{Accounts: []model.BackupAccount{{Address: "A"}}}},
		{name: "blank passphrase", req: model.BackupExportRequest{Passphrase: "   ", Accounts: []model.BackupAccount{{Address: "A"}}}},
		{name: "not a backup key", req: model.BackupExportRequest{Passphrase: "a", Accounts: []model.BackupAccount{{Address: "A"}}}},
		{name: "bad checksum", req: model.BackupExportRequest{Passphrase: strings.Repeat("abandon ", 12), Accounts: []model.BackupAccount{{Address: "A"}}}},
		{name: "no accounts", req: model.BackupExportRequest{Passphrase: key}},
		{name: "account without address", req: model.BackupExportRequest{Passphrase: key, Accounts: []model.BackupAccount{{Name: "x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.ExportBackup, "/backup/export", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "validation", decodeError(t, rec).Code)
		})
	}
}

func TestExportBackup_WipesSecrets(t *testing.T) {
	h, _ := newTestHandler(t, testConfig(t, 0))

	privateKey := []byte{1, 2, 3, 4}
	req := &model.BackupExportRequest{
		Passphrase: backupKey(t),
		Accounts:   []model.BackupAccount{{Address: "ADDR1", PrivateKey: privateKey}},
	}

	_, err := h.exportBackup(req)
	require.NoError(t, err)
	assert.Empty(t, req.Passphrase)
	assert.Equal(t, []byte{0, 0, 0, 0}, privateKey)

	// rejected requests are wiped as well
	rejected := []byte{5, 6}
	_, err = h.exportBackup(&model.BackupExportRequest{
		Passphrase: "short",
		Accounts:   []model.BackupAccount{{Address: "ADDR2", PrivateKey: rejected}},
	})
	assert.Error(t, err)
	assert.Equal(t, []byte{0, 0}, rejected)
}

func TestAccountQR(t *testing.T) {
	h, _ := newTestHandler(t, testConfig(t, 0))

	var addr types.Address
	addr[31] = 1

	rec := httptest.NewRecorder()
	h.AccountQR(rec, httptest.NewRequest(http.MethodGet, "/accounts/qr?address="+addr.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.AccountQRResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, addr.String(), resp.Address)
	assert.NotEmpty(t, resp.QR)

	rec = httptest.NewRecorder()
	h.AccountQR(rec, httptest.NewRequest(http.MethodGet, "/accounts/qr", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.AccountQR(rec, httptest.NewRequest(http.MethodGet, "/accounts/qr?address=bogus", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusForError(t *testing.T) {
	status, code := statusForError(crypto.ErrInvalidPassphrase)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid_passphrase", code)

	status, _ = statusForError(os.ErrPermission)
	assert.Equal(t, http.StatusInternalServerError, status)
}
