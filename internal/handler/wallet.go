package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/AlexZinkM/algo-wallet/internal/classifier"
	"github.com/AlexZinkM/algo-wallet/internal/config"
	"github.com/AlexZinkM/algo-wallet/internal/crypto"
	"github.com/AlexZinkM/algo-wallet/internal/logger"
	"github.com/AlexZinkM/algo-wallet/internal/metrics"
	"github.com/AlexZinkM/algo-wallet/internal/model"
	"github.com/AlexZinkM/algo-wallet/wallet"

	"golang.org/x/time/rate"
)

// WalletHandler holds everything the wallet endpoints share.
// The classifier and directory are read-only after construction.
type WalletHandler struct {
	classifier     *classifier.Classifier
	directory      model.AccountDirectory
	backupFilePath string
	metrics        *metrics.Metrics

	exportMu      sync.Mutex
	exportLimiter *rate.Limiter // nil when the cooldown is disabled
}

// NewWalletHandler creates a new WalletHandler with config values
func NewWalletHandler(directory model.AccountDirectory, m *metrics.Metrics) (*WalletHandler, error) {
	filePath := config.GetBackupFilePath()
	if filePath == "" {
		return nil, errors.New("BACKUP_FILE_PATH not set")
	}

	cfg := config.Get()
	return &WalletHandler{
		classifier:     classifier.NewDefault(cfg.TrimOptions()),
		directory:      directory,
		backupFilePath: filePath,
		metrics:        m,
		exportLimiter:  newCooldownLimiter(cfg.BackupCooldown()),
	}, nil
}

// newCooldownLimiter allows one event per cooldown
func newCooldownLimiter(cooldown time.Duration) *rate.Limiter {
	if cooldown <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(cooldown), 1)
}

// ReviewTransactions handles POST /transactions/review
// @Summary      Review transactions before signing
// @Description  Decodes a group of base64 msgpack transactions and returns icon, label and parties for each
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.ReviewRequest  true  "Encoded transactions"
// @Success      200      {object}  model.ReviewResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /transactions/review [post]
func (h *WalletHandler) ReviewTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed. Should be POST")
		return
	}

	log := logger.FromContext(r.Context())

	var req model.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	reviews, err := wallet.ReviewTransactions(h.classifier, h.directory, req.Transactions)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_group", err.Error())
		return
	}

	for _, review := range reviews {
		if review.Error != "" {
			h.metrics.RecordDecodeError()
			log.Warn().Int("index", review.Index).Str("error", review.Error).Msg("transaction could not be decoded")
			continue
		}
		h.metrics.RecordReview(review.Category)
	}
	log.Debug().Int("count", len(reviews)).Msg("transactions reviewed")

	writeJSON(w, http.StatusOK, model.ReviewResponse{Reviews: reviews})
}

// GenerateBackupKey handles POST /backup/key
// @Summary      Generate backup key
// @Description  Generates a 12-word passphrase used to encrypt backups. It is never stored.
// @Tags         backup
// @Produce      json
// @Success      200  {object}  model.BackupKeyResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /backup/key [post]
func (h *WalletHandler) GenerateBackupKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed. Should be POST")
		return
	}

	log := logger.FromContext(r.Context())

	key, err := wallet.GenerateBackupKey()
	if err != nil {
		log.Error().Err(err).Msg("backup key generation failed")
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, key)
}

// ExportBackup handles POST /backup/export
// @Summary      Export encrypted backup
// @Description  Encrypts the selected accounts with the backup passphrase into the configured .txt file
// @Tags         backup
// @Accept       json
// @Produce      json
// @Param        request  body      model.BackupExportRequest  true  "Passphrase and accounts"
// @Success      200      {object}  model.BackupExportResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Failure      429      {object}  model.ErrorResponse
// @Router       /backup/export [post]
func (h *WalletHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed. Should be POST")
		return
	}

	log := logger.FromContext(r.Context())

	var req model.BackupExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	resp, err := h.exportBackup(&req)
	if err != nil {
		var apiErr *apiError
		if !errors.As(err, &apiErr) {
			apiErr = &apiError{status: http.StatusInternalServerError, code: "internal", err: err}
		}
		if apiErr.status != http.StatusBadRequest {
			h.metrics.RecordBackupExport(apiErr.code)
			log.Error().Err(apiErr.err).Int("status", apiErr.status).Msg("backup export failed")
		}
		writeError(w, apiErr.status, apiErr.code, apiErr.Error())
		return
	}

	h.metrics.RecordBackupExport("success")
	log.Info().Str("device_id", resp.DeviceID).Int("accounts", resp.Accounts).Msg("backup exported")

	writeJSON(w, http.StatusOK, resp)
}

// exportBackup validates the request and writes the backup file.
// The request passphrase and account private keys are wiped on return.
func (h *WalletHandler) exportBackup(req *model.BackupExportRequest) (*model.BackupExportResponse, error) {
	defer (&model.BackupPayload{Accounts: req.Accounts}).Clear()

	if err := req.Validate(); err != nil {
		req.Passphrase = ""
		return nil, &apiError{status: http.StatusBadRequest, code: "validation", err: err}
	}
	if !crypto.IsValidBackupPassphrase(req.Passphrase) {
		req.Passphrase = ""
		return nil, &apiError{status: http.StatusBadRequest, code: "validation", err: errors.New("passphrase must be a 12-word backup key")}
	}

	// Get passphrase as []byte, use it, then zero it immediately
	passphrase := []byte(req.Passphrase)
	req.Passphrase = ""
	defer clear(passphrase)

	h.exportMu.Lock()
	defer h.exportMu.Unlock()

	// the cooldown is only spent by an export that wrote a file
	if h.exportLimiter != nil && h.exportLimiter.Tokens() < 1 {
		return nil, &apiError{status: http.StatusTooManyRequests, code: "rate_limited", err: errors.New("backup was exported recently, try again later")}
	}

	resp, err := wallet.ExportBackup(h.backupFilePath, passphrase, req.DeviceID, req.Accounts)
	if err != nil {
		status, code := statusForError(err)
		return nil, &apiError{status: status, code: code, err: err}
	}
	if h.exportLimiter != nil {
		h.exportLimiter.Allow()
	}

	return resp, nil
}

// AccountQR handles GET /accounts/qr
// @Summary      Account address QR code
// @Description  Returns the address and a base64 PNG QR code of it
// @Tags         accounts
// @Produce      json
// @Param        address  query     string  true  "Algorand address"
// @Success      200      {object}  model.AccountQRResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /accounts/qr [get]
func (h *WalletHandler) AccountQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed. Should be GET")
		return
	}

	address := r.URL.Query().Get("address")
	if address == "" {
		writeError(w, http.StatusBadRequest, "validation", "address is required")
		return
	}

	resp, err := wallet.AccountQRCode(address)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// statusForError maps service errors to an HTTP status and error code
func statusForError(err error) (int, string) {
	switch {
	case wallet.IsFileExistsError(err):
		return http.StatusConflict, "file_exists"
	case errors.Is(err, crypto.ErrInvalidPassphrase):
		return http.StatusUnauthorized, "invalid_passphrase"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// apiError carries the HTTP status and error code of a failed operation
type apiError struct {
	status int
	code   string
	err    error
}

func (e *apiError) Error() string {
	return e.err.Error()
}

func (e *apiError) Unwrap() error {
	return e.err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, model.ErrorResponse{Error: message, Code: code})
}
