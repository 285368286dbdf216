package api

import (
	"net/http"

	"github.com/AlexZinkM/algo-wallet/internal/handler"
	"github.com/AlexZinkM/algo-wallet/internal/logger"
	"github.com/AlexZinkM/algo-wallet/internal/metrics"
	"github.com/AlexZinkM/algo-wallet/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(directory model.AccountDirectory, log zerolog.Logger, registry *prometheus.Registry) (http.Handler, error) {
	m := metrics.NewMetrics(registry)

	walletHandler, err := handler.NewWalletHandler(directory, m)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Prometheus
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Wallet endpoints
	handle(mux, m, "/transactions/review", walletHandler.ReviewTransactions)
	handle(mux, m, "/backup/key", walletHandler.GenerateBackupKey)
	handle(mux, m, "/backup/export", walletHandler.ExportBackup)
	handle(mux, m, "/accounts/qr", walletHandler.AccountQR)

	return withLogger(mux, log), nil
}

func handle(mux *http.ServeMux, m *metrics.Metrics, pattern string, h http.HandlerFunc) {
	mux.Handle(pattern, metrics.HTTPMetricsMiddleware(m, pattern)(h))
}

// withLogger puts a request-scoped logger into the request context
func withLogger(next http.Handler, log zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLog := log.With().Str("method", r.Method).Str("path", r.URL.Path).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), reqLog)))
	})
}
