package api

import (
	"net/http"

	"github.com/AlexZinkM/desktop-wallet/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers
func SetupRouter(w handler.Wallet, log *zap.Logger) http.Handler {
	walletHandler := handler.NewWalletHandler(w, log)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Account endpoints
	mux.HandleFunc("/accounts", walletHandler.Accounts)
	mux.HandleFunc("/accounts/refresh", walletHandler.Refresh)
	mux.HandleFunc("/accounts/qr", walletHandler.QR)
	mux.HandleFunc("/accounts/phrases", walletHandler.Phrases)
	mux.HandleFunc("/accounts/explorer", walletHandler.Explorer)

	// Selection endpoints
	mux.HandleFunc("/selection", walletHandler.Selection)
	mux.HandleFunc("/selection/account", walletHandler.SelectAccount)
	mux.HandleFunc("/selection/view", walletHandler.SelectView)

	return mux
}
