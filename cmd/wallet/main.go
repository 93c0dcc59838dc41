// @title        Desktop Wallet API
// @version      1.0
// @description  Local Solana wallet: accounts, balances and session selection.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/AlexZinkM/desktop-wallet/docs"
	"github.com/AlexZinkM/desktop-wallet/internal/account"
	"github.com/AlexZinkM/desktop-wallet/internal/api"
	"github.com/AlexZinkM/desktop-wallet/internal/balance"
	"github.com/AlexZinkM/desktop-wallet/internal/cache"
	"github.com/AlexZinkM/desktop-wallet/internal/client"
	"github.com/AlexZinkM/desktop-wallet/internal/config"
	"github.com/AlexZinkM/desktop-wallet/internal/logger"
	"github.com/AlexZinkM/desktop-wallet/internal/storage"
	"github.com/AlexZinkM/desktop-wallet/internal/vault"
	"github.com/AlexZinkM/desktop-wallet/wallet"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()

	if err := config.Init(); err != nil {
		log.Log.Fatal("failed to load config", zap.Error(err))
	}
	cfg := config.Get()

	if err := log.Init(cfg.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Secrets are sealed only when requested; the default keeps phrases readable in the database.
	var sealer vault.Sealer = vault.Plain{}
	if cfg.EncryptSecrets {
		if err := config.PromptForPassword(); err != nil {
			zapLogger.Fatal("failed to read password", zap.Error(err))
		}
		password, err := config.GetPasswordBytes()
		if err != nil {
			zapLogger.Fatal("failed to read password", zap.Error(err))
		}
		sealer, err = vault.NewPasswordSealer(password, cfg.ScryptN)
		clear(password)
		if err != nil {
			zapLogger.Fatal("failed to init vault", zap.Error(err))
		}
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		zapLogger.Fatal("cannot open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	if err := db.EnsureSchema(); err != nil {
		db.Close()
		zapLogger.Fatal("cannot init database schema", zap.Error(err))
	}

	rpcClient, err := client.NewSolanaClient(
		cfg.RPCURL(),
		client.WithTimeout(cfg.RPCTimeout()),
		client.WithRateLimit(cfg.RPCRateLimit),
		client.WithLogger(zapLogger),
	)
	if err != nil {
		db.Close()
		zapLogger.Fatal("cannot init Solana client", zap.Error(err))
	}

	w := wallet.New(
		account.NewDirectory(db.Accounts(), sealer, zapLogger),
		cache.New(db.Cache()),
		balance.NewSynchronizer(rpcClient, zapLogger),
		wallet.Options{
			ExplorerURL: cfg.ExplorerURL,
			Cluster:     string(cfg.Network),
			Storage:     db,
		},
		zapLogger,
	)
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	views, err := w.Bootstrap(ctx)
	if err != nil {
		zapLogger.Error("failed to load accounts", zap.Error(err))
		return
	}
	zapLogger.Info("wallet ready",
		zap.String("network", string(cfg.Network)),
		zap.String("rpc", rpcClient.RPCURL()),
		zap.Int("accounts", len(views)),
		zap.String("view", string(w.SelectedView())),
	)

	server := &http.Server{
		Addr:              "127.0.0.1:" + cfg.Port,
		Handler:           api.SetupRouter(w, zapLogger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Error("HTTP server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("failed to shut down HTTP server", zap.Error(err))
	}
}
