package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlexZinkM/desktop-wallet/internal/account"
	"github.com/AlexZinkM/desktop-wallet/internal/model"
	"github.com/AlexZinkM/desktop-wallet/wallet"

	"go.uber.org/zap"
)

// Wallet is the set of wallet operations exposed over HTTP
type Wallet interface {
	AccountViews() []model.AccountView
	CreateAccount(ctx context.Context) ([]model.AccountView, error)
	Refresh(ctx context.Context) ([]model.AccountView, error)
	AccountQR(id int64) (model.QRResponse, error)
	SecretPhrases(id int64) (model.PhrasesResponse, error)
	ViewAccount(pubkey string) (string, error)
	SelectAccount(id string) error
	SelectView(name string) error
	SelectedAccount() (*model.AccountView, error)
	SelectedView() model.View
}

// WalletHandler serves the wallet to the GUI shell
type WalletHandler struct {
	wallet Wallet
	log    *zap.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(w Wallet, log *zap.Logger) *WalletHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WalletHandler{wallet: w, log: log}
}

// Accounts handles GET and POST /accounts
// @Summary      List or create accounts
// @Description  GET returns all accounts with their session balances. POST creates a new account and returns the refreshed list
// @Tags         accounts
// @Produce      json
// @Success      200  {array}   model.AccountView
// @Failure      500  {object}  model.ErrorResponse
// @Router       /accounts [get]
// @Router       /accounts [post]
func (h *WalletHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.wallet.AccountViews())
	case http.MethodPost:
		views, err := h.wallet.CreateAccount(r.Context())
		if err != nil {
			h.writeError(w, http.StatusInternalServerError, "create_failed", err)
			return
		}
		writeJSON(w, http.StatusOK, views)
	default:
		http.Error(w, "Method not allowed. Should be GET or POST", http.StatusMethodNotAllowed)
	}
}

// Refresh handles POST /accounts/refresh
// @Summary      Refresh accounts
// @Description  Reloads accounts and syncs their balances. A failed sync keeps the previous balances
// @Tags         accounts
// @Produce      json
// @Success      200  {array}   model.AccountView
// @Failure      500  {object}  model.ErrorResponse
// @Router       /accounts/refresh [post]
func (h *WalletHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	views, err := h.wallet.Refresh(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "refresh_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// QR handles GET /accounts/qr
// @Summary      Account QR code
// @Description  Returns the account public key as a base64 PNG QR code
// @Tags         accounts
// @Produce      json
// @Param        id   query     int  true  "Account ID"
// @Success      200  {object}  model.QRResponse
// @Failure      400  {object}  model.ErrorResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /accounts/qr [get]
func (h *WalletHandler) QR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	qr, err := h.wallet.AccountQR(id)
	if err != nil {
		h.writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, qr)
}

// Phrases handles GET /accounts/phrases
// @Summary      Account secret phrases
// @Description  Returns the seed phrase and passphrase words of an account
// @Tags         accounts
// @Produce      json
// @Param        id   query     int  true  "Account ID"
// @Success      200  {object}  model.PhrasesResponse
// @Failure      400  {object}  model.ErrorResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /accounts/phrases [get]
func (h *WalletHandler) Phrases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	phrases, err := h.wallet.SecretPhrases(id)
	if err != nil {
		h.writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, phrases)
}

// Explorer handles GET /accounts/explorer
// @Summary      Block explorer link
// @Description  Builds the block explorer URL of a public key for the configured network
// @Tags         accounts
// @Produce      json
// @Param        pubkey  query     string  true  "Base58 public key"
// @Success      200     {object}  model.ExplorerResponse
// @Failure      400     {object}  model.ErrorResponse
// @Router       /accounts/explorer [get]
func (h *WalletHandler) Explorer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	url, err := h.wallet.ViewAccount(r.URL.Query().Get("pubkey"))
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidPublicKey) {
			h.writeError(w, http.StatusBadRequest, "invalid_pubkey", err)
			return
		}
		// the URL is still usable when only the opener failed
		h.log.Warn("failed to open explorer", zap.Error(err))
	}
	writeJSON(w, http.StatusOK, model.ExplorerResponse{URL: url})
}

// Selection handles GET /selection
// @Summary      Current selection
// @Description  Returns the selected account (null when none) and the selected view
// @Tags         selection
// @Produce      json
// @Success      200  {object}  model.SelectionResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /selection [get]
func (h *WalletHandler) Selection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	h.writeSelection(w)
}

// SelectAccount handles POST /selection/account
// @Summary      Select account
// @Tags         selection
// @Accept       json
// @Produce      json
// @Param        request  body      model.SelectAccountRequest  true  "Account ID"
// @Success      200      {object}  model.SelectionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /selection/account [post]
func (h *WalletHandler) SelectAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SelectAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if err := h.wallet.SelectAccount(req.ID); err != nil {
		h.writeError(w, http.StatusInternalServerError, "selection_failed", err)
		return
	}
	h.writeSelection(w)
}

// SelectView handles POST /selection/view
// @Summary      Select view
// @Description  Unknown view names select the Wallet view
// @Tags         selection
// @Accept       json
// @Produce      json
// @Param        request  body      model.SelectViewRequest  true  "View name"
// @Success      200      {object}  model.SelectionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /selection/view [post]
func (h *WalletHandler) SelectView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SelectViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if err := h.wallet.SelectView(req.View); err != nil {
		h.writeError(w, http.StatusInternalServerError, "selection_failed", err)
		return
	}
	h.writeSelection(w)
}

func (h *WalletHandler) writeSelection(w http.ResponseWriter) {
	acc, err := h.wallet.SelectedAccount()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "selection_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, model.SelectionResponse{
		Account: acc,
		View:    h.wallet.SelectedView(),
	})
}

func (h *WalletHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_id", errors.New("id must be an integer"))
		return 0, false
	}
	return id, true
}

func (h *WalletHandler) writeAccountError(w http.ResponseWriter, err error) {
	if errors.Is(err, account.ErrAccountNotFound) {
		h.writeError(w, http.StatusNotFound, "not_found", err)
		return
	}
	h.writeError(w, http.StatusInternalServerError, "internal", err)
}

func (h *WalletHandler) writeError(w http.ResponseWriter, status int, code string, err error) {
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("code", code), zap.Error(err))
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
