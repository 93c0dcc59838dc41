package model

// SelectAccountRequest represents request for POST /selection/account
type SelectAccountRequest struct {
	ID string `json:"id"`
}

// SelectViewRequest represents request for POST /selection/view
type SelectViewRequest struct {
	View string `json:"view"`
}

// SelectionResponse represents response for GET /selection
type SelectionResponse struct {
	Account *AccountView `json:"account"`
	View    View         `json:"view"`
}

// ExplorerResponse represents response for GET /accounts/explorer
type ExplorerResponse struct {
	URL string `json:"url"`
}

// QRResponse represents response for GET /accounts/qr
type QRResponse struct {
	PublicKey string `json:"pubkey"`
	QR        string `json:"QR"` // base64 PNG
}

// PhrasesResponse represents response for GET /accounts/phrases
type PhrasesResponse struct {
	SeedPhrase []string `json:"seed_phrase"`
	Passphrase []string `json:"passphrase"`
}
