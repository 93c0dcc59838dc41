package model

// ErrorResponse is the JSON body of every failed API call.
// Code is a stable machine-readable reason such as "not_found" or "invalid_pubkey".
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
