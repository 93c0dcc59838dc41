// Package docs is generated by swaggo/swag from the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/accounts": {
            "get": {
                "description": "GET returns all accounts with their session balances. POST creates a new account and returns the refreshed list",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List or create accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.AccountView"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            },
            "post": {
                "description": "GET returns all accounts with their session balances. POST creates a new account and returns the refreshed list",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List or create accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.AccountView"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/accounts/explorer": {
            "get": {
                "description": "Builds the block explorer URL of a public key for the configured network",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Block explorer link",
                "parameters": [{"type": "string", "description": "Base58 public key", "name": "pubkey", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ExplorerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/accounts/phrases": {
            "get": {
                "description": "Returns the seed phrase and passphrase words of an account",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Account secret phrases",
                "parameters": [{"type": "integer", "description": "Account ID", "name": "id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.PhrasesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/accounts/qr": {
            "get": {
                "description": "Returns the account public key as a base64 PNG QR code",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Account QR code",
                "parameters": [{"type": "integer", "description": "Account ID", "name": "id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.QRResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/accounts/refresh": {
            "post": {
                "description": "Reloads accounts and syncs their balances. A failed sync keeps the previous balances",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Refresh accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.AccountView"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/selection": {
            "get": {
                "description": "Returns the selected account (null when none) and the selected view",
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Current selection",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SelectionResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/selection/account": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Select account",
                "parameters": [{"description": "Account ID", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.SelectAccountRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SelectionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/selection/view": {
            "post": {
                "description": "Unknown view names select the Wallet view",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Select view",
                "parameters": [{"description": "View name", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.SelectViewRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SelectionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.AccountView": {
            "type": "object",
            "properties": {
                "balance": {"type": "integer"},
                "balance_sol": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "pubkey": {"type": "string"},
                "pubkey_display": {"type": "string"}
            }
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "model.ExplorerResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"}
            }
        },
        "model.PhrasesResponse": {
            "type": "object",
            "properties": {
                "passphrase": {"type": "array", "items": {"type": "string"}},
                "seed_phrase": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.QRResponse": {
            "type": "object",
            "properties": {
                "QR": {"type": "string"},
                "pubkey": {"type": "string"}
            }
        },
        "model.SelectAccountRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "model.SelectViewRequest": {
            "type": "object",
            "properties": {
                "view": {"type": "string"}
            }
        },
        "model.SelectionResponse": {
            "type": "object",
            "properties": {
                "account": {"$ref": "#/definitions/model.AccountView"},
                "view": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Desktop Wallet API",
	Description:      "Local Solana wallet: accounts, balances and session selection.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
