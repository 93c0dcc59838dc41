package model

import "strings"

// View is a top-level screen of the wallet shell
type View string

const (
	ViewWallet      View = "Wallet"
	ViewCollections View = "Collections"
	ViewSwap        View = "Swap"
	ViewExplore     View = "Explore"
	ViewSettings    View = "Settings"
	ViewAccounts    View = "Accounts"
)

// ParseView maps a stored view name to a View.
// Unknown names fall back to the Wallet view.
func ParseView(name string) View {
	switch v := View(strings.TrimSpace(name)); v {
	case ViewWallet, ViewCollections, ViewSwap, ViewExplore, ViewSettings, ViewAccounts:
		return v
	default:
		return ViewWallet
	}
}
