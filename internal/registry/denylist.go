package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Denylist holds wallets that may not register and usernames that may not be claimed
//
//go:generate mockgen -source=denylist.go -destination=../mocks/denylist.go -package=mocks -mock_names=Denylist=MockDenylist
type Denylist interface {
	// IsWalletBlocked reports whether the wallet address is blocked, case-insensitively
	IsWalletBlocked(walletAddress string) bool

	// IsUsernameReserved reports whether the username is reserved
	IsUsernameReserved(username string) bool
}

// DenylistData represents the structure of the denylist JSON file
type DenylistData struct {
	Wallets   []string `json:"wallets"`
	Usernames []string `json:"usernames"`
}

type denylist struct {
	wallets   map[string]bool
	usernames map[string]bool
}

// LoadDenylist loads the denylist from a JSON file
func LoadDenylist(filePath string) (Denylist, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // operator supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to read denylist file: %w", err)
	}

	var d DenylistData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse denylist JSON: %w", err)
	}

	return NewDenylist(d), nil
}

// NewDenylist builds the lookup maps
func NewDenylist(data DenylistData) Denylist {
	dl := &denylist{
		wallets:   make(map[string]bool, len(data.Wallets)),
		usernames: make(map[string]bool, len(data.Usernames)),
	}
	for _, w := range data.Wallets {
		dl.wallets[normalize(w)] = true
	}
	for _, u := range data.Usernames {
		dl.usernames[normalize(u)] = true
	}
	return dl
}

func (d *denylist) IsWalletBlocked(walletAddress string) bool {
	if d == nil {
		return false
	}
	return d.wallets[normalize(walletAddress)]
}

func (d *denylist) IsUsernameReserved(username string) bool {
	if d == nil {
		return false
	}
	return d.usernames[normalize(username)]
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
