// Package params holds the externally supplied configuration for the pistis
// registry: length bounds, the administrative scope identity and the set of
// accounts allowed to take the privileged root-owner path.
package params

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Config is fixed per deployment and never mutated after initialization.
type Config struct {
	// MinNameLength / MaxNameLength bound resolve names and business names
	// (inclusive on both ends).
	MinNameLength int
	MaxNameLength int

	// MaxZoneLength bounds the zone content of a resolve record.
	MaxZoneLength int

	// MaxSeqIDLength bounds product sequence ids.
	MaxSeqIDLength int

	// MaxExtraLength bounds the extra blob attached to a product record.
	MaxExtraLength int

	// MaxProductInfoCount caps the number of records appended to one product.
	MaxProductInfoCount int

	// ScopeNameHash is the administrative identity empowered to create
	// businesses and change their expiration.
	ScopeNameHash common.Hash

	// RootAdmins are the accounts allowed to call NS_SET_ROOT_OWNER.
	RootAdmins []common.Address
}

// DefaultConfig mirrors the bounds the original runtime was deployed with.
var DefaultConfig = &Config{
	MinNameLength:       3,
	MaxNameLength:       16,
	MaxZoneLength:       1024,
	MaxSeqIDLength:      64,
	MaxExtraLength:      1024,
	MaxProductInfoCount: 1024,
}

// IsRootAdmin reports whether addr may take the privileged root-owner path.
func (c *Config) IsRootAdmin(addr common.Address) bool {
	for _, a := range c.RootAdmins {
		if a == addr {
			return true
		}
	}
	return false
}

// Sanitize validates the config and returns a defensive copy.
func (c *Config) Sanitize() (*Config, error) {
	if c.MinNameLength < 1 {
		return nil, fmt.Errorf("params: MinNameLength must be at least 1, got %d", c.MinNameLength)
	}
	if c.MaxNameLength < c.MinNameLength {
		return nil, fmt.Errorf("params: MaxNameLength %d below MinNameLength %d", c.MaxNameLength, c.MinNameLength)
	}
	if c.MaxZoneLength < 0 || c.MaxSeqIDLength < 0 || c.MaxExtraLength < 0 {
		return nil, fmt.Errorf("params: negative length bound")
	}
	if c.MaxProductInfoCount < 1 {
		return nil, fmt.Errorf("params: MaxProductInfoCount must be at least 1, got %d", c.MaxProductInfoCount)
	}
	cpy := *c
	cpy.RootAdmins = append([]common.Address(nil), c.RootAdmins...)
	return &cpy, nil
}
