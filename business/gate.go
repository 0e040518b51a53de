package business

import "github.com/ethereum/go-ethereum/common"

// AddressResolver is the capability this package needs from the identity
// layer: mapping a name hash to the account it currently resolves to. The
// name service satisfies it; tests substitute fixed mappings.
type AddressResolver interface {
	ResolveAddr(node common.Hash) (common.Address, bool)
}

// ValidateAuthorization succeeds iff nameHash resolves to exactly the
// caller's account. A name hash that resolves to nothing is unauthorized.
func ValidateAuthorization(resolver AddressResolver, caller common.Address, nameHash common.Hash) error {
	addr, ok := resolver.ResolveAddr(nameHash)
	if !ok || addr != caller {
		return ErrUnauthorized
	}
	return nil
}

// validateExpiration checks that the expiration height is still ahead of the
// current height.
func validateExpiration(expiration, currentHeight uint64) error {
	if currentHeight >= expiration {
		return ErrExpired
	}
	return nil
}
