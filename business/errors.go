package business

import "errors"

var (
	// ErrUnauthorized is returned when a name hash does not resolve to the
	// caller's account.
	ErrUnauthorized = errors.New("business: name hash does not resolve to caller")

	ErrBusinessNotFound = errors.New("business: business does not exist")
	ErrBusinessExists   = errors.New("business: business already exists")

	// ErrExpired is returned when an expiration height is not strictly above
	// the current height.
	ErrExpired = errors.New("business: expired")

	// ErrUnchanged rejects writes of the currently stored value.
	ErrUnchanged = errors.New("business: new value equals current value")

	ErrNameTooShort = errors.New("business: name too short")
	ErrNameTooLong  = errors.New("business: name too long")

	ErrAlreadyWhitelisted = errors.New("business: already in the whitelist")
	ErrNotWhitelisted     = errors.New("business: not in the whitelist")

	ErrProductExists   = errors.New("business: product already exists")
	ErrProductNotFound = errors.New("business: product does not exist")

	ErrSeqIDTooLong = errors.New("business: sequence id too long")
	ErrExtraTooLong = errors.New("business: extra info too long")

	// ErrInfoLimitReached caps the history length of a single product.
	ErrInfoLimitReached = errors.New("business: product info count limit reached")

	// ErrCounterExhausted is terminal for the affected business: its ordinal
	// counter cannot advance, so no further products can be created.
	ErrCounterExhausted = errors.New("business: product ordinal counter exhausted")

	// ErrSeqIDMismatch guards an internal consistency invariant; with the
	// product hash derived from (business, seqId) it should be unreachable.
	ErrSeqIDMismatch = errors.New("business: stored sequence id does not match")
)
