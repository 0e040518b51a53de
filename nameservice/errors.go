package nameservice

import "errors"

var (
	// ErrNodeNotFound is returned by operations that require an existing
	// ownership record.
	ErrNodeNotFound = errors.New("nameservice: node does not exist")

	// ErrNotOwner is returned when the caller does not own the node.
	ErrNotOwner = errors.New("nameservice: caller is not the node owner")

	// ErrNotRootAdmin guards the privileged root-owner path.
	ErrNotRootAdmin = errors.New("nameservice: caller is not a root admin")

	// ErrUnchanged rejects writes of the currently stored value.
	ErrUnchanged = errors.New("nameservice: new value equals current value")

	ErrNameTooShort = errors.New("nameservice: name too short")
	ErrNameTooLong  = errors.New("nameservice: name too long")
	ErrZoneTooLong  = errors.New("nameservice: zone content too long")
)
