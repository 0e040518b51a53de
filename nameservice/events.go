package nameservice

import "github.com/ethereum/go-ethereum/common"

// RootChangedEvent is emitted when the root node owner is set.
type RootChangedEvent struct {
	Owner common.Address
}

// TransferEvent is emitted when a node's ownership moves to a new account.
type TransferEvent struct {
	Node  common.Hash
	Owner common.Address
}

// NewOwnerEvent is emitted when the owner of a node assigns an owner to one
// of its subnodes.
type NewOwnerEvent struct {
	Node  common.Hash
	Label common.Hash
	Owner common.Address
}

// NewTTLEvent is emitted when the TTL of a node changes.
type NewTTLEvent struct {
	Node common.Hash
	TTL  uint64
}

// ResolveAddrChangedEvent is emitted when the addr of a resolve record changes.
type ResolveAddrChangedEvent struct {
	Node common.Hash
	Addr common.Address
}

// ResolveNameChangedEvent is emitted when the name of a resolve record changes.
type ResolveNameChangedEvent struct {
	Node common.Hash
	Name []byte
}

// ResolveProfileChangedEvent is emitted when the profile of a resolve record changes.
type ResolveProfileChangedEvent struct {
	Node    common.Hash
	Profile common.Hash
}

// ResolveZoneChangedEvent is emitted when the zone of a resolve record changes.
type ResolveZoneChangedEvent struct {
	Node common.Hash
	Zone []byte
}
