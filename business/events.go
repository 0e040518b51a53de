package business

import "github.com/ethereum/go-ethereum/common"

// BusinessCreatedEvent is emitted when a business is registered.
type BusinessCreatedEvent struct {
	Creator  common.Address
	Business common.Hash
}

// BusinessExpirationChangedEvent is emitted when a business expiration moves.
type BusinessExpirationChangedEvent struct {
	Caller     common.Address
	Business   common.Hash
	Expiration uint64
}

// BusinessWhitelistChangedEvent carries the whitelist after an add or remove.
type BusinessWhitelistChangedEvent struct {
	Caller    common.Address
	Business  common.Hash
	Whitelist []common.Hash
}

// ProductCreatedEvent is emitted when a product history is opened.
type ProductCreatedEvent struct {
	Creator  common.Address
	Business common.Hash
	SeqID    []byte
	Product  common.Hash
}

// ProductInfoAppendedEvent is emitted when a record is appended to a product.
type ProductInfoAppendedEvent struct {
	Creator  common.Address
	Business common.Hash
	SeqID    []byte
	Product  common.Hash
}
