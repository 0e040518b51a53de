// Package business implements the registration of businesses and their
// append-only product provenance records, gated by name-hash whitelists
// resolved through the identity layer.
package business

import "github.com/ethereum/go-ethereum/common"

// Business is an organizational identity permitted to record provenance.
// It is created once and never deleted; only the expiration and the
// whitelist change afterwards.
type Business struct {
	Creator    common.Address
	Owner      common.Hash // name hash of the owning identity
	Name       []byte
	Whitelist  []common.Hash // ordered, duplicate-free
	Expiration uint64        // height at which the business expires
}

// InWhitelist reports whether the name hash is authorized to act for the
// business.
func (b *Business) InWhitelist(nameHash common.Hash) bool {
	for _, h := range b.Whitelist {
		if h == nameHash {
			return true
		}
	}
	return false
}

// ProductRecord is one immutable entry in a product's history.
type ProductRecord struct {
	Creator   common.Address
	CreatedAt uint64 // height the record was appended at
	DataHash  common.Hash
	Extra     []byte
}

// Product is the provenance state for one (business, seqId) pair. Infos only
// ever grows; no entry is edited or removed.
type Product struct {
	SeqID []byte
	Infos []ProductRecord
}
