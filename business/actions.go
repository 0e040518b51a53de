package business

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"

	"github.com/pistis-network/go-pistis/params"
)

// CreateBusiness registers a new business. The caller must be authorized
// against the administrative scope identity, the name must satisfy the
// configured bounds and the expiration must lie strictly above the current
// height. The business hash mixes the randomness seed, the caller, the owner
// name hash and the global nonce; the nonce advances exactly once on success.
func CreateBusiness(db ethdb.KeyValueStore, cfg *params.Config, resolver AddressResolver,
	caller common.Address, random common.Hash, owner common.Hash, name []byte, expiration, currentHeight uint64) (common.Hash, error) {

	if err := ValidateAuthorization(resolver, caller, cfg.ScopeNameHash); err != nil {
		return common.Hash{}, err
	}
	if len(name) < cfg.MinNameLength {
		return common.Hash{}, ErrNameTooShort
	}
	if len(name) > cfg.MaxNameLength {
		return common.Hash{}, ErrNameTooLong
	}
	if err := validateExpiration(expiration, currentHeight); err != nil {
		return common.Hash{}, err
	}

	nonce := ReadNonce(db)
	biz := BusinessHash(random, caller, owner, nonce)
	if HasBusiness(db, biz) {
		// Practically unreachable with the randomness+nonce derivation.
		return common.Hash{}, ErrBusinessExists
	}

	WriteBusiness(db, biz, &Business{
		Creator:    caller,
		Owner:      owner,
		Name:       append([]byte(nil), name...),
		Whitelist:  []common.Hash{},
		Expiration: expiration,
	})
	WriteNonce(db, nonce+1)
	return biz, nil
}

// SetBusinessExpiration changes the expiration height of an existing
// business. The caller must be authorized against the scope identity. The
// only constraint on the new value is that it differs from the current one;
// in particular a past height is accepted and immediately expires the
// business.
func SetBusinessExpiration(db ethdb.KeyValueStore, cfg *params.Config, resolver AddressResolver,
	caller common.Address, biz common.Hash, expiration uint64) error {

	if err := ValidateAuthorization(resolver, caller, cfg.ScopeNameHash); err != nil {
		return err
	}
	b, ok := ReadBusiness(db, biz)
	if !ok {
		return ErrBusinessNotFound
	}
	if b.Expiration == expiration {
		return fmt.Errorf("%w: expiration", ErrUnchanged)
	}
	b.Expiration = expiration
	WriteBusiness(db, biz, b)
	return nil
}

// AddBusinessWhitelist appends a name hash to the business whitelist. The
// caller must be authorized against the business owner identity, not the
// scope. Returns the new whitelist.
func AddBusinessWhitelist(db ethdb.KeyValueStore, resolver AddressResolver,
	caller common.Address, biz, nameHash common.Hash) ([]common.Hash, error) {

	b, ok := ReadBusiness(db, biz)
	if !ok {
		return nil, ErrBusinessNotFound
	}
	if err := ValidateAuthorization(resolver, caller, b.Owner); err != nil {
		return nil, err
	}
	if b.InWhitelist(nameHash) {
		return nil, ErrAlreadyWhitelisted
	}
	b.Whitelist = append(b.Whitelist, nameHash)
	WriteBusiness(db, biz, b)
	return b.Whitelist, nil
}

// RemoveBusinessWhitelist removes a name hash from the business whitelist.
// The caller must be authorized against the business owner identity.
// Returns the new whitelist.
func RemoveBusinessWhitelist(db ethdb.KeyValueStore, resolver AddressResolver,
	caller common.Address, biz, nameHash common.Hash) ([]common.Hash, error) {

	b, ok := ReadBusiness(db, biz)
	if !ok {
		return nil, ErrBusinessNotFound
	}
	if err := ValidateAuthorization(resolver, caller, b.Owner); err != nil {
		return nil, err
	}
	if !b.InWhitelist(nameHash) {
		return nil, ErrNotWhitelisted
	}
	list := b.Whitelist[:0]
	for _, h := range b.Whitelist {
		if h != nameHash {
			list = append(list, h)
		}
	}
	b.Whitelist = list
	WriteBusiness(db, biz, b)
	return b.Whitelist, nil
}

// CreateProduct opens the provenance history for a (business, seqId) pair
// with its first record. The acting name hash must resolve to the caller and
// be whitelisted for a live business. On success the product is also
// registered in the per-business ordinal index and the counter advances by
// one.
func CreateProduct(db ethdb.KeyValueStore, cfg *params.Config, resolver AddressResolver,
	caller common.Address, nameHash, biz common.Hash, seqID []byte, dataHash common.Hash, extra []byte, currentHeight uint64) (common.Hash, error) {

	if _, err := authorizeProductAccess(db, cfg, resolver, caller, nameHash, biz, seqID, extra, currentHeight); err != nil {
		return common.Hash{}, err
	}

	product := ProductHash(biz, seqID)
	if HasProduct(db, product) {
		return common.Hash{}, ErrProductExists
	}

	count := ReadProductCount(db, biz)
	if count == math.MaxUint64 {
		return common.Hash{}, ErrCounterExhausted
	}
	if HasProductIndex(db, biz, count) {
		// Would clobber an index entry; should be unreachable while the
		// counter only ever advances.
		return common.Hash{}, fmt.Errorf("business: ordinal %d already indexed", count)
	}

	WriteProduct(db, product, &Product{
		SeqID: append([]byte(nil), seqID...),
		Infos: []ProductRecord{{
			Creator:   caller,
			CreatedAt: currentHeight,
			DataHash:  dataHash,
			Extra:     append([]byte(nil), extra...),
		}},
	})
	WriteProductIndex(db, biz, count, product)
	WriteProductCount(db, biz, count+1)
	return product, nil
}

// AddProductInfo appends one record to an existing product history. The
// authorization, whitelist, expiration and length checks are identical to
// CreateProduct; additionally the product must exist and its history must be
// strictly below MaxProductInfoCount.
func AddProductInfo(db ethdb.KeyValueStore, cfg *params.Config, resolver AddressResolver,
	caller common.Address, nameHash, biz common.Hash, seqID []byte, dataHash common.Hash, extra []byte, currentHeight uint64) (common.Hash, error) {

	if _, err := authorizeProductAccess(db, cfg, resolver, caller, nameHash, biz, seqID, extra, currentHeight); err != nil {
		return common.Hash{}, err
	}

	product := ProductHash(biz, seqID)
	p, ok := ReadProduct(db, product)
	if !ok {
		return common.Hash{}, ErrProductNotFound
	}
	if string(p.SeqID) != string(seqID) {
		return common.Hash{}, ErrSeqIDMismatch
	}
	if len(p.Infos) >= cfg.MaxProductInfoCount {
		return common.Hash{}, ErrInfoLimitReached
	}

	p.Infos = append(p.Infos, ProductRecord{
		Creator:   caller,
		CreatedAt: currentHeight,
		DataHash:  dataHash,
		Extra:     append([]byte(nil), extra...),
	})
	WriteProduct(db, product, p)
	return product, nil
}

// authorizeProductAccess runs the checks shared by CreateProduct and
// AddProductInfo: acting identity resolves to caller, business exists, the
// identity is whitelisted, the business is not expired and the variable
// length fields are within bounds.
func authorizeProductAccess(db ethdb.KeyValueReader, cfg *params.Config, resolver AddressResolver,
	caller common.Address, nameHash, biz common.Hash, seqID, extra []byte, currentHeight uint64) (*Business, error) {

	if err := ValidateAuthorization(resolver, caller, nameHash); err != nil {
		return nil, err
	}
	b, ok := ReadBusiness(db, biz)
	if !ok {
		return nil, ErrBusinessNotFound
	}
	if !b.InWhitelist(nameHash) {
		return nil, ErrNotWhitelisted
	}
	if err := validateExpiration(b.Expiration, currentHeight); err != nil {
		return nil, err
	}
	if len(seqID) > cfg.MaxSeqIDLength {
		return nil, ErrSeqIDTooLong
	}
	if len(extra) > cfg.MaxExtraLength {
		return nil, ErrExtraTooLong
	}
	return b, nil
}
