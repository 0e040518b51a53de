package business

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
)

// ReadBusiness retrieves a business by hash, if any.
func ReadBusiness(db ethdb.KeyValueReader, biz common.Hash) (*Business, bool) {
	data, _ := db.Get(businessKey(biz))
	if len(data) == 0 {
		return nil, false
	}
	var b Business
	if err := rlp.DecodeBytes(data, &b); err != nil {
		log.Error("Invalid business RLP", "hash", biz, "err", err)
		return nil, false
	}
	return &b, true
}

// WriteBusiness stores a business record.
func WriteBusiness(db ethdb.KeyValueWriter, biz common.Hash, b *Business) {
	data, err := rlp.EncodeToBytes(b)
	if err != nil {
		log.Crit("Failed to RLP encode business", "err", err)
	}
	if err := db.Put(businessKey(biz), data); err != nil {
		log.Crit("Failed to store business", "err", err)
	}
}

// HasBusiness checks for the existence of a business record.
func HasBusiness(db ethdb.KeyValueReader, biz common.Hash) bool {
	ok, _ := db.Has(businessKey(biz))
	return ok
}

// ReadProduct retrieves a product by hash, if any.
func ReadProduct(db ethdb.KeyValueReader, product common.Hash) (*Product, bool) {
	data, _ := db.Get(productKey(product))
	if len(data) == 0 {
		return nil, false
	}
	var p Product
	if err := rlp.DecodeBytes(data, &p); err != nil {
		log.Error("Invalid product RLP", "hash", product, "err", err)
		return nil, false
	}
	return &p, true
}

// WriteProduct stores a product record.
func WriteProduct(db ethdb.KeyValueWriter, product common.Hash, p *Product) {
	data, err := rlp.EncodeToBytes(p)
	if err != nil {
		log.Crit("Failed to RLP encode product", "err", err)
	}
	if err := db.Put(productKey(product), data); err != nil {
		log.Crit("Failed to store product", "err", err)
	}
}

// HasProduct checks for the existence of a product record.
func HasProduct(db ethdb.KeyValueReader, product common.Hash) bool {
	ok, _ := db.Has(productKey(product))
	return ok
}

// ReadNonce returns the global business creation nonce.
func ReadNonce(db ethdb.KeyValueReader) uint64 {
	data, _ := db.Get(nonceKey)
	if len(data) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(data)
}

// WriteNonce stores the global business creation nonce.
func WriteNonce(db ethdb.KeyValueWriter, nonce uint64) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], nonce)
	if err := db.Put(nonceKey, n[:]); err != nil {
		log.Crit("Failed to store business nonce", "err", err)
	}
}

// ReadProductCount returns the number of products created for a business.
func ReadProductCount(db ethdb.KeyValueReader, biz common.Hash) uint64 {
	data, _ := db.Get(productCountKey(biz))
	if len(data) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(data)
}

// WriteProductCount stores the per-business product counter.
func WriteProductCount(db ethdb.KeyValueWriter, biz common.Hash, count uint64) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], count)
	if err := db.Put(productCountKey(biz), n[:]); err != nil {
		log.Crit("Failed to store product count", "err", err)
	}
}

// ReadProductIndex returns the product hash stored at (business, ordinal).
func ReadProductIndex(db ethdb.KeyValueReader, biz common.Hash, ordinal uint64) (common.Hash, bool) {
	data, _ := db.Get(productIndexKey(biz, ordinal))
	if len(data) != common.HashLength {
		return common.Hash{}, false
	}
	return common.BytesToHash(data), true
}

// WriteProductIndex stores a product hash at (business, ordinal).
func WriteProductIndex(db ethdb.KeyValueWriter, biz common.Hash, ordinal uint64, product common.Hash) {
	if err := db.Put(productIndexKey(biz, ordinal), product.Bytes()); err != nil {
		log.Crit("Failed to store product index entry", "err", err)
	}
}

// HasProductIndex checks for an index entry at (business, ordinal).
func HasProductIndex(db ethdb.KeyValueReader, biz common.Hash, ordinal uint64) bool {
	ok, _ := db.Has(productIndexKey(biz, ordinal))
	return ok
}
