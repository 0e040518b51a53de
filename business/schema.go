package business

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// businessPrefix + business hash -> RLP(Business)
	businessPrefix = []byte("biz-b")
	// productPrefix + product hash -> RLP(Product)
	productPrefix = []byte("biz-p")
	// productIndexPrefix + business hash + ordinal (BE64) -> product hash
	productIndexPrefix = []byte("biz-i")
	// productCountPrefix + business hash -> BE64 count
	productCountPrefix = []byte("biz-c")
	// nonceKey -> BE64 global creation nonce
	nonceKey = []byte("biz-nonce")
)

// BusinessHash derives the identity of a business at creation time from the
// externally supplied randomness seed, the creating account, the owner name
// hash and the global nonce.
func BusinessHash(random common.Hash, creator common.Address, owner common.Hash, nonce uint64) common.Hash {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], nonce)
	return crypto.Keccak256Hash(random.Bytes(), creator.Bytes(), owner.Bytes(), n[:])
}

// ProductHash derives the identity of a product: the hash of its business
// and sequence id. The business hash is fixed-length, so the concatenation
// is unambiguous.
func ProductHash(biz common.Hash, seqID []byte) common.Hash {
	return crypto.Keccak256Hash(biz.Bytes(), seqID)
}

func businessKey(biz common.Hash) []byte {
	return append(append([]byte{}, businessPrefix...), biz.Bytes()...)
}

func productKey(product common.Hash) []byte {
	return append(append([]byte{}, productPrefix...), product.Bytes()...)
}

func productIndexKey(biz common.Hash, ordinal uint64) []byte {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], ordinal)
	key := append(append([]byte{}, productIndexPrefix...), biz.Bytes()...)
	return append(key, n[:]...)
}

func productCountKey(biz common.Hash) []byte {
	return append(append([]byte{}, productCountPrefix...), biz.Bytes()...)
}
