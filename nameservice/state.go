package nameservice

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
)

// ReadNodeRecord retrieves the ownership record of a node, if any.
func ReadNodeRecord(db ethdb.KeyValueReader, node common.Hash) (*NodeRecord, bool) {
	data, _ := db.Get(nodeRecordKey(node))
	if len(data) == 0 {
		return nil, false
	}
	var rec NodeRecord
	if err := rlp.DecodeBytes(data, &rec); err != nil {
		log.Error("Invalid node record RLP", "node", node, "err", err)
		return nil, false
	}
	return &rec, true
}

// WriteNodeRecord stores the ownership record of a node.
func WriteNodeRecord(db ethdb.KeyValueWriter, node common.Hash, rec *NodeRecord) {
	data, err := rlp.EncodeToBytes(rec)
	if err != nil {
		log.Crit("Failed to RLP encode node record", "err", err)
	}
	if err := db.Put(nodeRecordKey(node), data); err != nil {
		log.Crit("Failed to store node record", "err", err)
	}
}

// ReadResolveRecord retrieves the resolution record of a node, if any.
func ReadResolveRecord(db ethdb.KeyValueReader, node common.Hash) (*ResolveRecord, bool) {
	data, _ := db.Get(resolveRecordKey(node))
	if len(data) == 0 {
		return nil, false
	}
	var rec ResolveRecord
	if err := rlp.DecodeBytes(data, &rec); err != nil {
		log.Error("Invalid resolve record RLP", "node", node, "err", err)
		return nil, false
	}
	return &rec, true
}

// WriteResolveRecord stores the resolution record of a node.
func WriteResolveRecord(db ethdb.KeyValueWriter, node common.Hash, rec *ResolveRecord) {
	data, err := rlp.EncodeToBytes(rec)
	if err != nil {
		log.Crit("Failed to RLP encode resolve record", "err", err)
	}
	if err := db.Put(resolveRecordKey(node), data); err != nil {
		log.Crit("Failed to store resolve record", "err", err)
	}
}
