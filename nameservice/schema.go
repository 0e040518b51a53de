package nameservice

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// nodeRecordPrefix + node hash -> RLP(NodeRecord)
	nodeRecordPrefix = []byte("ns-n")
	// resolveRecordPrefix + node hash -> RLP(ResolveRecord)
	resolveRecordPrefix = []byte("ns-r")
)

// RootNode is the key of the hierarchy root: the hash of an all-zero word.
var RootNode = crypto.Keccak256Hash(make([]byte, common.HashLength))

// SubnodeHash derives the node positioned under node at the given label.
func SubnodeHash(node, label common.Hash) common.Hash {
	return crypto.Keccak256Hash(node.Bytes(), label.Bytes())
}

// LabelHash hashes a single human-readable label.
func LabelHash(label string) common.Hash {
	return crypto.Keccak256Hash([]byte(label))
}

// NameHash computes the node hash for a dot-separated name, walking labels
// right to left from the root ("a.b" -> subnode(subnode(root, b), a)).
// The empty name maps to the root node.
func NameHash(name string) common.Hash {
	node := RootNode
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		node = SubnodeHash(node, LabelHash(labels[i]))
	}
	return node
}

func nodeRecordKey(node common.Hash) []byte {
	return append(append([]byte{}, nodeRecordPrefix...), node.Bytes()...)
}

func resolveRecordKey(node common.Hash) []byte {
	return append(append([]byte{}, resolveRecordPrefix...), node.Bytes()...)
}
