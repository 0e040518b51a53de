// Package nameservice keeps track of account names in a hash-addressed
// hierarchy. Nodes are 256-bit hashes; a subnode is derived by hashing the
// parent node with a label hash, so the tree is navigable only forward and
// no parent pointers are ever stored. Each node may carry an ownership
// record and, independently, a resolution record.
package nameservice

import "github.com/ethereum/go-ethereum/common"

// NodeRecord is the ownership state of one node.
type NodeRecord struct {
	Owner common.Address
	TTL   uint64
}

// ResolveRecord is the resolution state attached to a node. It is created
// lazily on the first setter call and exists independently of the node's
// ownership record.
type ResolveRecord struct {
	Addr    common.Address
	Name    []byte
	Profile common.Hash
	Zone    []byte
}
