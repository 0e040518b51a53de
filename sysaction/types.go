// Package sysaction implements the pistis system action protocol.
//
// Every mutating operation against the registry is a SysAction message: a
// JSON envelope naming the action kind plus a typed payload. The surrounding
// sequencing layer (outside this repository) is responsible for ordering and
// caller authentication; Execute dispatches an already-authenticated action
// to the appropriate handler.
package sysaction

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ActionKind identifies the type of system action.
type ActionKind string

const (
	// Name service
	ActionSetRootOwner      ActionKind = "NS_SET_ROOT_OWNER"
	ActionSetOwner          ActionKind = "NS_SET_OWNER"
	ActionSetSubnodeOwner   ActionKind = "NS_SET_SUBNODE_OWNER"
	ActionSetTTL            ActionKind = "NS_SET_TTL"
	ActionSetResolveAddr    ActionKind = "NS_SET_RESOLVE_ADDR"
	ActionSetResolveName    ActionKind = "NS_SET_RESOLVE_NAME"
	ActionSetResolveProfile ActionKind = "NS_SET_RESOLVE_PROFILE"
	ActionSetResolveZone    ActionKind = "NS_SET_RESOLVE_ZONE"

	// Business registry and product provenance
	ActionCreateBusiness        ActionKind = "BIZ_CREATE"
	ActionSetBusinessExpiration ActionKind = "BIZ_SET_EXPIRATION"
	ActionAddWhitelist          ActionKind = "BIZ_WHITELIST_ADD"
	ActionRemoveWhitelist       ActionKind = "BIZ_WHITELIST_REMOVE"
	ActionCreateProduct         ActionKind = "PRODUCT_CREATE"
	ActionAddProductInfo        ActionKind = "PRODUCT_APPEND"
)

// SysAction is the top-level envelope carried in an operation's data field.
type SysAction struct {
	Action  ActionKind      `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// SetRootOwnerPayload is the payload for NS_SET_ROOT_OWNER.
type SetRootOwnerPayload struct {
	Owner common.Address `json:"owner"`
}

// SetOwnerPayload is the payload for NS_SET_OWNER.
type SetOwnerPayload struct {
	Node  common.Hash    `json:"node"`
	Owner common.Address `json:"owner"`
}

// SetSubnodeOwnerPayload is the payload for NS_SET_SUBNODE_OWNER. The target
// node is derived as keccak256(node || label), never supplied directly.
type SetSubnodeOwnerPayload struct {
	Node  common.Hash    `json:"node"`
	Label common.Hash    `json:"label"`
	Owner common.Address `json:"owner"`
}

// SetTTLPayload is the payload for NS_SET_TTL.
type SetTTLPayload struct {
	Node common.Hash `json:"node"`
	TTL  uint64      `json:"ttl"`
}

// SetResolveAddrPayload is the payload for NS_SET_RESOLVE_ADDR.
type SetResolveAddrPayload struct {
	Node common.Hash    `json:"node"`
	Addr common.Address `json:"addr"`
}

// SetResolveNamePayload is the payload for NS_SET_RESOLVE_NAME.
type SetResolveNamePayload struct {
	Node common.Hash   `json:"node"`
	Name hexutil.Bytes `json:"name"`
}

// SetResolveProfilePayload is the payload for NS_SET_RESOLVE_PROFILE.
type SetResolveProfilePayload struct {
	Node    common.Hash `json:"node"`
	Profile common.Hash `json:"profile"`
}

// SetResolveZonePayload is the payload for NS_SET_RESOLVE_ZONE.
type SetResolveZonePayload struct {
	Node common.Hash   `json:"node"`
	Zone hexutil.Bytes `json:"zone"`
}

// CreateBusinessPayload is the payload for BIZ_CREATE.
type CreateBusinessPayload struct {
	Owner      common.Hash   `json:"owner"` // name hash of the business owner
	Name       hexutil.Bytes `json:"name"`
	Expiration uint64        `json:"expiration"`
}

// SetBusinessExpirationPayload is the payload for BIZ_SET_EXPIRATION.
type SetBusinessExpirationPayload struct {
	Business   common.Hash `json:"business"`
	Expiration uint64      `json:"expiration"`
}

// WhitelistPayload is the payload for BIZ_WHITELIST_ADD / BIZ_WHITELIST_REMOVE.
type WhitelistPayload struct {
	Business common.Hash `json:"business"`
	NameHash common.Hash `json:"nameHash"`
}

// ProductPayload is the payload for PRODUCT_CREATE / PRODUCT_APPEND.
type ProductPayload struct {
	NameHash common.Hash   `json:"nameHash"` // acting identity, must be whitelisted
	Business common.Hash   `json:"business"`
	SeqID    hexutil.Bytes `json:"seqId"`
	DataHash common.Hash   `json:"dataHash"`
	Extra    hexutil.Bytes `json:"extra,omitempty"`
}
