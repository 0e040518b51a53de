package nameservice

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"

	"github.com/pistis-network/go-pistis/params"
)

// SetRootOwner assigns the owner of the root node. Only accounts listed as
// root admins in the config may call it; the record is created on first use.
func SetRootOwner(db ethdb.KeyValueStore, cfg *params.Config, caller, owner common.Address) error {
	if !cfg.IsRootAdmin(caller) {
		return ErrNotRootAdmin
	}
	return setOwner(db, RootNode, owner)
}

// SetOwner transfers ownership of an existing node to a new account. May only
// be called by the current owner.
func SetOwner(db ethdb.KeyValueStore, caller common.Address, node common.Hash, owner common.Address) error {
	rec, err := onlyOwner(db, node, caller)
	if err != nil {
		return err
	}
	if rec.Owner == owner {
		return fmt.Errorf("%w: owner", ErrUnchanged)
	}
	rec.Owner = owner
	WriteNodeRecord(db, node, rec)
	return nil
}

// SetSubnodeOwner assigns ownership of keccak256(node || label), creating the
// subnode record if absent. May only be called by the owner of the parent
// node. The derived subnode hash is returned.
func SetSubnodeOwner(db ethdb.KeyValueStore, caller common.Address, node, label common.Hash, owner common.Address) (common.Hash, error) {
	if _, err := onlyOwner(db, node, caller); err != nil {
		return common.Hash{}, err
	}
	subnode := SubnodeHash(node, label)
	if err := setOwner(db, subnode, owner); err != nil {
		return common.Hash{}, err
	}
	return subnode, nil
}

// SetTTL sets the TTL of an existing node. May only be called by its owner.
func SetTTL(db ethdb.KeyValueStore, caller common.Address, node common.Hash, ttl uint64) error {
	rec, err := onlyOwner(db, node, caller)
	if err != nil {
		return err
	}
	if rec.TTL == ttl {
		return fmt.Errorf("%w: ttl", ErrUnchanged)
	}
	rec.TTL = ttl
	WriteNodeRecord(db, node, rec)
	return nil
}

// SetResolveAddr sets the resolved address for a node owned by the caller.
func SetResolveAddr(db ethdb.KeyValueStore, caller common.Address, node common.Hash, addr common.Address) error {
	if _, err := onlyOwner(db, node, caller); err != nil {
		return err
	}
	rec := resolveRecordOrDefault(db, node)
	if rec.Addr == addr {
		return fmt.Errorf("%w: addr", ErrUnchanged)
	}
	rec.Addr = addr
	WriteResolveRecord(db, node, rec)
	return nil
}

// SetResolveName sets the resolved name for a node owned by the caller. The
// name length must lie within [MinNameLength, MaxNameLength].
func SetResolveName(db ethdb.KeyValueStore, cfg *params.Config, caller common.Address, node common.Hash, name []byte) error {
	if _, err := onlyOwner(db, node, caller); err != nil {
		return err
	}
	if len(name) < cfg.MinNameLength {
		return ErrNameTooShort
	}
	if len(name) > cfg.MaxNameLength {
		return ErrNameTooLong
	}
	rec := resolveRecordOrDefault(db, node)
	if string(rec.Name) == string(name) {
		return fmt.Errorf("%w: name", ErrUnchanged)
	}
	rec.Name = append([]byte(nil), name...)
	WriteResolveRecord(db, node, rec)
	return nil
}

// SetResolveProfile sets the profile hash for a node owned by the caller.
func SetResolveProfile(db ethdb.KeyValueStore, caller common.Address, node, profile common.Hash) error {
	if _, err := onlyOwner(db, node, caller); err != nil {
		return err
	}
	rec := resolveRecordOrDefault(db, node)
	if rec.Profile == profile {
		return fmt.Errorf("%w: profile", ErrUnchanged)
	}
	rec.Profile = profile
	WriteResolveRecord(db, node, rec)
	return nil
}

// SetResolveZone sets the zone content for a node owned by the caller. The
// zone length must not exceed MaxZoneLength.
func SetResolveZone(db ethdb.KeyValueStore, cfg *params.Config, caller common.Address, node common.Hash, zone []byte) error {
	if _, err := onlyOwner(db, node, caller); err != nil {
		return err
	}
	if len(zone) > cfg.MaxZoneLength {
		return ErrZoneTooLong
	}
	rec := resolveRecordOrDefault(db, node)
	if string(rec.Zone) == string(zone) {
		return fmt.Errorf("%w: zone", ErrUnchanged)
	}
	rec.Zone = append([]byte(nil), zone...)
	WriteResolveRecord(db, node, rec)
	return nil
}

// onlyOwner loads the node record and checks the caller against its owner.
func onlyOwner(db ethdb.KeyValueReader, node common.Hash, caller common.Address) (*NodeRecord, error) {
	rec, ok := ReadNodeRecord(db, node)
	if !ok {
		return nil, ErrNodeNotFound
	}
	if rec.Owner != caller {
		return nil, ErrNotOwner
	}
	return rec, nil
}

// setOwner upserts the ownership record of a node, rejecting no-op writes.
func setOwner(db ethdb.KeyValueStore, node common.Hash, owner common.Address) error {
	rec, ok := ReadNodeRecord(db, node)
	if ok {
		if rec.Owner == owner {
			return fmt.Errorf("%w: owner", ErrUnchanged)
		}
	} else {
		rec = new(NodeRecord)
	}
	rec.Owner = owner
	WriteNodeRecord(db, node, rec)
	return nil
}

func resolveRecordOrDefault(db ethdb.KeyValueReader, node common.Hash) *ResolveRecord {
	if rec, ok := ReadResolveRecord(db, node); ok {
		return rec
	}
	return new(ResolveRecord)
}

// NodeOwner returns the current owner of a node.
func NodeOwner(db ethdb.KeyValueReader, node common.Hash) (common.Address, bool) {
	rec, ok := ReadNodeRecord(db, node)
	if !ok {
		return common.Address{}, false
	}
	return rec.Owner, true
}

// Resolve returns the full resolution record of a node.
func Resolve(db ethdb.KeyValueReader, node common.Hash) (*ResolveRecord, bool) {
	return ReadResolveRecord(db, node)
}

// ResolveAddr returns the resolved address of a node.
func ResolveAddr(db ethdb.KeyValueReader, node common.Hash) (common.Address, bool) {
	rec, ok := ReadResolveRecord(db, node)
	if !ok {
		return common.Address{}, false
	}
	return rec.Addr, true
}

// ResolveName returns the resolved name of a node.
func ResolveName(db ethdb.KeyValueReader, node common.Hash) ([]byte, bool) {
	rec, ok := ReadResolveRecord(db, node)
	if !ok {
		return nil, false
	}
	return rec.Name, true
}

// ResolveProfile returns the resolved profile hash of a node.
func ResolveProfile(db ethdb.KeyValueReader, node common.Hash) (common.Hash, bool) {
	rec, ok := ReadResolveRecord(db, node)
	if !ok {
		return common.Hash{}, false
	}
	return rec.Profile, true
}

// ResolveZone returns the zone content of a node.
func ResolveZone(db ethdb.KeyValueReader, node common.Hash) ([]byte, bool) {
	rec, ok := ReadResolveRecord(db, node)
	if !ok {
		return nil, false
	}
	return rec.Zone, true
}

// Resolver adapts a key-value store to the address-resolution capability
// consumed by the business package.
type Resolver struct {
	db ethdb.KeyValueReader
}

// NewResolver returns a Resolver reading from db.
func NewResolver(db ethdb.KeyValueReader) *Resolver {
	return &Resolver{db: db}
}

// ResolveAddr implements business.AddressResolver.
func (r *Resolver) ResolveAddr(node common.Hash) (common.Address, bool) {
	return ResolveAddr(r.db, node)
}
