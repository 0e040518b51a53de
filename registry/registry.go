// Package registry wires the name service and the business ledger into one
// single-writer state container. Every mutating operation enters through
// Execute as an encoded system action; reads are served lock-free from the
// backing store. One Event is published per successful mutation.
package registry

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"

	"github.com/pistis-network/go-pistis/business"
	"github.com/pistis-network/go-pistis/nameservice"
	"github.com/pistis-network/go-pistis/params"
	"github.com/pistis-network/go-pistis/sysaction"
)

// Event is the notification published for one successful mutation. Detail is
// one of the nameservice or business event structs.
type Event struct {
	Caller common.Address
	Height uint64
	Detail interface{}
}

// Registry is the authoritative state container. All mutations are
// serialized behind one writer lock; failed actions leave the store
// untouched because every handler validates before its first write.
type Registry struct {
	db  ethdb.KeyValueStore
	cfg *params.Config

	mu    sync.Mutex
	feed  event.Feed
	scope event.SubscriptionScope
}

// New creates a registry over db with a sanitized copy of cfg.
func New(db ethdb.KeyValueStore, cfg *params.Config) (*Registry, error) {
	cfg, err := cfg.Sanitize()
	if err != nil {
		return nil, err
	}
	return &Registry{db: db, cfg: cfg}, nil
}

// Config returns the immutable deployment configuration.
func (r *Registry) Config() *params.Config { return r.cfg }

// Execute applies one authenticated system action at the given height.
// random is the per-execution randomness seed supplied by the sequencing
// layer; it only influences business hash derivation.
func (r *Registry) Execute(from common.Address, height uint64, random common.Hash, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := &sysaction.Context{
		From:        from,
		BlockNumber: height,
		Random:      random,
		DB:          r.db,
		Config:      r.cfg,
	}
	if err := sysaction.Execute(ctx, data); err != nil {
		execFailedMeter.Mark(1)
		log.Debug("System action rejected", "from", from, "height", height, "err", err)
		return err
	}
	execSuccessMeter.Mark(1)
	for _, detail := range ctx.Events() {
		r.feed.Send(Event{Caller: from, Height: height, Detail: detail})
	}
	return nil
}

// SubscribeEvents registers ch to receive one Event per successful mutation.
func (r *Registry) SubscribeEvents(ch chan<- Event) event.Subscription {
	return r.scope.Track(r.feed.Subscribe(ch))
}

// Close unsubscribes all event listeners.
func (r *Registry) Close() { r.scope.Close() }

// NodeOwner returns the owner of an identity node.
func (r *Registry) NodeOwner(node common.Hash) (common.Address, bool) {
	return nameservice.NodeOwner(r.db, node)
}

// NodeRecord returns the full ownership record of an identity node.
func (r *Registry) NodeRecord(node common.Hash) (*nameservice.NodeRecord, bool) {
	return nameservice.ReadNodeRecord(r.db, node)
}

// Resolve returns the full resolution record of a node.
func (r *Registry) Resolve(node common.Hash) (*nameservice.ResolveRecord, bool) {
	return nameservice.Resolve(r.db, node)
}

// ResolveAddr returns the address a node resolves to.
func (r *Registry) ResolveAddr(node common.Hash) (common.Address, bool) {
	return nameservice.ResolveAddr(r.db, node)
}

// ResolveName returns the name a node resolves to.
func (r *Registry) ResolveName(node common.Hash) ([]byte, bool) {
	return nameservice.ResolveName(r.db, node)
}

// ResolveProfile returns the profile hash a node resolves to.
func (r *Registry) ResolveProfile(node common.Hash) (common.Hash, bool) {
	return nameservice.ResolveProfile(r.db, node)
}

// ResolveZone returns the zone content a node resolves to.
func (r *Registry) ResolveZone(node common.Hash) ([]byte, bool) {
	return nameservice.ResolveZone(r.db, node)
}

// Business returns a business by hash.
func (r *Registry) Business(biz common.Hash) (*business.Business, bool) {
	return business.ReadBusiness(r.db, biz)
}

// Product returns a product by hash.
func (r *Registry) Product(product common.Hash) (*business.Product, bool) {
	return business.ReadProduct(r.db, product)
}

// ProductCount returns how many products a business has created.
func (r *Registry) ProductCount(biz common.Hash) uint64 {
	return business.ReadProductCount(r.db, biz)
}

// ProductIndex returns the product hash registered at (business, ordinal).
func (r *Registry) ProductIndex(biz common.Hash, ordinal uint64) (common.Hash, bool) {
	return business.ReadProductIndex(r.db, biz, ordinal)
}
