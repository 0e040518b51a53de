package registry

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/stretchr/testify/require"

	"github.com/pistis-network/go-pistis/business"
	"github.com/pistis-network/go-pistis/nameservice"
	"github.com/pistis-network/go-pistis/params"
	"github.com/pistis-network/go-pistis/sysaction"
)

var (
	admin = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	alice = common.HexToAddress("0x00000000000000000000000000000000000000c2")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000c3")

	seed = common.HexToHash("0x00000000000000000000000000000000000000000000000000000000000000ee")

	scopeNode = nameservice.SubnodeHash(nameservice.RootNode, nameservice.LabelHash("pistis"))
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	cfg := *params.DefaultConfig
	cfg.ScopeNameHash = scopeNode
	cfg.RootAdmins = []common.Address{admin}
	reg, err := New(rawdb.NewMemoryDatabase(), &cfg)
	require.NoError(t, err)
	t.Cleanup(reg.Close)
	return reg
}

func exec(t *testing.T, reg *Registry, from common.Address, height uint64, kind sysaction.ActionKind, payload interface{}) error {
	t.Helper()
	data, err := sysaction.MakeSysAction(kind, payload)
	require.NoError(t, err)
	return reg.Execute(from, height, seed, data)
}

func TestExecuteLifecycle(t *testing.T) {
	reg := newTestRegistry(t)

	events := make(chan Event, 32)
	sub := reg.SubscribeEvents(events)
	defer sub.Unsubscribe()

	// Bootstrap the identity tree: root to alice, the administrative scope
	// node and an operator node for bob, both resolving to their holders.
	require.NoError(t, exec(t, reg, admin, 1, sysaction.ActionSetRootOwner,
		&sysaction.SetRootOwnerPayload{Owner: alice}))
	require.NoError(t, exec(t, reg, alice, 2, sysaction.ActionSetSubnodeOwner,
		&sysaction.SetSubnodeOwnerPayload{Node: nameservice.RootNode, Label: nameservice.LabelHash("pistis"), Owner: alice}))
	require.NoError(t, exec(t, reg, alice, 3, sysaction.ActionSetResolveAddr,
		&sysaction.SetResolveAddrPayload{Node: scopeNode, Addr: alice}))

	opNode := nameservice.SubnodeHash(nameservice.RootNode, nameservice.LabelHash("op"))
	require.NoError(t, exec(t, reg, alice, 4, sysaction.ActionSetSubnodeOwner,
		&sysaction.SetSubnodeOwnerPayload{Node: nameservice.RootNode, Label: nameservice.LabelHash("op"), Owner: bob}))
	require.NoError(t, exec(t, reg, bob, 5, sysaction.ActionSetResolveAddr,
		&sysaction.SetResolveAddrPayload{Node: opNode, Addr: bob}))

	owner, ok := reg.NodeOwner(scopeNode)
	require.True(t, ok)
	require.Equal(t, alice, owner)
	addr, ok := reg.ResolveAddr(opNode)
	require.True(t, ok)
	require.Equal(t, bob, addr)

	// Create a business managed by the scope identity, whitelist bob's
	// operator identity and record a two-entry product history.
	require.NoError(t, exec(t, reg, alice, 10, sysaction.ActionCreateBusiness,
		&sysaction.CreateBusinessPayload{Owner: scopeNode, Name: []byte("acme"), Expiration: 1000}))
	biz := business.BusinessHash(seed, alice, scopeNode, 0)
	b, ok := reg.Business(biz)
	require.True(t, ok)
	require.Equal(t, alice, b.Creator)
	require.Equal(t, uint64(1000), b.Expiration)

	require.NoError(t, exec(t, reg, alice, 11, sysaction.ActionAddWhitelist,
		&sysaction.WhitelistPayload{Business: biz, NameHash: opNode}))

	require.NoError(t, exec(t, reg, bob, 12, sysaction.ActionCreateProduct,
		&sysaction.ProductPayload{NameHash: opNode, Business: biz, SeqID: []byte("sn-1"), DataHash: common.Hash{0x01}}))
	require.NoError(t, exec(t, reg, bob, 13, sysaction.ActionAddProductInfo,
		&sysaction.ProductPayload{NameHash: opNode, Business: biz, SeqID: []byte("sn-1"), DataHash: common.Hash{0x02}, Extra: []byte("shipped")}))

	product := business.ProductHash(biz, []byte("sn-1"))
	p, ok := reg.Product(product)
	require.True(t, ok)
	require.Len(t, p.Infos, 2)
	require.Equal(t, bob, p.Infos[1].Creator)
	require.Equal(t, uint64(13), p.Infos[1].CreatedAt)

	require.Equal(t, uint64(1), reg.ProductCount(biz))
	indexed, ok := reg.ProductIndex(biz, 0)
	require.True(t, ok)
	require.Equal(t, product, indexed)

	// One event per successful mutation, in execution order.
	require.Len(t, events, 9)
	first := <-events
	require.Equal(t, admin, first.Caller)
	require.Equal(t, uint64(1), first.Height)
	require.IsType(t, nameservice.RootChangedEvent{}, first.Detail)
	for i := 0; i < 8; i++ {
		<-events
	}
}

func TestExecuteRejections(t *testing.T) {
	reg := newTestRegistry(t)

	events := make(chan Event, 8)
	sub := reg.SubscribeEvents(events)
	defer sub.Unsubscribe()

	require.ErrorIs(t, reg.Execute(alice, 1, seed, []byte("garbage")), sysaction.ErrInvalidSysAction)
	require.Error(t, exec(t, reg, alice, 1, "NOT_AN_ACTION", nil))
	require.ErrorIs(t,
		exec(t, reg, bob, 1, sysaction.ActionSetRootOwner, &sysaction.SetRootOwnerPayload{Owner: bob}),
		nameservice.ErrNotRootAdmin)
	require.ErrorIs(t,
		exec(t, reg, bob, 1, sysaction.ActionCreateBusiness, &sysaction.CreateBusinessPayload{Owner: scopeNode, Name: []byte("acme"), Expiration: 10}),
		business.ErrUnauthorized)

	// Rejected actions publish nothing.
	require.Empty(t, events)
}

func TestExecuteNoOpRejected(t *testing.T) {
	reg := newTestRegistry(t)

	require.NoError(t, exec(t, reg, admin, 1, sysaction.ActionSetRootOwner,
		&sysaction.SetRootOwnerPayload{Owner: alice}))
	require.ErrorIs(t,
		exec(t, reg, admin, 2, sysaction.ActionSetRootOwner, &sysaction.SetRootOwnerPayload{Owner: alice}),
		nameservice.ErrUnchanged)

	require.NoError(t, exec(t, reg, alice, 3, sysaction.ActionSetTTL,
		&sysaction.SetTTLPayload{Node: nameservice.RootNode, TTL: 60}))
	require.ErrorIs(t,
		exec(t, reg, alice, 4, sysaction.ActionSetTTL, &sysaction.SetTTLPayload{Node: nameservice.RootNode, TTL: 60}),
		nameservice.ErrUnchanged)

	rec, ok := reg.NodeRecord(nameservice.RootNode)
	require.True(t, ok)
	require.Equal(t, alice, rec.Owner)
	require.Equal(t, uint64(60), rec.TTL)
}
