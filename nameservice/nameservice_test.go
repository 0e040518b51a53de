package nameservice

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/ethdb"

	"github.com/pistis-network/go-pistis/params"
)

var (
	admin = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	alice = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000a3")
	carol = common.HexToAddress("0x00000000000000000000000000000000000000a4")
)

func newTestDB(t *testing.T) ethdb.KeyValueStore {
	t.Helper()
	return rawdb.NewMemoryDatabase()
}

func testConfig() *params.Config {
	return &params.Config{
		MinNameLength:       3,
		MaxNameLength:       16,
		MaxZoneLength:       1024,
		MaxSeqIDLength:      64,
		MaxExtraLength:      1024,
		MaxProductInfoCount: 1024,
		RootAdmins:          []common.Address{admin},
	}
}

func TestSetRootOwner(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()

	if err := SetRootOwner(db, cfg, bob, alice); !errors.Is(err, ErrNotRootAdmin) {
		t.Fatalf("expected ErrNotRootAdmin, got %v", err)
	}
	if err := SetRootOwner(db, cfg, admin, alice); err != nil {
		t.Fatalf("set root owner failed: %v", err)
	}
	if owner, ok := NodeOwner(db, RootNode); !ok || owner != alice {
		t.Fatalf("unexpected root owner: ok=%v owner=%x", ok, owner)
	}
	// Writing the stored owner again is a rejected no-op.
	if err := SetRootOwner(db, cfg, admin, alice); !errors.Is(err, ErrUnchanged) {
		t.Fatalf("expected ErrUnchanged, got %v", err)
	}
	if err := SetRootOwner(db, cfg, admin, bob); err != nil {
		t.Fatalf("root owner transfer failed: %v", err)
	}
	if owner, _ := NodeOwner(db, RootNode); owner != bob {
		t.Fatalf("unexpected root owner after transfer: %x", owner)
	}
}

func TestSetOwner(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()

	if err := SetOwner(db, alice, common.Hash{0x01}, bob); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
	if err := SetRootOwner(db, cfg, admin, alice); err != nil {
		t.Fatalf("set root owner failed: %v", err)
	}
	if err := SetOwner(db, bob, RootNode, carol); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := SetOwner(db, alice, RootNode, alice); !errors.Is(err, ErrUnchanged) {
		t.Fatalf("expected ErrUnchanged, got %v", err)
	}
	if err := SetOwner(db, alice, RootNode, bob); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if owner, _ := NodeOwner(db, RootNode); owner != bob {
		t.Fatalf("unexpected owner after transfer: %x", owner)
	}
	// The previous owner lost control.
	if err := SetOwner(db, alice, RootNode, carol); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner for stale owner, got %v", err)
	}
}

func TestSetSubnodeOwner(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()

	if err := SetRootOwner(db, cfg, admin, alice); err != nil {
		t.Fatalf("set root owner failed: %v", err)
	}
	if _, err := SetSubnodeOwner(db, alice, common.Hash{0x01}, LabelHash("eth"), bob); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
	if _, err := SetSubnodeOwner(db, bob, RootNode, LabelHash("eth"), bob); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	eth, err := SetSubnodeOwner(db, alice, RootNode, LabelHash("eth"), bob)
	if err != nil {
		t.Fatalf("set subnode owner failed: %v", err)
	}
	if eth != SubnodeHash(RootNode, LabelHash("eth")) {
		t.Fatalf("unexpected subnode hash: %x", eth)
	}
	if owner, _ := NodeOwner(db, eth); owner != bob {
		t.Fatalf("unexpected subnode owner: %x", owner)
	}

	// The subnode owner controls the next level down.
	hsiung, err := SetSubnodeOwner(db, bob, eth, LabelHash("hsiung"), carol)
	if err != nil {
		t.Fatalf("set nested subnode owner failed: %v", err)
	}
	if owner, _ := NodeOwner(db, hsiung); owner != carol {
		t.Fatalf("unexpected nested subnode owner: %x", owner)
	}
	// Reassigning an existing subnode requires the parent owner, and
	// transfers rather than creates.
	if _, err := SetSubnodeOwner(db, carol, eth, LabelHash("hsiung"), alice); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner for non-parent-owner, got %v", err)
	}
	if _, err := SetSubnodeOwner(db, bob, eth, LabelHash("hsiung"), carol); !errors.Is(err, ErrUnchanged) {
		t.Fatalf("expected ErrUnchanged, got %v", err)
	}
}

func TestSetTTL(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()

	if err := SetTTL(db, alice, RootNode, 10); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
	if err := SetRootOwner(db, cfg, admin, alice); err != nil {
		t.Fatalf("set root owner failed: %v", err)
	}
	// Fresh records carry TTL 0; writing 0 again is a no-op.
	if err := SetTTL(db, alice, RootNode, 0); !errors.Is(err, ErrUnchanged) {
		t.Fatalf("expected ErrUnchanged, got %v", err)
	}
	if err := SetTTL(db, alice, RootNode, 10); err != nil {
		t.Fatalf("set ttl failed: %v", err)
	}
	rec, _ := ReadNodeRecord(db, RootNode)
	if rec.TTL != 10 {
		t.Fatalf("unexpected ttl: %d", rec.TTL)
	}
}

func TestSetResolveAddr(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	node := mustSubnode(t, db, cfg, "eth", bob)

	if err := SetResolveAddr(db, alice, node, carol); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := SetResolveAddr(db, bob, node, carol); err != nil {
		t.Fatalf("set resolve addr failed: %v", err)
	}
	if err := SetResolveAddr(db, bob, node, carol); !errors.Is(err, ErrUnchanged) {
		t.Fatalf("expected ErrUnchanged, got %v", err)
	}
	if addr, ok := ResolveAddr(db, node); !ok || addr != carol {
		t.Fatalf("unexpected resolved addr: ok=%v addr=%x", ok, addr)
	}
}

func TestSetResolveName(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	node := mustSubnode(t, db, cfg, "eth", bob)

	if err := SetResolveName(db, cfg, bob, node, []byte("e")); !errors.Is(err, ErrNameTooShort) {
		t.Fatalf("expected ErrNameTooShort, got %v", err)
	}
	if err := SetResolveName(db, cfg, bob, node, bytes.Repeat([]byte("e"), 17)); !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
	if err := SetResolveName(db, cfg, bob, node, []byte("eth")); err != nil {
		t.Fatalf("set resolve name failed: %v", err)
	}
	if err := SetResolveName(db, cfg, bob, node, []byte("eth")); !errors.Is(err, ErrUnchanged) {
		t.Fatalf("expected ErrUnchanged, got %v", err)
	}
	if name, ok := ResolveName(db, node); !ok || !bytes.Equal(name, []byte("eth")) {
		t.Fatalf("unexpected resolved name: ok=%v name=%q", ok, name)
	}
}

func TestSetResolveProfile(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	node := mustSubnode(t, db, cfg, "eth", bob)

	profile := LabelHash("did:pistis:v0:1LrMVQmmEvJXsTmrXuarGrikk5nnB5Cvwg-1")
	if err := SetResolveProfile(db, bob, node, profile); err != nil {
		t.Fatalf("set resolve profile failed: %v", err)
	}
	if err := SetResolveProfile(db, bob, node, profile); !errors.Is(err, ErrUnchanged) {
		t.Fatalf("expected ErrUnchanged, got %v", err)
	}
	if got, ok := ResolveProfile(db, node); !ok || got != profile {
		t.Fatalf("unexpected resolved profile: ok=%v profile=%x", ok, got)
	}
}

func TestSetResolveZone(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	node := mustSubnode(t, db, cfg, "eth", bob)

	zone := []byte(`{"compacity":50000000,"class":"normal","storage":"http://example.com/1LrMVQmmEvJXsTmrXuarGrikk5nnB5Cvwg"}`)
	if err := SetResolveZone(db, cfg, bob, node, bytes.Repeat([]byte("z"), 1025)); !errors.Is(err, ErrZoneTooLong) {
		t.Fatalf("expected ErrZoneTooLong, got %v", err)
	}
	if err := SetResolveZone(db, cfg, bob, node, zone); err != nil {
		t.Fatalf("set resolve zone failed: %v", err)
	}
	if err := SetResolveZone(db, cfg, bob, node, zone); !errors.Is(err, ErrUnchanged) {
		t.Fatalf("expected ErrUnchanged, got %v", err)
	}
	if got, ok := ResolveZone(db, node); !ok || !bytes.Equal(got, zone) {
		t.Fatalf("unexpected resolved zone: ok=%v zone=%q", ok, got)
	}
}

func TestResolveAbsent(t *testing.T) {
	db := newTestDB(t)
	node := common.Hash{0x42}

	if _, ok := Resolve(db, node); ok {
		t.Fatalf("expected no resolve record")
	}
	if _, ok := ResolveAddr(db, node); ok {
		t.Fatalf("expected no resolved addr")
	}
	if _, ok := NodeOwner(db, node); ok {
		t.Fatalf("expected no node owner")
	}
}

func TestResolutionRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	node := common.Hash{0x42}

	// A resolve record can never appear ahead of an ownership record.
	if err := SetResolveAddr(db, alice, node, alice); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
	if _, ok := ReadResolveRecord(db, node); ok {
		t.Fatalf("resolve record created without ownership")
	}
}

func TestNameHash(t *testing.T) {
	if NameHash("") != RootNode {
		t.Fatalf("empty name must map to the root node")
	}
	eth := SubnodeHash(RootNode, LabelHash("eth"))
	if NameHash("eth") != eth {
		t.Fatalf("namehash(eth) mismatch")
	}
	want := SubnodeHash(eth, LabelHash("hsiung"))
	if got := NameHash("hsiung.eth"); got != want {
		t.Fatalf("namehash(hsiung.eth) mismatch: have %x want %x", got, want)
	}
}

func TestResolverAdapter(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	node := mustSubnode(t, db, cfg, "eth", bob)

	r := NewResolver(db)
	if _, ok := r.ResolveAddr(node); ok {
		t.Fatalf("expected unresolved node")
	}
	if err := SetResolveAddr(db, bob, node, bob); err != nil {
		t.Fatalf("set resolve addr failed: %v", err)
	}
	if addr, ok := r.ResolveAddr(node); !ok || addr != bob {
		t.Fatalf("unexpected resolver result: ok=%v addr=%x", ok, addr)
	}
}

// mustSubnode sets up root ownership for alice and hands the labeled subnode
// to owner.
func mustSubnode(t *testing.T, db ethdb.KeyValueStore, cfg *params.Config, label string, owner common.Address) common.Hash {
	t.Helper()
	if err := SetRootOwner(db, cfg, admin, alice); err != nil {
		t.Fatalf("set root owner failed: %v", err)
	}
	node, err := SetSubnodeOwner(db, alice, RootNode, LabelHash(label), owner)
	if err != nil {
		t.Fatalf("set subnode owner failed: %v", err)
	}
	return node
}
