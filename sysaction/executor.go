package sysaction

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"

	"github.com/pistis-network/go-pistis/params"
)

// Context carries information available to a system-action handler.
//
// From is the authenticated caller; BlockNumber the current height; Random a
// per-execution randomness seed mixed into business hash derivation. All
// three are supplied by the surrounding sequencing layer.
type Context struct {
	From        common.Address
	BlockNumber uint64
	Random      common.Hash
	DB          ethdb.KeyValueStore
	Config      *params.Config

	events []interface{}
}

// EmitEvent records one notification for the current action. Handlers call
// it at most once per successful mutation; the facade publishes the recorded
// events only if the action as a whole succeeds.
func (ctx *Context) EmitEvent(ev interface{}) {
	ctx.events = append(ctx.events, ev)
}

// Events returns the notifications emitted during handling.
func (ctx *Context) Events() []interface{} {
	return ctx.events
}

// Handler is implemented by the nameservice and business sub-systems.
type Handler interface {
	CanHandle(kind ActionKind) bool
	Handle(ctx *Context, sa *SysAction) error
}

// Registry holds registered handlers.
type Registry struct{ handlers []Handler }

// DefaultRegistry is the process-wide handler registry.
var DefaultRegistry = &Registry{}

// Register adds a handler to the registry.
func (r *Registry) Register(h Handler) { r.handlers = append(r.handlers, h) }

// Dispatch decodes data and routes the action to a registered handler.
func (r *Registry) Dispatch(ctx *Context, data []byte) error {
	sa, err := Decode(data)
	if err != nil {
		return err
	}
	for _, h := range r.handlers {
		if h.CanHandle(sa.Action) {
			return h.Handle(ctx, sa)
		}
	}
	return fmt.Errorf("unknown system action: %q", sa.Action)
}

// Execute processes a system action through the default registry.
func Execute(ctx *Context, data []byte) error {
	return DefaultRegistry.Dispatch(ctx, data)
}
