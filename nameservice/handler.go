package nameservice

import (
	"fmt"

	"github.com/pistis-network/go-pistis/sysaction"
)

func init() {
	sysaction.DefaultRegistry.Register(&nameServiceHandler{})
}

// nameServiceHandler implements sysaction.Handler for NS_* actions.
type nameServiceHandler struct{}

func (h *nameServiceHandler) CanHandle(kind sysaction.ActionKind) bool {
	switch kind {
	case sysaction.ActionSetRootOwner,
		sysaction.ActionSetOwner,
		sysaction.ActionSetSubnodeOwner,
		sysaction.ActionSetTTL,
		sysaction.ActionSetResolveAddr,
		sysaction.ActionSetResolveName,
		sysaction.ActionSetResolveProfile,
		sysaction.ActionSetResolveZone:
		return true
	}
	return false
}

func (h *nameServiceHandler) Handle(ctx *sysaction.Context, sa *sysaction.SysAction) error {
	switch sa.Action {
	case sysaction.ActionSetRootOwner:
		var p sysaction.SetRootOwnerPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("set root owner: %w", err)
		}
		if err := SetRootOwner(ctx.DB, ctx.Config, ctx.From, p.Owner); err != nil {
			return err
		}
		ctx.EmitEvent(RootChangedEvent{Owner: p.Owner})
		return nil

	case sysaction.ActionSetOwner:
		var p sysaction.SetOwnerPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("set owner: %w", err)
		}
		if err := SetOwner(ctx.DB, ctx.From, p.Node, p.Owner); err != nil {
			return err
		}
		ctx.EmitEvent(TransferEvent{Node: p.Node, Owner: p.Owner})
		return nil

	case sysaction.ActionSetSubnodeOwner:
		var p sysaction.SetSubnodeOwnerPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("set subnode owner: %w", err)
		}
		if _, err := SetSubnodeOwner(ctx.DB, ctx.From, p.Node, p.Label, p.Owner); err != nil {
			return err
		}
		ctx.EmitEvent(NewOwnerEvent{Node: p.Node, Label: p.Label, Owner: p.Owner})
		return nil

	case sysaction.ActionSetTTL:
		var p sysaction.SetTTLPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("set ttl: %w", err)
		}
		if err := SetTTL(ctx.DB, ctx.From, p.Node, p.TTL); err != nil {
			return err
		}
		ctx.EmitEvent(NewTTLEvent{Node: p.Node, TTL: p.TTL})
		return nil

	case sysaction.ActionSetResolveAddr:
		var p sysaction.SetResolveAddrPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("set resolve addr: %w", err)
		}
		if err := SetResolveAddr(ctx.DB, ctx.From, p.Node, p.Addr); err != nil {
			return err
		}
		ctx.EmitEvent(ResolveAddrChangedEvent{Node: p.Node, Addr: p.Addr})
		return nil

	case sysaction.ActionSetResolveName:
		var p sysaction.SetResolveNamePayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("set resolve name: %w", err)
		}
		if err := SetResolveName(ctx.DB, ctx.Config, ctx.From, p.Node, p.Name); err != nil {
			return err
		}
		ctx.EmitEvent(ResolveNameChangedEvent{Node: p.Node, Name: p.Name})
		return nil

	case sysaction.ActionSetResolveProfile:
		var p sysaction.SetResolveProfilePayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("set resolve profile: %w", err)
		}
		if err := SetResolveProfile(ctx.DB, ctx.From, p.Node, p.Profile); err != nil {
			return err
		}
		ctx.EmitEvent(ResolveProfileChangedEvent{Node: p.Node, Profile: p.Profile})
		return nil

	case sysaction.ActionSetResolveZone:
		var p sysaction.SetResolveZonePayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("set resolve zone: %w", err)
		}
		if err := SetResolveZone(ctx.DB, ctx.Config, ctx.From, p.Node, p.Zone); err != nil {
			return err
		}
		ctx.EmitEvent(ResolveZoneChangedEvent{Node: p.Node, Zone: p.Zone})
		return nil
	}
	return fmt.Errorf("nameservice handler: unsupported action %q", sa.Action)
}
