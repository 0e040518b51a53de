package business

import (
	"fmt"

	"github.com/pistis-network/go-pistis/nameservice"
	"github.com/pistis-network/go-pistis/sysaction"
)

func init() {
	sysaction.DefaultRegistry.Register(&businessHandler{})
}

// businessHandler implements sysaction.Handler for BIZ_* and PRODUCT_*
// actions. Authorization goes through the AddressResolver interface; the
// handler merely binds it to the name service living in the same store.
type businessHandler struct{}

func (h *businessHandler) CanHandle(kind sysaction.ActionKind) bool {
	switch kind {
	case sysaction.ActionCreateBusiness,
		sysaction.ActionSetBusinessExpiration,
		sysaction.ActionAddWhitelist,
		sysaction.ActionRemoveWhitelist,
		sysaction.ActionCreateProduct,
		sysaction.ActionAddProductInfo:
		return true
	}
	return false
}

func (h *businessHandler) Handle(ctx *sysaction.Context, sa *sysaction.SysAction) error {
	resolver := nameservice.NewResolver(ctx.DB)

	switch sa.Action {
	case sysaction.ActionCreateBusiness:
		var p sysaction.CreateBusinessPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("create business: %w", err)
		}
		biz, err := CreateBusiness(ctx.DB, ctx.Config, resolver, ctx.From, ctx.Random, p.Owner, p.Name, p.Expiration, ctx.BlockNumber)
		if err != nil {
			return err
		}
		ctx.EmitEvent(BusinessCreatedEvent{Creator: ctx.From, Business: biz})
		return nil

	case sysaction.ActionSetBusinessExpiration:
		var p sysaction.SetBusinessExpirationPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("set business expiration: %w", err)
		}
		if err := SetBusinessExpiration(ctx.DB, ctx.Config, resolver, ctx.From, p.Business, p.Expiration); err != nil {
			return err
		}
		ctx.EmitEvent(BusinessExpirationChangedEvent{Caller: ctx.From, Business: p.Business, Expiration: p.Expiration})
		return nil

	case sysaction.ActionAddWhitelist:
		var p sysaction.WhitelistPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("add whitelist: %w", err)
		}
		list, err := AddBusinessWhitelist(ctx.DB, resolver, ctx.From, p.Business, p.NameHash)
		if err != nil {
			return err
		}
		ctx.EmitEvent(BusinessWhitelistChangedEvent{Caller: ctx.From, Business: p.Business, Whitelist: list})
		return nil

	case sysaction.ActionRemoveWhitelist:
		var p sysaction.WhitelistPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("remove whitelist: %w", err)
		}
		list, err := RemoveBusinessWhitelist(ctx.DB, resolver, ctx.From, p.Business, p.NameHash)
		if err != nil {
			return err
		}
		ctx.EmitEvent(BusinessWhitelistChangedEvent{Caller: ctx.From, Business: p.Business, Whitelist: list})
		return nil

	case sysaction.ActionCreateProduct:
		var p sysaction.ProductPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		product, err := CreateProduct(ctx.DB, ctx.Config, resolver, ctx.From, p.NameHash, p.Business, p.SeqID, p.DataHash, p.Extra, ctx.BlockNumber)
		if err != nil {
			return err
		}
		ctx.EmitEvent(ProductCreatedEvent{Creator: ctx.From, Business: p.Business, SeqID: p.SeqID, Product: product})
		return nil

	case sysaction.ActionAddProductInfo:
		var p sysaction.ProductPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("add product info: %w", err)
		}
		product, err := AddProductInfo(ctx.DB, ctx.Config, resolver, ctx.From, p.NameHash, p.Business, p.SeqID, p.DataHash, p.Extra, ctx.BlockNumber)
		if err != nil {
			return err
		}
		ctx.EmitEvent(ProductInfoAppendedEvent{Creator: ctx.From, Business: p.Business, SeqID: p.SeqID, Product: product})
		return nil
	}
	return fmt.Errorf("business handler: unsupported action %q", sa.Action)
}
