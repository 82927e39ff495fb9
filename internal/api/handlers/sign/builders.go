package sign

import (
	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/action/wire"
	"github/chapool/hl-signer/internal/types"
)

func orderFromRequest(o *types.OrderRequest) (wire.Order, error) {
	if o == nil {
		return wire.Order{}, errors.Wrap(wire.ErrInvalidOrder, "order is null")
	}

	order := wire.Order{
		Asset:      int(swag.Int64Value(o.Asset)),
		IsBuy:      swag.BoolValue(o.IsBuy),
		LimitPx:    swag.Float64Value(o.LimitPx),
		Size:       swag.Float64Value(o.Size),
		ReduceOnly: o.ReduceOnly,
	}

	if o.Trigger != nil {
		order.Type.Trigger = &wire.TriggerOrder{
			TriggerPx: swag.Float64Value(o.Trigger.TriggerPx),
			IsMarket:  o.Trigger.IsMarket,
			Tpsl:      wire.Tpsl(swag.StringValue(o.Trigger.Tpsl)),
		}
	} else {
		tif := wire.TifGtc
		if o.Tif != "" {
			tif = wire.Tif(o.Tif)
		}
		order.Type.Limit = &wire.LimitOrder{Tif: tif}
	}

	if o.Cloid != "" {
		cloid, err := wire.ParseCloid(o.Cloid)
		if err != nil {
			return wire.Order{}, err
		}
		order.Cloid = &cloid
	}

	return order, nil
}

func orderActionFromPayload(body *types.PostSignOrderPayload) (action.Value, error) {
	orders := make([]wire.Order, 0, len(body.Orders))
	for i, o := range body.Orders {
		order, err := orderFromRequest(o)
		if err != nil {
			return action.Value{}, errors.Wrapf(err, "order %d", i)
		}
		orders = append(orders, order)
	}

	var builder *wire.Builder
	if body.Builder != nil {
		builder = &wire.Builder{
			Address: swag.StringValue(body.Builder.Address),
			Fee:     int(swag.Int64Value(body.Builder.Fee)),
		}
	}

	return wire.OrderAction(orders, wire.Grouping(body.Grouping), builder)
}

// cancelActionFromPayload builds a cancel when every entry names an oid and a
// cancelByCloid when every entry names a cloid.
func cancelActionFromPayload(body *types.PostSignCancelPayload) (action.Value, error) {
	var (
		byOid   []wire.Cancel
		byCloid []wire.CancelByCloid
	)

	for i, c := range body.Cancels {
		switch {
		case c == nil:
			return action.Value{}, errors.Wrapf(wire.ErrInvalidOrder, "cancel %d is null", i)
		case c.Oid != nil && c.Cloid != "":
			return action.Value{}, errors.Wrapf(wire.ErrInvalidOrder, "cancel %d has both oid and cloid", i)
		case c.Oid != nil:
			byOid = append(byOid, wire.Cancel{Asset: int(swag.Int64Value(c.Asset)), Oid: uint64(*c.Oid)})
		case c.Cloid != "":
			cloid, err := wire.ParseCloid(c.Cloid)
			if err != nil {
				return action.Value{}, errors.Wrapf(err, "cancel %d", i)
			}
			byCloid = append(byCloid, wire.CancelByCloid{Asset: int(swag.Int64Value(c.Asset)), Cloid: cloid})
		default:
			return action.Value{}, errors.Wrapf(wire.ErrInvalidOrder, "cancel %d needs an oid or a cloid", i)
		}
	}

	switch {
	case len(byOid) > 0 && len(byCloid) > 0:
		return action.Value{}, errors.Wrap(wire.ErrInvalidOrder, "cancels mix oids and cloids")
	case len(byCloid) > 0:
		return wire.CancelByCloidAction(byCloid...), nil
	default:
		return wire.CancelAction(byOid...), nil
	}
}
