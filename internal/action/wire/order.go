package wire

import (
	"strings"

	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/action"
)

type Tif string

const (
	TifAlo Tif = "Alo"
	TifIoc Tif = "Ioc"
	TifGtc Tif = "Gtc"
)

func (t Tif) valid() bool {
	return t == TifAlo || t == TifIoc || t == TifGtc
}

type Tpsl string

const (
	TpslTakeProfit Tpsl = "tp"
	TpslStopLoss   Tpsl = "sl"
)

func (t Tpsl) valid() bool {
	return t == TpslTakeProfit || t == TpslStopLoss
}

type Grouping string

const (
	GroupingNA           Grouping = "na"
	GroupingNormalTpsl   Grouping = "normalTpsl"
	GroupingPositionTpsl Grouping = "positionTpsl"
)

type LimitOrder struct {
	Tif Tif
}

type TriggerOrder struct {
	TriggerPx float64
	IsMarket  bool
	Tpsl      Tpsl
}

// OrderType holds exactly one of Limit or Trigger.
type OrderType struct {
	Limit   *LimitOrder
	Trigger *TriggerOrder
}

// Order is an order on an asset index. Price and size should already be
// rounded with RoundPrice and RoundSize.
type Order struct {
	Asset      int
	IsBuy      bool
	LimitPx    float64
	Size       float64
	ReduceOnly bool
	Type       OrderType
	Cloid      *Cloid
}

// Builder routes a builder fee, in tenths of a basis point, to an address.
type Builder struct {
	Address string
	Fee     int
}

func (t OrderType) value() (action.Value, error) {
	switch {
	case t.Limit != nil && t.Trigger != nil:
		return action.Value{}, errors.Wrap(ErrInvalidOrder, "order type has both limit and trigger")
	case t.Limit != nil:
		if !t.Limit.Tif.valid() {
			return action.Value{}, errors.Wrapf(ErrInvalidOrder, "unknown time in force %q", t.Limit.Tif)
		}
		return action.FromMap(action.NewMap().
			Set("limit", action.FromMap(action.NewMap().
				Set("tif", action.String(string(t.Limit.Tif)))))), nil
	case t.Trigger != nil:
		if !t.Trigger.Tpsl.valid() {
			return action.Value{}, errors.Wrapf(ErrInvalidOrder, "unknown tpsl %q", t.Trigger.Tpsl)
		}
		px, err := FloatToWire(t.Trigger.TriggerPx)
		if err != nil {
			return action.Value{}, errors.Wrap(err, "invalid trigger price")
		}
		return action.FromMap(action.NewMap().
			Set("trigger", action.FromMap(action.NewMap().
				Set("isMarket", action.Bool(t.Trigger.IsMarket)).
				Set("triggerPx", action.String(px)).
				Set("tpsl", action.String(string(t.Trigger.Tpsl)))))), nil
	default:
		return action.Value{}, errors.Wrap(ErrInvalidOrder, "order type needs a limit or a trigger")
	}
}

// Wire returns the order as {a, b, p, s, r, t[, c]}.
func (o Order) Wire() (action.Value, error) {
	px, err := FloatToWire(o.LimitPx)
	if err != nil {
		return action.Value{}, errors.Wrap(err, "invalid limit price")
	}
	sz, err := FloatToWire(o.Size)
	if err != nil {
		return action.Value{}, errors.Wrap(err, "invalid size")
	}
	typ, err := o.Type.value()
	if err != nil {
		return action.Value{}, err
	}

	m := action.NewMap().
		Set("a", action.Int(int64(o.Asset))).
		Set("b", action.Bool(o.IsBuy)).
		Set("p", action.String(px)).
		Set("s", action.String(sz)).
		Set("r", action.Bool(o.ReduceOnly)).
		Set("t", typ)
	if o.Cloid != nil {
		m.Set("c", o.Cloid.value())
	}

	return action.FromMap(m), nil
}

// OrderAction places one or more orders.
func OrderAction(orders []Order, grouping Grouping, builder *Builder) (action.Value, error) {
	wires := make([]action.Value, 0, len(orders))
	for i, o := range orders {
		w, err := o.Wire()
		if err != nil {
			return action.Value{}, errors.Wrapf(err, "order %d", i)
		}
		wires = append(wires, w)
	}

	switch grouping {
	case "":
		grouping = GroupingNA
	case GroupingNA, GroupingNormalTpsl, GroupingPositionTpsl:
	default:
		return action.Value{}, errors.Wrapf(ErrInvalidOrder, "unknown grouping %q", grouping)
	}

	m := action.NewMap().
		Set("type", action.String("order")).
		Set("orders", action.Array(wires...)).
		Set("grouping", action.String(string(grouping)))
	if builder != nil {
		m.Set("builder", action.FromMap(action.NewMap().
			Set("b", action.String(strings.ToLower(builder.Address))).
			Set("f", action.Int(int64(builder.Fee)))))
	}

	return action.FromMap(m), nil
}

type Cancel struct {
	Asset int
	Oid   uint64
}

// CancelAction cancels orders by exchange order id.
func CancelAction(cancels ...Cancel) action.Value {
	items := make([]action.Value, 0, len(cancels))
	for _, c := range cancels {
		items = append(items, action.FromMap(action.NewMap().
			Set("a", action.Int(int64(c.Asset))).
			Set("o", action.Uint(c.Oid))))
	}

	return action.FromMap(action.NewMap().
		Set("type", action.String("cancel")).
		Set("cancels", action.Array(items...)))
}

type CancelByCloid struct {
	Asset int
	Cloid Cloid
}

// CancelByCloidAction cancels orders by client order id.
func CancelByCloidAction(cancels ...CancelByCloid) action.Value {
	items := make([]action.Value, 0, len(cancels))
	for _, c := range cancels {
		items = append(items, action.FromMap(action.NewMap().
			Set("asset", action.Int(int64(c.Asset))).
			Set("cloid", c.Cloid.value())))
	}

	return action.FromMap(action.NewMap().
		Set("type", action.String("cancelByCloid")).
		Set("cancels", action.Array(items...)))
}

// Modify replaces the order identified by Oid or, when Oid is nil, by Cloid.
type Modify struct {
	Oid   *uint64
	Cloid *Cloid
	Order Order
}

func (m Modify) id() (action.Value, error) {
	switch {
	case m.Oid != nil:
		return action.Uint(*m.Oid), nil
	case m.Cloid != nil:
		return m.Cloid.value(), nil
	default:
		return action.Value{}, errors.Wrap(ErrInvalidOrder, "modify needs an oid or a cloid")
	}
}

// BatchModifyAction modifies several resting orders at once.
func BatchModifyAction(modifies ...Modify) (action.Value, error) {
	items := make([]action.Value, 0, len(modifies))
	for i, mod := range modifies {
		id, err := mod.id()
		if err != nil {
			return action.Value{}, errors.Wrapf(err, "modify %d", i)
		}
		w, err := mod.Order.Wire()
		if err != nil {
			return action.Value{}, errors.Wrapf(err, "modify %d", i)
		}
		items = append(items, action.FromMap(action.NewMap().
			Set("oid", id).
			Set("order", w)))
	}

	return action.FromMap(action.NewMap().
		Set("type", action.String("batchModify")).
		Set("modifies", action.Array(items...))), nil
}

func UpdateLeverageAction(asset int, isCross bool, leverage int) action.Value {
	return action.FromMap(action.NewMap().
		Set("type", action.String("updateLeverage")).
		Set("asset", action.Int(int64(asset))).
		Set("isCross", action.Bool(isCross)).
		Set("leverage", action.Int(int64(leverage))))
}

// ScheduleCancelAction arms the dead man's switch at time, or clears it when
// time is nil.
func ScheduleCancelAction(time *uint64) action.Value {
	m := action.NewMap().Set("type", action.String("scheduleCancel"))
	if time != nil {
		m.Set("time", action.Uint(*time))
	}
	return action.FromMap(m)
}
