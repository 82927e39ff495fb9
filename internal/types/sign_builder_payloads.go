package types

import (
	"strconv"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

const cloidPattern = `^0x[0-9a-fA-F]{32}$`

var (
	orderRequestTifEnum              = []any{"Alo", "Ioc", "Gtc"}
	orderTriggerTpslEnum             = []any{"tp", "sl"}
	postSignOrderPayloadGroupingEnum = []any{"na", "normalTpsl", "positionTpsl"}
)

// OrderTrigger order trigger
//
// swagger:model orderTrigger
type OrderTrigger struct {

	// Execute as a market order once triggered
	IsMarket bool `json:"isMarket,omitempty"`

	// tpsl
	// Required: true
	// Enum: ["tp","sl"]
	Tpsl *string `json:"tpsl"`

	// trigger px
	// Required: true
	// Minimum: > 0
	TriggerPx *float64 `json:"triggerPx"`
}

// Validate validates this order trigger
func (m *OrderTrigger) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("tpsl", "body", m.Tpsl); err != nil {
		res = append(res, err)
	} else if err := validate.Enum("tpsl", "body", *m.Tpsl, orderTriggerTpslEnum); err != nil {
		res = append(res, err)
	}

	if err := validatePositive("triggerPx", m.TriggerPx); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// OrderRequest order request
//
// swagger:model orderRequest
type OrderRequest struct {

	// Asset index
	// Required: true
	// Minimum: 0
	Asset *int64 `json:"asset"`

	// Optional client order id
	// Pattern: ^0x[0-9a-fA-F]{32}$
	Cloid string `json:"cloid,omitempty"`

	// is buy
	// Required: true
	IsBuy *bool `json:"isBuy"`

	// limit px
	// Required: true
	// Minimum: > 0
	LimitPx *float64 `json:"limitPx"`

	// reduce only
	ReduceOnly bool `json:"reduceOnly,omitempty"`

	// size
	// Required: true
	// Minimum: > 0
	Size *float64 `json:"size"`

	// Time in force of a limit order, Gtc when empty
	// Enum: ["Alo","Ioc","Gtc"]
	Tif string `json:"tif,omitempty"`

	// Makes the order a trigger order
	Trigger *OrderTrigger `json:"trigger,omitempty"`
}

// Validate validates this order request
func (m *OrderRequest) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("asset", "body", m.Asset); err != nil {
		res = append(res, err)
	} else if err := validateOptionalMinimum("asset", m.Asset); err != nil {
		res = append(res, err)
	}

	if m.Cloid != "" {
		if err := validate.Pattern("cloid", "body", m.Cloid, cloidPattern); err != nil {
			res = append(res, err)
		}
	}

	if err := validate.Required("isBuy", "body", m.IsBuy); err != nil {
		res = append(res, err)
	}

	if err := validatePositive("limitPx", m.LimitPx); err != nil {
		res = append(res, err)
	}

	if err := validatePositive("size", m.Size); err != nil {
		res = append(res, err)
	}

	if m.Tif != "" {
		if err := validate.Enum("tif", "body", m.Tif, orderRequestTifEnum); err != nil {
			res = append(res, err)
		}
	}

	if err := validateNested("trigger", m.Trigger, formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// BuilderFee builder fee
//
// swagger:model builderFee
type BuilderFee struct {

	// Builder address
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{40}$
	Address *string `json:"address"`

	// Fee in tenths of a basis point
	// Required: true
	// Minimum: 0
	Fee *int64 `json:"fee"`
}

// Validate validates this builder fee
func (m *BuilderFee) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	} else if err := validateOptionalAddress("address", m.Address); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("fee", "body", m.Fee); err != nil {
		res = append(res, err)
	} else if err := validateOptionalMinimum("fee", m.Fee); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PostSignOrderPayload post sign order payload
//
// swagger:model postSignOrderPayload
type PostSignOrderPayload struct {

	// Optional builder receiving a fee
	Builder *BuilderFee `json:"builder,omitempty"`

	// Optional expiry in milliseconds
	// Minimum: 0
	ExpiresAfter *int64 `json:"expiresAfter,omitempty"`

	// Order grouping, na when empty
	// Enum: ["na","normalTpsl","positionTpsl"]
	Grouping string `json:"grouping,omitempty"`

	// Sign for mainnet, defaults to the daemon's network
	Mainnet *bool `json:"mainnet,omitempty"`

	// Nonce, defaults to the current time in milliseconds
	// Minimum: 0
	Nonce *int64 `json:"nonce,omitempty"`

	// orders
	// Required: true
	// Min Items: 1
	Orders []*OrderRequest `json:"orders"`

	// Optional vault or sub-account address
	// Pattern: ^0x[0-9a-fA-F]{40}$
	VaultAddress *string `json:"vaultAddress,omitempty"`
}

// Validate validates this post sign order payload
func (m *PostSignOrderPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validateNested("builder", m.Builder, formats); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalMinimum("expiresAfter", m.ExpiresAfter); err != nil {
		res = append(res, err)
	}

	if m.Grouping != "" {
		if err := validate.Enum("grouping", "body", m.Grouping, postSignOrderPayloadGroupingEnum); err != nil {
			res = append(res, err)
		}
	}

	if err := validateOptionalMinimum("nonce", m.Nonce); err != nil {
		res = append(res, err)
	}

	if err := m.validateOrders(formats); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalAddress("vaultAddress", m.VaultAddress); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostSignOrderPayload) validateOrders(formats strfmt.Registry) error {
	if err := validate.Required("orders", "body", m.Orders); err != nil {
		return err
	}

	if err := validate.MinItems("orders", "body", int64(len(m.Orders)), 1); err != nil {
		return err
	}

	for i := 0; i < len(m.Orders); i++ {
		if err := validateNested("orders"+"."+strconv.Itoa(i), m.Orders[i], formats); err != nil {
			return err
		}
	}

	return nil
}

// CancelRequest cancel request, by oid or by cloid
//
// swagger:model cancelRequest
type CancelRequest struct {

	// Asset index
	// Required: true
	// Minimum: 0
	Asset *int64 `json:"asset"`

	// Client order id
	// Pattern: ^0x[0-9a-fA-F]{32}$
	Cloid string `json:"cloid,omitempty"`

	// Exchange order id
	// Minimum: 0
	Oid *int64 `json:"oid,omitempty"`
}

// Validate validates this cancel request
func (m *CancelRequest) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("asset", "body", m.Asset); err != nil {
		res = append(res, err)
	} else if err := validateOptionalMinimum("asset", m.Asset); err != nil {
		res = append(res, err)
	}

	if m.Cloid != "" {
		if err := validate.Pattern("cloid", "body", m.Cloid, cloidPattern); err != nil {
			res = append(res, err)
		}
	}

	if err := validateOptionalMinimum("oid", m.Oid); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PostSignCancelPayload post sign cancel payload
//
// swagger:model postSignCancelPayload
type PostSignCancelPayload struct {

	// Orders to cancel, either all by oid or all by cloid
	// Required: true
	// Min Items: 1
	Cancels []*CancelRequest `json:"cancels"`

	// Optional expiry in milliseconds
	// Minimum: 0
	ExpiresAfter *int64 `json:"expiresAfter,omitempty"`

	// Sign for mainnet, defaults to the daemon's network
	Mainnet *bool `json:"mainnet,omitempty"`

	// Nonce, defaults to the current time in milliseconds
	// Minimum: 0
	Nonce *int64 `json:"nonce,omitempty"`

	// Optional vault or sub-account address
	// Pattern: ^0x[0-9a-fA-F]{40}$
	VaultAddress *string `json:"vaultAddress,omitempty"`
}

// Validate validates this post sign cancel payload
func (m *PostSignCancelPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateCancels(formats); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalMinimum("expiresAfter", m.ExpiresAfter); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalMinimum("nonce", m.Nonce); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalAddress("vaultAddress", m.VaultAddress); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostSignCancelPayload) validateCancels(formats strfmt.Registry) error {
	if err := validate.Required("cancels", "body", m.Cancels); err != nil {
		return err
	}

	if err := validate.MinItems("cancels", "body", int64(len(m.Cancels)), 1); err != nil {
		return err
	}

	for i := 0; i < len(m.Cancels); i++ {
		if err := validateNested("cancels"+"."+strconv.Itoa(i), m.Cancels[i], formats); err != nil {
			return err
		}
	}

	return nil
}

// PostSignUsdSendPayload post sign usd send payload
//
// swagger:model postSignUsdSendPayload
type PostSignUsdSendPayload struct {

	// USDC amount
	// Required: true
	// Minimum: > 0
	Amount *float64 `json:"amount"`

	// destination
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{40}$
	Destination *string `json:"destination"`

	// Sign for mainnet, defaults to the daemon's network
	Mainnet *bool `json:"mainnet,omitempty"`

	// Action time in milliseconds, defaults to now
	// Minimum: 0
	Time *int64 `json:"time,omitempty"`
}

// Validate validates this post sign usd send payload
func (m *PostSignUsdSendPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validatePositive("amount", m.Amount); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("destination", "body", m.Destination); err != nil {
		res = append(res, err)
	} else if err := validateOptionalAddress("destination", m.Destination); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalMinimum("time", m.Time); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func validatePositive(path string, v *float64) error {
	if err := validate.Required(path, "body", v); err != nil {
		return err
	}

	if err := validate.Minimum(path, "body", *v, 0, true); err != nil {
		return err
	}
	return nil
}

type validatable interface {
	Validate(formats strfmt.Registry) error
}

// validateNested validates an optional nested model and prefixes the names of
// its errors with path.
func validateNested[T validatable](path string, v T, formats strfmt.Registry) error {
	if swag.IsZero(v) { // not required
		return nil
	}

	if err := v.Validate(formats); err != nil {
		if ve, ok := err.(*errors.Validation); ok {
			return ve.ValidateName(path)
		} else if ce, ok := err.(*errors.CompositeError); ok {
			return ce.ValidateName(path)
		}
		return err
	}
	return nil
}
