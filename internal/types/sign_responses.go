package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github/chapool/hl-signer/internal/action"
)

const (
	scalarPattern = `^0x[0-9a-f]{64}$`
)

// Signature ECDSA signature with recovery value
//
// swagger:model signature
type Signature struct {

	// r
	// Required: true
	// Pattern: ^0x[0-9a-f]{64}$
	R *string `json:"r"`

	// s
	// Required: true
	// Pattern: ^0x[0-9a-f]{64}$
	S *string `json:"s"`

	// v
	// Required: true
	// Maximum: 28
	// Minimum: 27
	V *int64 `json:"v"`
}

// Validate validates this signature
func (m *Signature) Validate(formats strfmt.Registry) error {
	var res []error

	for _, f := range []struct {
		name  string
		value *string
	}{{"r", m.R}, {"s", m.S}} {
		if err := validate.Required(f.name, "body", f.value); err != nil {
			res = append(res, err)
			continue
		}
		if err := validate.Pattern(f.name, "body", *f.value, scalarPattern); err != nil {
			res = append(res, err)
		}
	}

	if err := validate.Required("v", "body", m.V); err != nil {
		res = append(res, err)
	} else {
		if err := validate.MinimumInt("v", "body", *m.V, 27, false); err != nil {
			res = append(res, err)
		}
		if err := validate.MaximumInt("v", "body", *m.V, 28, false); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// SignResponse sign response
//
// swagger:model signResponse
type SignResponse struct {

	// User-signed action as signed, including the injected chain fields
	Action *action.Map `json:"action,omitempty"`

	// Action hash committed to by L1 and multi-sig signatures
	ActionHash string `json:"actionHash,omitempty"`

	// EIP-712 digest that was signed
	// Required: true
	Digest *string `json:"digest"`

	// Nonce used for the action
	Nonce *int64 `json:"nonce,omitempty"`

	// signature
	// Required: true
	Signature *Signature `json:"signature"`

	// Signing address
	// Required: true
	Signer *string `json:"signer"`
}

// Validate validates this sign response
func (m *SignResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("digest", "body", m.Digest); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("signer", "body", m.Signer); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("signature", "body", m.Signature); err != nil {
		res = append(res, err)
	} else if err := m.Signature.Validate(formats); err != nil {
		if ve, ok := err.(*errors.Validation); ok {
			return ve.ValidateName("signature")
		}
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// HashResponse hash response
//
// swagger:model hashResponse
type HashResponse struct {

	// action hash
	// Required: true
	ActionHash *string `json:"actionHash"`
}

// Validate validates this hash response
func (m *HashResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("actionHash", "body", m.ActionHash); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// AddressResponse address response
//
// swagger:model addressResponse
type AddressResponse struct {

	// Signing address
	// Required: true
	Address *string `json:"address"`

	// Network used when a request does not name one
	// Required: true
	Network *string `json:"network"`
}

// Validate validates this address response
func (m *AddressResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("network", "body", m.Network); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
