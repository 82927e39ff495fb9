package types

import (
	"strconv"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
	"github/chapool/hl-signer/internal/action"
)

const addressPattern = `^0x[0-9a-fA-F]{40}$`

// PostSignL1Payload post sign l1 payload
//
// swagger:model postSignL1Payload
type PostSignL1Payload struct {

	// Action to sign, object keys are hashed in document order
	// Required: true
	Action action.Value `json:"action"`

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

// Validate validates this post sign l1 payload
func (m *PostSignL1Payload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validateActionValue("action", m.Action); err != nil {
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

// PostHashPayload post hash payload
//
// swagger:model postHashPayload
type PostHashPayload struct {

	// Action to hash
	// Required: true
	Action action.Value `json:"action"`

	// Optional expiry in milliseconds
	// Minimum: 0
	ExpiresAfter *int64 `json:"expiresAfter,omitempty"`

	// nonce
	// Required: true
	// Minimum: 0
	Nonce *int64 `json:"nonce"`

	// Optional vault or sub-account address
	// Pattern: ^0x[0-9a-fA-F]{40}$
	VaultAddress *string `json:"vaultAddress,omitempty"`
}

// Validate validates this post hash payload
func (m *PostHashPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validateActionValue("action", m.Action); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalMinimum("expiresAfter", m.ExpiresAfter); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("nonce", "body", m.Nonce); err != nil {
		res = append(res, err)
	} else if err := validateOptionalMinimum("nonce", m.Nonce); err != nil {
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

// EIP712Field EIP-712 struct member
//
// swagger:model eip712Field
type EIP712Field struct {

	// name
	// Required: true
	Name *string `json:"name"`

	// Solidity type such as string, uint64 or address
	// Required: true
	Type *string `json:"type"`
}

// Validate validates this eip712 field
func (m *EIP712Field) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("name", "body", swag.StringValue(m.Name)); err != nil {
		res = append(res, err)
	}

	if err := validate.RequiredString("type", "body", swag.StringValue(m.Type)); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PostSignUserPayload post sign user payload
//
// swagger:model postSignUserPayload
type PostSignUserPayload struct {

	// User-signed action including its type
	// Required: true
	Action *action.Map `json:"action"`

	// Sign for mainnet, defaults to the daemon's network
	Mainnet *bool `json:"mainnet,omitempty"`

	// Primary type, looked up from the action's type when empty
	PrimaryType string `json:"primaryType,omitempty"`

	// Members of the primary type, required with primaryType
	Types []*EIP712Field `json:"types"`
}

// Validate validates this post sign user payload
func (m *PostSignUserPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("action", "body", m.Action); err != nil {
		res = append(res, err)
	}

	if m.PrimaryType != "" {
		if err := validate.MinItems("types", "body", int64(len(m.Types)), 1); err != nil {
			res = append(res, err)
		}
	}

	for i := 0; i < len(m.Types); i++ {
		if swag.IsZero(m.Types[i]) { // not required
			continue
		}

		if err := m.Types[i].Validate(formats); err != nil {
			if ve, ok := err.(*errors.Validation); ok {
				return ve.ValidateName("types" + "." + strconv.Itoa(i))
			}
			return err
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PostSignMultiSigPayload post sign multi sig payload
//
// swagger:model postSignMultiSigPayload
type PostSignMultiSigPayload struct {

	// Inner multi-sig action including its type
	// Required: true
	Action *action.Map `json:"action"`

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

// Validate validates this post sign multi sig payload
func (m *PostSignMultiSigPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("action", "body", m.Action); err != nil {
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

func validateActionValue(path string, v action.Value) error {
	if v.IsNull() {
		return errors.Required(path, "body", nil)
	}
	if v.Kind() != action.KindMap {
		return errors.InvalidType(path, "body", "object", v.Kind().String())
	}
	return nil
}

func validateOptionalMinimum(path string, v *int64) error {
	if swag.IsZero(v) { // not required
		return nil
	}

	if err := validate.MinimumInt(path, "body", *v, 0, false); err != nil {
		return err
	}
	return nil
}

func validateOptionalAddress(path string, v *string) error {
	if swag.IsZero(v) { // not required
		return nil
	}

	if err := validate.Pattern(path, "body", *v, addressPattern); err != nil {
		return err
	}
	return nil
}
