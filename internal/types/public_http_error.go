package types

import (
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PublicHTTPError Represents an error returned by the daemon.
//
// swagger:model publicHttpError
type PublicHTTPError struct {

	// HTTP status code returned for the error
	// Required: true
	Code *int64 `json:"status"`

	// More detailed, human-readable, optional explanation of the error
	Detail string `json:"detail,omitempty"`

	// Short, human-readable description of the error
	// Required: true
	Title *string `json:"title"`

	// type
	// Required: true
	Type *PublicHTTPErrorType `json:"type"`
}

// Validate validates this public Http error
func (m *PublicHTTPError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateCode(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateTitle(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateType(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PublicHTTPError) validateCode(formats strfmt.Registry) error {
	if err := validate.Required("status", "body", m.Code); err != nil {
		return err
	}

	return nil
}

func (m *PublicHTTPError) validateTitle(formats strfmt.Registry) error {
	if err := validate.Required("title", "body", m.Title); err != nil {
		return err
	}

	return nil
}

func (m *PublicHTTPError) validateType(formats strfmt.Registry) error {
	if err := validate.Required("type", "body", m.Type); err != nil {
		return err
	}

	if m.Type != nil {
		if err := m.Type.Validate(formats); err != nil {
			if ve, ok := err.(*errors.Validation); ok {
				return ve.ValidateName("type")
			}
			return err
		}
	}

	return nil
}

// MarshalBinary interface implementation
func (m *PublicHTTPError) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PublicHTTPError) UnmarshalBinary(b []byte) error {
	var res PublicHTTPError
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// PublicHTTPErrorType Type of error returned, should be used for client-side error handling
//
// swagger:model publicHttpErrorType
type PublicHTTPErrorType string

func NewPublicHTTPErrorType(value PublicHTTPErrorType) *PublicHTTPErrorType {
	return &value
}

// Pointer returns a pointer to a freshly-allocated PublicHTTPErrorType.
func (m PublicHTTPErrorType) Pointer() *PublicHTTPErrorType {
	return &m
}

const (

	// PublicHTTPErrorTypeGeneric captures enum value "generic"
	PublicHTTPErrorTypeGeneric PublicHTTPErrorType = "generic"

	// PublicHTTPErrorTypeInvalidAction captures enum value "INVALID_ACTION"
	PublicHTTPErrorTypeInvalidAction PublicHTTPErrorType = "INVALID_ACTION"

	// PublicHTTPErrorTypeInvalidTypedData captures enum value "INVALID_TYPED_DATA"
	PublicHTTPErrorTypeInvalidTypedData PublicHTTPErrorType = "INVALID_TYPED_DATA"

	// PublicHTTPErrorTypeUnknownActionType captures enum value "UNKNOWN_ACTION_TYPE"
	PublicHTTPErrorTypeUnknownActionType PublicHTTPErrorType = "UNKNOWN_ACTION_TYPE"

	// PublicHTTPErrorTypeChainMismatch captures enum value "CHAIN_MISMATCH"
	PublicHTTPErrorTypeChainMismatch PublicHTTPErrorType = "CHAIN_MISMATCH"

	// PublicHTTPErrorTypeKeyNotLoaded captures enum value "KEY_NOT_LOADED"
	PublicHTTPErrorTypeKeyNotLoaded PublicHTTPErrorType = "KEY_NOT_LOADED"
)

// for schema
var publicHttpErrorTypeEnum []interface{}

func init() {
	var res []PublicHTTPErrorType
	if err := json.Unmarshal([]byte(`["generic","INVALID_ACTION","INVALID_TYPED_DATA","UNKNOWN_ACTION_TYPE","CHAIN_MISMATCH","KEY_NOT_LOADED"]`), &res); err != nil {
		panic(err)
	}
	for _, v := range res {
		publicHttpErrorTypeEnum = append(publicHttpErrorTypeEnum, v)
	}
}

func (m PublicHTTPErrorType) validatePublicHTTPErrorTypeEnum(path, location string, value PublicHTTPErrorType) error {
	if err := validate.EnumCase(path, location, value, publicHttpErrorTypeEnum, true); err != nil {
		return err
	}
	return nil
}

// Validate validates this public Http error type
func (m PublicHTTPErrorType) Validate(formats strfmt.Registry) error {
	var res []error

	// value enum
	if err := m.validatePublicHTTPErrorTypeEnum("", "body", m); err != nil {
		return err
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
