package types

import (
	"strconv"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// HTTPValidationErrorDetail http validation error detail
//
// swagger:model httpValidationErrorDetail
type HTTPValidationErrorDetail struct {

	// Error describing field validation failure
	// Required: true
	Error *string `json:"error"`

	// Indicates how the invalid field was provided
	// Required: true
	In *string `json:"in"`

	// Key of field failing validation
	// Required: true
	Key *string `json:"key"`
}

// Validate validates this http validation error detail
func (m *HTTPValidationErrorDetail) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("error", "body", m.Error); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("in", "body", m.In); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("key", "body", m.Key); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PublicHTTPValidationError public Http validation error
//
// swagger:model publicHttpValidationError
type PublicHTTPValidationError struct {
	PublicHTTPError

	// List of errors received while validating payload against schema
	// Required: true
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// Validate validates this public Http validation error
func (m *PublicHTTPValidationError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.PublicHTTPError.Validate(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("validationErrors", "body", m.ValidationErrors); err != nil {
		res = append(res, err)
	}

	for i := 0; i < len(m.ValidationErrors); i++ {
		if swag.IsZero(m.ValidationErrors[i]) { // not required
			continue
		}

		if err := m.ValidationErrors[i].Validate(formats); err != nil {
			if ve, ok := err.(*errors.Validation); ok {
				return ve.ValidateName("validationErrors" + "." + strconv.Itoa(i))
			}
			return err
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
