package util_test

import (
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github/chapool/hl-signer/internal/util"
)

func TestBoolOr(t *testing.T) {
	tests := []struct {
		name     string
		b        *bool
		fallback bool
		want     bool
	}{
		{"nil falls back to false", nil, false, false},
		{"nil falls back to true", nil, true, true},
		{"explicit false wins", swag.Bool(false), true, false},
		{"explicit true wins", swag.Bool(true), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, util.BoolOr(tt.b, tt.fallback))
		})
	}
}
