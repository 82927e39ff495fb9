package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/api"
)

// PerformRequest runs a request against the server's echo instance without
// opening a socket. Strings and byte slices are sent as given, anything else
// is marshaled to JSON.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body any, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header[k] = v
	}
	if body != nil && req.Header.Get(echo.HeaderContentType) == "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

// ParseResponseAndValidate decodes the response body into v and validates it.
func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, v runtime.Validatable) {
	t.Helper()

	ParseResponseBody(t, res, v)

	err := v.Validate(strfmt.Default)
	require.NoError(t, err, "Response body failed validation")
}

// ParseResponseBody decodes the response body into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v any) {
	t.Helper()

	err := json.NewDecoder(res.Result().Body).Decode(v)
	require.NoError(t, err, "Failed to parse response body")
}
