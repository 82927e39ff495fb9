package probe_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/cmd/probe"
	"github/chapool/hl-signer/internal/api"
	"github/chapool/hl-signer/internal/test"
)

func runProbe(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := probe.New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestProbes(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := httptest.NewServer(s.Echo)
		defer srv.Close()

		out, err := runProbe(t, "readiness", "--url", srv.URL, "--verbose")
		require.NoError(t, err)
		assert.Contains(t, out, "200 Ready.")

		_, err = runProbe(t, "liveness", "--url", srv.URL)
		require.NoError(t, err)

		s.Keys.Clear()

		_, err = runProbe(t, "readiness", "--url", srv.URL)
		require.ErrorIs(t, err, probe.ErrProbeFailed)

		// still alive without a key
		_, err = runProbe(t, "liveness", "--url", srv.URL)
		require.NoError(t, err)
	})
}

func TestProbeUnreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	_, err := runProbe(t, "readiness", "--url", url)
	require.ErrorIs(t, err, probe.ErrProbeFailed)
}
