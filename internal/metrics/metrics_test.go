package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/metrics"
)

func TestObserveSignature(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	m.ObserveSignature("l1", "mainnet", time.Now(), nil)
	m.ObserveSignature("l1", "mainnet", time.Now(), nil)
	m.ObserveSignature("l1", "testnet", time.Now(), errors.New("boom"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.SignaturesTotal.WithLabelValues("l1", "mainnet", metrics.ResultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.SignaturesTotal.WithLabelValues("l1", "testnet", metrics.ResultError)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.SigningDuration))
}

func TestObserveActionHashAndKeyGauge(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	m.ObserveActionHash(nil)
	m.ObserveActionHash(errors.New("bad vault"))
	assert.InDelta(t, 1, testutil.ToFloat64(m.ActionHashTotal.WithLabelValues(metrics.ResultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ActionHashTotal.WithLabelValues(metrics.ResultError)), 0)

	m.SetKeyLoaded(true)
	assert.InDelta(t, 1, testutil.ToFloat64(m.KeyManagerLoaded), 0)
	m.SetKeyLoaded(false)
	assert.InDelta(t, 0, testutil.ToFloat64(m.KeyManagerLoaded), 0)
}

func TestNilServiceIsNoop(t *testing.T) {
	var m *metrics.Service
	m.ObserveSignature("l1", "mainnet", time.Now(), nil)
	m.ObserveActionHash(nil)
	m.SetKeyLoaded(true)
}

func TestNewExportsRuntimeCollectors(t *testing.T) {
	m := metrics.New()
	m.ObserveSignature("user", "testnet", time.Now(), nil)

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["go_goroutines"])
	assert.True(t, names["hl_signer_signatures_total"])
}
