package hash_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/cmd/hash"
)

func TestHashCommand(t *testing.T) {
	cmd := hash.New()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(`{"type":"cancel","cancels":[{"a":0,"o":123}]}`))
	cmd.SetArgs([]string{"--nonce", "1700000000000"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"actionHash":"0xe98dd18456c80d6b913946acb297d411a59a675716721df2abb7a8b85f0044e9"}`, out.String())
}

func TestHashCommandVaultAndExpiry(t *testing.T) {
	cmd := hash.New()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--action", `{"type":"cancel","cancels":[{"a":0,"o":123}]}`,
		"--nonce", "1700000000000",
		"--vault", "0x" + strings.Repeat("11", 20),
		"--expires-after", "1700000060000",
	})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"actionHash":"0x76b8716525bb94561572b432c9f468161d2d225f1fb6f2875031c11dddc0d9d8"}`, out.String())
}

func TestHashCommandRequiresNonce(t *testing.T) {
	cmd := hash.New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--action", `{"type":"noop"}`})

	require.Error(t, cmd.Execute())
}
