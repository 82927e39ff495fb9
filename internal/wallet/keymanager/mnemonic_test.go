package keymanager_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hl-signer/internal/wallet/keymanager"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestImportMnemonic(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"default path", "", hardhatAddress},
		{"explicit first account", "m/44'/60'/0'/0/0", hardhatAddress},
		{"h notation", "m/44h/60h/0h/0/0", hardhatAddress},
		{"second account", "m/44'/60'/0'/0/1", "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := keymanager.ImportMnemonic(testMnemonic, "", tt.path)
			require.NoError(t, err)
			defer m.Clear()

			assert.Equal(t, tt.want, m.Address())
		})
	}
}

func TestImportMnemonicNormalizesWhitespace(t *testing.T) {
	m, err := keymanager.ImportMnemonic("  test test test test test test\ttest test test test test   junk ", "", "")
	require.NoError(t, err)
	defer m.Clear()

	assert.Equal(t, hardhatAddress, m.Address())
}

func TestImportMnemonicPassphraseChangesKey(t *testing.T) {
	m, err := keymanager.ImportMnemonic(testMnemonic, "secret", "")
	require.NoError(t, err)
	defer m.Clear()

	assert.NotEqual(t, hardhatAddress, m.Address())
}

func TestImportMnemonicErrors(t *testing.T) {
	_, err := keymanager.ImportMnemonic("test test test test test test test test test test test", "", "")
	assert.ErrorIs(t, err, keymanager.ErrInvalidMnemonic)

	_, err = keymanager.ImportMnemonic("not a mnemonic", "", "")
	assert.ErrorIs(t, err, keymanager.ErrInvalidMnemonic)

	_, err = keymanager.ImportMnemonic(testMnemonic, "", "44'/60'/0'/0/0")
	assert.Error(t, err)
}

func TestParseDerivationPath(t *testing.T) {
	indices, err := keymanager.ParseDerivationPath("m/44'/60'/0'/0/0")
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x8000002c, 0x8000003c, 0x80000000, 0, 0}, indices)

	indices, err = keymanager.ParseDerivationPath("m")
	require.NoError(t, err)
	assert.Empty(t, indices)

	for _, bad := range []string{"", "x/1", "m/a", "m/1/", "m/-1", "m/2147483648"} {
		_, err := keymanager.ParseDerivationPath(bad)
		assert.Error(t, err, bad)
	}
}
