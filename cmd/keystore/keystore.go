package keystore

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/config"
	"github/chapool/hl-signer/internal/util"
	"github/chapool/hl-signer/internal/util/command"
	"github/chapool/hl-signer/internal/util/hexconv"
	"github/chapool/hl-signer/internal/wallet/keystore"
)

const (
	outFlag   = "out"
	lightFlag = "light"
)

// readSecret is swapped out in tests.
var readSecret = util.ReadSecret

var ErrPassphraseMismatch = errors.New("passphrases do not match")

func New() *cobra.Command {
	return command.NewSubcommandGroup("keystore",
		newImport(),
	)
}

func newImport() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Encrypts a private key into a keystore v3 file",
		Long: `Encrypts a private key into a keystore v3 file

The key is taken from HL_SIGNER_PRIVATE_KEY or read from the terminal.
The passphrase is read from the terminal twice. Point HL_SIGNER_KEYSTORE_FILE
at the written file to sign with it.`,
		RunE: runImport,
	}

	cmd.Flags().StringP(outFlag, "o", "", "Path of the keystore file to create")
	cmd.Flags().Bool(lightFlag, false, "Use light scrypt parameters")

	if err := cmd.MarkFlagRequired(outFlag); err != nil {
		panic(err)
	}

	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString(outFlag)
	light, _ := cmd.Flags().GetBool(lightFlag)

	hexKey := config.DefaultServiceConfigFromEnv().Signer.PrivateKey
	if hexKey == "" {
		var err error
		if hexKey, err = readSecret("Private key: "); err != nil {
			return err
		}
	}

	key, err := hexconv.DecodeHex(strings.TrimSpace(hexKey))
	if err != nil {
		return errors.Wrap(err, "private key is not valid hex")
	}
	defer func() {
		for i := range key {
			key[i] = 0
		}
	}()

	passphrase, err := readSecret("Passphrase: ")
	if err != nil {
		return err
	}
	repeated, err := readSecret("Repeat passphrase: ")
	if err != nil {
		return err
	}
	if passphrase != repeated {
		return ErrPassphraseMismatch
	}

	params := keystore.StandardScryptParams()
	if light {
		params = keystore.LightScryptParams()
	}

	k, err := keystore.Encrypt(key, passphrase, params)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt key")
	}

	if err := keystore.WriteFile(out, k); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "0x%s written to %s\n", k.Address, out)

	return nil
}
