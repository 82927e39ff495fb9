package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kat-co/vala"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key, e.g. HL_ECHO_LISTEN_ADDRESS.
const EnvPrefix = "HL"

const DefaultDerivationPath = "m/44'/60'/0'/0/0"

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BodyLimit                      string
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableLoggerMiddleware         bool
	EnableMetricsMiddleware        bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogResponseBody    bool
	PrettyPrintConsole bool
}

type SignerServer struct {
	// At most one of PrivateKey, Mnemonic or KeystoreFile may be set. When
	// none is set the key is read from the terminal.
	PrivateKey         string `json:"-"`
	Mnemonic           string `json:"-"`
	MnemonicPassphrase string `json:"-"`
	DerivationPath     string
	KeystoreFile       string
	KeystorePassphrase string `json:"-"`
	PromptForKey       bool

	// Mainnet is the network used when a request does not name one.
	Mainnet bool
}

type Server struct {
	Echo   EchoServer
	Logger LoggerServer
	Signer SignerServer
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in the working directory can override the currently set ENV variables.
	// It is never applied during "go test" as it may hold key material.
	if !testing.Testing() {
		if wd, err := os.Getwd(); err == nil {
			DotEnvTryLoad(filepath.Join(wd, ".env.local"), os.Setenv)
		}
	}

	v := newViper()

	return Server{
		Echo: EchoServer{
			Debug:                          v.GetBool("echo.debug"),
			ListenAddress:                  v.GetString("echo.listen_address"),
			HideInternalServerErrorDetails: v.GetBool("echo.hide_internal_server_error_details"),
			BodyLimit:                      v.GetString("echo.body_limit"),
			EnableRecoverMiddleware:        v.GetBool("echo.enable_recover_middleware"),
			EnableRequestIDMiddleware:      v.GetBool("echo.enable_request_id_middleware"),
			EnableLoggerMiddleware:         v.GetBool("echo.enable_logger_middleware"),
			EnableMetricsMiddleware:        v.GetBool("echo.enable_metrics_middleware"),
		},
		Logger: LoggerServer{
			Level:              parseLevel(v.GetString("logger.level"), zerolog.InfoLevel),
			RequestLevel:       parseLevel(v.GetString("logger.request_level"), zerolog.DebugLevel),
			LogRequestBody:     v.GetBool("logger.log_request_body"),
			LogResponseBody:    v.GetBool("logger.log_response_body"),
			PrettyPrintConsole: v.GetBool("logger.pretty_print_console"),
		},
		Signer: SignerServer{
			PrivateKey:         v.GetString("signer.private_key"),
			Mnemonic:           v.GetString("signer.mnemonic"),
			MnemonicPassphrase: v.GetString("signer.mnemonic_passphrase"),
			DerivationPath:     v.GetString("signer.derivation_path"),
			KeystoreFile:       v.GetString("signer.keystore_file"),
			KeystorePassphrase: v.GetString("signer.keystore_passphrase"),
			PromptForKey:       v.GetBool("signer.prompt_for_key"),
			Mainnet:            v.GetBool("signer.mainnet"),
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("echo.debug", false)
	v.SetDefault("echo.listen_address", "127.0.0.1:8080")
	v.SetDefault("echo.hide_internal_server_error_details", true)
	v.SetDefault("echo.body_limit", "1M")
	v.SetDefault("echo.enable_recover_middleware", true)
	v.SetDefault("echo.enable_request_id_middleware", true)
	v.SetDefault("echo.enable_logger_middleware", true)
	v.SetDefault("echo.enable_metrics_middleware", true)

	v.SetDefault("logger.level", zerolog.InfoLevel.String())
	v.SetDefault("logger.request_level", zerolog.DebugLevel.String())
	v.SetDefault("logger.log_request_body", false)
	v.SetDefault("logger.log_response_body", false)
	v.SetDefault("logger.pretty_print_console", false)

	v.SetDefault("signer.derivation_path", DefaultDerivationPath)
	v.SetDefault("signer.prompt_for_key", true)
	v.SetDefault("signer.mainnet", false)

	return v
}

func parseLevel(s string, fallback zerolog.Level) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return fallback
	}
	return lvl
}

// Validate checks the values that have no usable default.
func (s Server) Validate() error {
	if err := vala.BeginValidation().Validate(
		vala.StringNotEmpty(s.Echo.ListenAddress, "echo.listen_address"),
		vala.StringNotEmpty(s.Signer.DerivationPath, "signer.derivation_path"),
	).Check(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	sources := 0
	for _, v := range []string{s.Signer.PrivateKey, s.Signer.Mnemonic, s.Signer.KeystoreFile} {
		if v != "" {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("invalid configuration: set only one of signer.private_key, signer.mnemonic or signer.keystore_file")
	}

	return nil
}

// ReadTimeout bounds how long the daemon waits for a request body.
const ReadTimeout = 10 * time.Second
