package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

// DotEnvTryLoad applies the variables of a .env file through setEnvFn. A
// missing file is skipped silently, a malformed one panics.
func DotEnvTryLoad(absolutePathToEnvFile string, setEnvFn func(k string, v string) error) {
	err := DotEnvLoad(absolutePathToEnvFile, setEnvFn)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Panic().Err(err).Str("envFile", absolutePathToEnvFile).Msg(".env parse error!")
		}
	} else {
		log.Warn().Str("envFile", absolutePathToEnvFile).Msg(".env overrides ENV variables!")
	}
}

// DotEnvLoad parses the .env file strictly and applies every variable through setEnvFn.
func DotEnvLoad(absolutePathToEnvFile string, setEnvFn func(k string, v string) error) error {
	file, err := os.Open(absolutePathToEnvFile)
	if err != nil {
		return err
	}
	defer file.Close()

	envs, err := gotenv.StrictParse(file)
	if err != nil {
		return errors.Wrap(err, "failed to parse .env file")
	}

	for key, value := range envs {
		if err := setEnvFn(key, value); err != nil {
			return errors.Wrapf(err, "failed to set %s", key)
		}
	}

	return nil
}
