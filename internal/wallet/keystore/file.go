package keystore

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

const fileMode = 0o600

// ReadFile loads a keystore document from path.
func ReadFile(path string) (*KeyJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read keystore file")
	}

	var k KeyJSON
	if err := json.Unmarshal(b, &k); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}

	return &k, nil
}

// WriteFile stores k at path, readable by the owner only. An existing file
// is never overwritten.
func WriteFile(path string, k *KeyJSON) error {
	b, err := json.MarshalIndent(k, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal keystore")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return errors.Wrap(err, "failed to create keystore file")
	}

	if _, err := f.Write(append(b, '\n')); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "failed to write keystore file")
	}

	return errors.Wrap(f.Close(), "failed to close keystore file")
}
