package command

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// stdinMarker selects stdin as the input of a document flag.
const stdinMarker = "-"

// ReadDocument returns src itself, or the command's stdin when src is empty
// or "-". Surrounding whitespace is trimmed.
func ReadDocument(cmd *cobra.Command, src string) ([]byte, error) {
	if src != "" && src != stdinMarker {
		return []byte(strings.TrimSpace(src)), nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}

	doc := strings.TrimSpace(string(b))
	if doc == "" {
		return nil, errors.New("no input document given")
	}

	return []byte(doc), nil
}

// PrintJSON writes v as indented JSON to the command's stdout.
func PrintJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal output")
	}

	_, err = cmd.OutOrStdout().Write(append(b, '\n'))

	return errors.Wrap(err, "failed to write output")
}

// OptionalString returns nil for an empty flag value.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// OptionalUint64 returns nil unless the flag was set explicitly.
func OptionalUint64(cmd *cobra.Command, name string) (*uint64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}

	v, err := cmd.Flags().GetUint64(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read flag %s", name)
	}

	return &v, nil
}
