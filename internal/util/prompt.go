package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

var ErrNotATerminal = errors.New("stdin is not a terminal")

// ReadSecret prints prompt to stderr and reads a line from the terminal
// without echoing it.
func ReadSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotATerminal
	}

	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrap(err, "failed to read from terminal")
	}

	return strings.TrimSpace(string(b)), nil
}
