package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/config"
)

const probeTimeout = 5 * time.Second

var ErrProbeFailed = errors.New("probe failed")

func addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")
	cmd.Flags().String(urlFlag, "", "Base URL of the daemon, defaults to http://HL_ECHO_LISTEN_ADDRESS")
}

func baseURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString(urlFlag); u != "" {
		return strings.TrimSuffix(u, "/")
	}

	return "http://" + config.DefaultServiceConfigFromEnv().Echo.ListenAddress
}

// check requests path from the daemon and fails unless it answers 200.
func check(ctx context.Context, cmd *cobra.Command, client *http.Client, path string) error {
	verbose, _ := cmd.Flags().GetBool(verboseFlag)
	url := baseURL(cmd) + path

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build probe request")
	}

	res, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Probe request failed")
		return errors.Wrap(ErrProbeFailed, err.Error())
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<10))

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s\n", url, res.StatusCode, strings.TrimSpace(string(body)))
	}

	if res.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrProbeFailed, "%s returned %d", url, res.StatusCode)
	}

	return nil
}
