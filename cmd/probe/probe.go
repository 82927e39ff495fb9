package probe

import (
	"github.com/spf13/cobra"
	"github/chapool/hl-signer/internal/util/command"
)

const (
	verboseFlag string = "verbose"
	urlFlag     string = "url"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}
