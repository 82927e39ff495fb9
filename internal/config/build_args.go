package config

import "fmt"

// The following vars are set via -ldflags at build time, e.g.
// go build -ldflags "-X github/chapool/hl-signer/internal/config.Commit=$(git rev-parse HEAD)"
var (
	ModuleName = "github/chapool/hl-signer"
	Commit     = "< 40 chars git commit hash via ldflags >"
	BuildDate  = "1970-01-01T00:00:00+00:00"
)

// GetFormattedBuildArgs returns the module name, commit and build date on one line.
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
