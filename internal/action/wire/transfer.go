package wire

import (
	"strings"

	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/action"
)

// The builders below return user-signed actions. Chain fields are added by
// the signing service.

func UsdSendAction(destination string, amount float64, time uint64) (*action.Map, error) {
	amt, err := FloatToWire(amount)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount")
	}

	return action.NewMap().
		Set("type", action.String("usdSend")).
		Set("destination", action.String(strings.ToLower(destination))).
		Set("amount", action.String(amt)).
		Set("time", action.Uint(time)), nil
}

// SpotSendAction sends a spot token, named as "NAME:0x<token id>".
func SpotSendAction(destination, token string, amount float64, time uint64) (*action.Map, error) {
	amt, err := FloatToWire(amount)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount")
	}

	return action.NewMap().
		Set("type", action.String("spotSend")).
		Set("destination", action.String(strings.ToLower(destination))).
		Set("token", action.String(token)).
		Set("amount", action.String(amt)).
		Set("time", action.Uint(time)), nil
}

// WithdrawAction withdraws USDC to destination on the bridge chain.
func WithdrawAction(destination string, amount float64, time uint64) (*action.Map, error) {
	amt, err := FloatToWire(amount)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount")
	}

	return action.NewMap().
		Set("type", action.String("withdraw3")).
		Set("destination", action.String(strings.ToLower(destination))).
		Set("amount", action.String(amt)).
		Set("time", action.Uint(time)), nil
}

// UsdClassTransferAction moves USDC between the spot and perp balances.
func UsdClassTransferAction(amount float64, toPerp bool, nonce uint64) (*action.Map, error) {
	amt, err := FloatToWire(amount)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount")
	}

	return action.NewMap().
		Set("type", action.String("usdClassTransfer")).
		Set("amount", action.String(amt)).
		Set("toPerp", action.Bool(toPerp)).
		Set("nonce", action.Uint(nonce)), nil
}

// ApproveAgentAction authorizes agentAddress to sign L1 actions for the
// account. An empty name approves an unnamed agent.
func ApproveAgentAction(agentAddress, agentName string, nonce uint64) *action.Map {
	return action.NewMap().
		Set("type", action.String("approveAgent")).
		Set("agentAddress", action.String(strings.ToLower(agentAddress))).
		Set("agentName", action.String(agentName)).
		Set("nonce", action.Uint(nonce))
}
