// Package signing turns exchange actions into signatures. L1 actions are hashed
// and signed through a phantom agent over the Exchange domain. User-signed
// actions are signed as typed data over the HyperliquidSignTransaction domain.
package signing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/crypto/eip712"
	"github/chapool/hl-signer/internal/crypto/keccak"
	"github/chapool/hl-signer/internal/metrics"
	"github/chapool/hl-signer/internal/util"
	"github/chapool/hl-signer/internal/util/hexconv"
	"github/chapool/hl-signer/internal/wallet/keymanager"
)

const (
	KindL1         = "l1"
	KindUserSigned = "user"
	KindMultiSig   = "multisig"

	sourceMainnet = "a"
	sourceTestnet = "b"

	chainMainnet = "Mainnet"
	chainTestnet = "Testnet"
)

var (
	ErrUnknownActionType = errors.New("unknown user-signed action type")
	ErrChainMismatch     = errors.New("signatureChainId does not match the signing domain")
)

type service struct {
	keys    keymanager.Manager
	metrics *metrics.Service
}

// NewService creates a new signing Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(keys keymanager.Manager, m *metrics.Service) (Service, error) {
	if keys == nil || !keys.IsInitialized() {
		return nil, keymanager.ErrNotInitialized
	}

	return &service{
		keys:    keys,
		metrics: m,
	}, nil
}

func (s *service) Address() string {
	return s.keys.Address()
}

func (s *service) HashAction(_ context.Context, req *HashRequest) (keccak.Digest, error) {
	h, err := action.Hash(req.Action, req.Nonce, req.VaultAddress, req.ExpiresAfter)
	s.metrics.ObserveActionHash(err)
	if err != nil {
		return keccak.Digest{}, errors.Wrap(err, "failed to hash action")
	}
	return h, nil
}

// SignL1Action hashes the action, wraps the hash in a phantom agent and signs
// the agent over the Exchange domain.
func (s *service) SignL1Action(ctx context.Context, req *L1Request) (result *Result, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveSignature(KindL1, Network(req.Mainnet), start, err) }()

	log := util.LogFromContext(ctx)

	actionHash, err := action.Hash(req.Action, req.Nonce, req.VaultAddress, req.ExpiresAfter)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to hash L1 action")
		return nil, errors.Wrap(err, "failed to hash action")
	}

	digest, err := eip712.Digest(eip712.L1Domain, eip712.AgentTypes, eip712.AgentPrimaryType, PhantomAgent(actionHash, req.Mainnet))
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash phantom agent")
	}

	sig, err := s.keys.Sign(digest)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign L1 action")
		return nil, errors.Wrap(err, "failed to sign phantom agent")
	}

	log.Debug().
		Str("address", s.keys.Address()).
		Str("actionHash", actionHash.Hex()).
		Uint64("nonce", req.Nonce).
		Bool("mainnet", req.Mainnet).
		Msg("Signed L1 action")

	return &Result{
		Signature:  sig,
		Digest:     digest,
		ActionHash: &actionHash,
	}, nil
}

// PhantomAgent builds the Agent message that stands in for an L1 action.
func PhantomAgent(actionHash keccak.Digest, mainnet bool) map[string]any {
	source := sourceTestnet
	if mainnet {
		source = sourceMainnet
	}

	return map[string]any{
		"source":       source,
		"connectionId": actionHash,
	}
}

// SignUserSignedAction injects the chain fields into a copy of the action and
// signs it over the user-signed domain.
func (s *service) SignUserSignedAction(ctx context.Context, req *UserSignedRequest) (result *Result, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveSignature(KindUserSigned, Network(req.Mainnet), start, err) }()

	typ, err := resolveUserSignedType(req)
	if err != nil {
		return nil, err
	}

	return s.signUserSigned(ctx, req.Action, typ, req.Mainnet)
}

func (s *service) signUserSigned(ctx context.Context, act *action.Map, typ UserSignedType, mainnet bool) (*Result, error) {
	log := util.LogFromContext(ctx)

	signed, err := withChainFields(act, mainnet)
	if err != nil {
		return nil, err
	}

	digest, err := eip712.Digest(eip712.UserSignedDomain, typ.Types(), typ.PrimaryType, eip712.MessageFromMap(signed))
	if err != nil {
		log.Debug().Err(err).Str("primaryType", typ.PrimaryType).Msg("Failed to hash user-signed action")
		return nil, errors.Wrapf(err, "failed to hash %s", typ.PrimaryType)
	}

	sig, err := s.keys.Sign(digest)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign user-signed action")
		return nil, errors.Wrap(err, "failed to sign typed data")
	}

	log.Debug().
		Str("address", s.keys.Address()).
		Str("primaryType", typ.PrimaryType).
		Bool("mainnet", mainnet).
		Msg("Signed user-signed action")

	return &Result{
		Signature: sig,
		Digest:    digest,
		Action:    signed,
	}, nil
}

// SignMultiSigAction hashes the inner action without its type and signs the
// SendMultiSig envelope committing to that hash.
func (s *service) SignMultiSigAction(ctx context.Context, req *MultiSigRequest) (result *Result, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveSignature(KindMultiSig, Network(req.Mainnet), start, err) }()

	if req.Action == nil {
		return nil, errors.Wrap(action.ErrEncoding, "multi-sig action is nil")
	}

	inner := action.FromMap(req.Action.Without(fieldType))
	actionHash, err := action.Hash(inner, req.Nonce, req.VaultAddress, req.ExpiresAfter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash multi-sig action")
	}

	envelope := action.NewMap().
		Set("multiSigActionHash", action.String(actionHash.Hex())).
		Set("nonce", action.Uint(req.Nonce))

	res, err := s.signUserSigned(ctx, envelope, MultiSigEnvelopeType, req.Mainnet)
	if err != nil {
		return nil, err
	}

	res.ActionHash = &actionHash
	return res, nil
}

func resolveUserSignedType(req *UserSignedRequest) (UserSignedType, error) {
	if req.Action == nil {
		return UserSignedType{}, errors.Wrap(action.ErrEncoding, "user-signed action is nil")
	}

	if req.PrimaryType != "" {
		if len(req.Fields) == 0 {
			return UserSignedType{}, errors.Wrapf(eip712.ErrUnknownType, "no fields given for %s", req.PrimaryType)
		}
		return UserSignedType{PrimaryType: req.PrimaryType, Fields: req.Fields}, nil
	}

	v, ok := req.Action.Get(fieldType)
	if !ok {
		return UserSignedType{}, errors.Wrap(ErrUnknownActionType, "action has no type")
	}
	name, _ := v.AsString()

	typ, ok := LookupUserSignedType(name)
	if !ok {
		return UserSignedType{}, errors.Wrapf(ErrUnknownActionType, "%q", name)
	}
	return typ, nil
}

// withChainFields returns a copy of act with hyperliquidChain set for the
// network and signatureChainId defaulted to the user-signed domain's chain.
func withChainFields(act *action.Map, mainnet bool) (*action.Map, error) {
	out := act.Clone()

	if v, ok := out.Get(fieldSignatureChainID); ok {
		id, isString := v.AsString()
		if !isString {
			return nil, errors.Wrap(ErrChainMismatch, "signatureChainId must be a hex string")
		}
		n, err := hexconv.ParseUint64(id)
		if err != nil || n != eip712.UserSignedChainID {
			return nil, errors.Wrapf(ErrChainMismatch, "got %s, want %s", id, eip712.UserSignedChainIDHex)
		}
	} else {
		out.Set(fieldSignatureChainID, action.String(eip712.UserSignedChainIDHex))
	}

	chain := chainTestnet
	if mainnet {
		chain = chainMainnet
	}
	out.Set(fieldHyperliquidChain, action.String(chain))

	return out, nil
}
