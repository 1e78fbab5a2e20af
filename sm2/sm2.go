package sm2

import (
	"math/big"

	"github.com/f3rmion/sm2/group"
	"github.com/f3rmion/sm2/scalarmult"
	"github.com/f3rmion/sm2/sm2p256"
)

// MaxSignAttempts bounds the nonce retry loop in Sign.
const MaxSignAttempts = 64

// Config selects the group, hash function and scalar multiplication
// strategy of an Engine.
type Config struct {
	// Group is the signing group. Nil selects the SM2 curve.
	Group group.Group
	// Hasher digests messages. Nil selects SHA-256.
	Hasher Hasher
	// EnableOptimizations builds the fixed-base table and routes base
	// point multiplications through it.
	EnableOptimizations bool
}

// DefaultConfig returns the SM2 curve with SHA-256 and the fixed-base
// optimization enabled.
func DefaultConfig() Config {
	return Config{
		Group:               &sm2p256.Curve{},
		Hasher:              &SHA256Hasher{},
		EnableOptimizations: true,
	}
}

// Engine signs and verifies messages. Everything it holds is immutable
// after New returns, so a single Engine may be used from many goroutines.
type Engine struct {
	group  group.Group
	hasher Hasher
	mult   *scalarmult.Multiplier
	order  *big.Int
	// maxPrivate is N-2, the largest usable private scalar.
	maxPrivate *big.Int
}

// New creates an Engine from cfg.
func New(cfg Config) *Engine {
	if cfg.Group == nil {
		cfg.Group = &sm2p256.Curve{}
	}
	if cfg.Hasher == nil {
		cfg.Hasher = &SHA256Hasher{}
	}

	strategy := scalarmult.Generic
	if cfg.EnableOptimizations {
		strategy = scalarmult.Windowed
	}

	order := new(big.Int).SetBytes(cfg.Group.Order())
	return &Engine{
		group:      cfg.Group,
		hasher:     cfg.Hasher,
		mult:       scalarmult.New(cfg.Group, strategy),
		order:      order,
		maxPrivate: new(big.Int).Sub(order, big.NewInt(2)),
	}
}

// Group returns the engine's group.
func (e *Engine) Group() group.Group {
	return e.group
}

// Hasher returns the engine's hash function.
func (e *Engine) Hasher() Hasher {
	return e.hasher
}

// Strategy reports which scalar multiplication strategy is in use.
func (e *Engine) Strategy() scalarmult.Strategy {
	return e.mult.Strategy()
}

// hashToScalar computes e = H(msg) mod N.
func (e *Engine) hashToScalar(msg []byte) group.Scalar {
	s, _ := e.group.NewScalar().SetBytes(e.hasher.Sum(msg))
	return s
}

// xToScalar reduces the affine x coordinate of p modulo N.
func (e *Engine) xToScalar(p group.Point) group.Scalar {
	s, _ := e.group.NewScalar().SetBytes(p.XBytes())
	return s
}

func (e *Engine) scalarFromBig(v *big.Int) group.Scalar {
	s, _ := e.group.NewScalar().SetBytes(v.Bytes())
	return s
}

// inRange reports whether 1 <= v <= N-1.
func (e *Engine) inRange(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(e.order) < 0
}
