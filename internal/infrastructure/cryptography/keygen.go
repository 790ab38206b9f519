package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/pkg/logger"
)

// DefaultExponent is the conventional public exponent.
const DefaultExponent = 65537

// ErrSearchExhausted is returned when a bounded random search gives up
// before finding a candidate.
var ErrSearchExhausted = errors.New("search exhausted: no candidate found within the attempt limit")

// SearchPolicy bounds the random prime/coprime search loops. MaxAttempts of
// zero keeps the original unbounded behavior: the search loops until it
// finds a candidate, which on a range without primes means forever.
type SearchPolicy struct {
	MaxAttempts int
}

// keyGenerator implements keys.KeyGenerator.
type keyGenerator struct {
	primality keys.PrimalityTester
	policy    SearchPolicy
	rng       *rand.Rand
	logger    logger.Logger
}

// NewKeyGenerator creates a key generator using the given primality tester
// and search policy.
func NewKeyGenerator(primality keys.PrimalityTester, policy SearchPolicy, logger logger.Logger) (keys.KeyGenerator, error) {
	if primality == nil {
		return nil, fmt.Errorf("primality tester cannot be nil")
	}
	if policy.MaxAttempts < 0 {
		return nil, fmt.Errorf("max attempts cannot be negative")
	}
	return &keyGenerator{
		primality: primality,
		policy:    policy,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:    logger,
	}, nil
}

// RandomPrime draws uniformly random integers in [low, high) until one is
// classified prime.
func (g *keyGenerator) RandomPrime(low, high *big.Int) (*big.Int, error) {
	return g.search(low, high, g.primality.IsPrime)
}

// RandomCoprime draws uniformly random integers in [low, high) until one is
// coprime with n.
func (g *keyGenerator) RandomCoprime(n, low, high *big.Int) (*big.Int, error) {
	gcd := new(big.Int)
	return g.search(low, high, func(candidate *big.Int) bool {
		return gcd.GCD(nil, nil, candidate, n).Cmp(one) == 0
	})
}

func (g *keyGenerator) search(low, high *big.Int, accept func(*big.Int) bool) (*big.Int, error) {
	span := new(big.Int).Sub(high, low)
	if span.Sign() <= 0 {
		return nil, fmt.Errorf("invalid search range [%s, %s)", low, high)
	}

	for attempts := 0; ; attempts++ {
		if g.policy.MaxAttempts > 0 && attempts >= g.policy.MaxAttempts {
			return nil, fmt.Errorf("%w after %d attempts in [%s, %s)", ErrSearchExhausted, attempts, low, high)
		}
		candidate := new(big.Int).Rand(g.rng, span)
		candidate.Add(candidate, low)
		if accept(candidate) {
			return candidate, nil
		}
	}
}

// ModularInverse computes x with value*x = 1 (mod modulus) via the extended
// Euclidean algorithm, normalized into [0, modulus). modulus and value must
// be coprime; the precondition is checked explicitly because the recurrence
// produces garbage when it is violated.
func (g *keyGenerator) ModularInverse(modulus, value *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 || value.Sign() <= 0 {
		return nil, fmt.Errorf("modular inverse requires positive modulus and value")
	}
	gcd := new(big.Int).GCD(nil, nil, modulus, value)
	if gcd.Cmp(one) != 0 {
		return nil, fmt.Errorf("no modular inverse: gcd(%s, %s) = %s, want 1", modulus, value, gcd)
	}

	x := big.NewInt(0)
	lastX := big.NewInt(1)
	a := new(big.Int).Set(modulus)
	b := new(big.Int).Set(value)
	q := new(big.Int)
	for b.Sign() != 0 {
		remainder := new(big.Int)
		q.QuoRem(a, b, remainder)
		a, b = b, remainder
		x, lastX = new(big.Int).Sub(lastX, new(big.Int).Mul(q, x)), x
	}

	// gcd(modulus, value) = 1 makes this division exact
	result := new(big.Int).Sub(one, new(big.Int).Mul(lastX, modulus))
	result.Quo(result, value)
	if result.Sign() < 0 {
		result.Add(result, modulus)
	}
	return result, nil
}

// GenerateKeyPair derives a key pair from two distinct random primes of the
// given bit size.
func (g *keyGenerator) GenerateKeyPair(bitSize int, useDefaultExponent bool) (*keys.KeyPair, error) {
	_, _, n, _, e, d, err := g.deriveComponents(bitSize, useDefaultExponent)
	if err != nil {
		return nil, err
	}

	if g.logger != nil {
		g.logger.Info("Generated key pair with ", bitSize, "-bit primes")
	}
	return &keys.KeyPair{
		Public:  keys.Key{N: n, Exp: e, BitSize: bitSize},
		Private: keys.Key{N: n, Exp: d, BitSize: bitSize},
	}, nil
}

// deriveComponents exposes the intermediate values of key derivation so the
// number-theoretic invariants can be checked directly.
func (g *keyGenerator) deriveComponents(bitSize int, useDefaultExponent bool) (p, q, n, phi, e, d *big.Int, err error) {
	if bitSize < 2 {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("bit size must be at least 2, got %d", bitSize)
	}

	low := new(big.Int).Lsh(one, uint(bitSize-1))
	high := new(big.Int).Lsh(one, uint(bitSize))

	p, err = g.RandomPrime(low, high)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to find prime p: %w", err)
	}
	for {
		q, err = g.RandomPrime(low, high)
		if err != nil {
			return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to find prime q: %w", err)
		}
		if q.Cmp(p) != 0 {
			break
		}
	}

	n = new(big.Int).Mul(p, q)
	phi = new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	if useDefaultExponent {
		e = big.NewInt(DefaultExponent)
	} else {
		expLow := new(big.Int).Lsh(one, uint(bitSize))
		expHigh := new(big.Int).Lsh(one, uint(bitSize+1))
		e, err = g.RandomCoprime(phi, expLow, expHigh)
		if err != nil {
			return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to find public exponent: %w", err)
		}
	}

	d, err = g.ModularInverse(phi, e)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	return p, q, n, phi, e, d, nil
}
