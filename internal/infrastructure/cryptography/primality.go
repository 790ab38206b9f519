// Package cryptography implements the arithmetic engine of the block
// cryptosystem: primality testing, random prime and coprime search, modular
// inverses, the base-256 block codec and the block-wise modular
// exponentiation cipher.
//
// The randomness comes from math/rand seeded with the wall clock. That is
// deliberate: the system reproduces a textbook construction, including its
// insecure generator, and must not be used to protect real data.
package cryptography

import (
	"math/big"
	"math/rand"
	"sync"
	"time"

	"github.com/derricw/publickey/internal/domain/keys"
)

// DefaultMillerRabinRounds bounds the false-positive probability of the
// primality test at 4^-5.
const DefaultMillerRabinRounds = 5

// smallPrimeBound is the exclusive upper limit of the precomputed prime set.
const smallPrimeBound = 1000

var (
	one = big.NewInt(1)
	two = big.NewInt(2)

	smallPrimesOnce sync.Once
	smallPrimes     []int64
	smallPrimeSet   map[int64]struct{}
)

// smallPrimeTable returns the process-wide immutable set of primes below
// smallPrimeBound, computing it on first use via a sieve of Eratosthenes.
func smallPrimeTable() ([]int64, map[int64]struct{}) {
	smallPrimesOnce.Do(func() {
		composite := make([]bool, smallPrimeBound)
		for i := int64(2); i*i < smallPrimeBound; i++ {
			if composite[i] {
				continue
			}
			for j := i * i; j < smallPrimeBound; j += i {
				composite[j] = true
			}
		}
		smallPrimeSet = make(map[int64]struct{})
		for i := int64(2); i < smallPrimeBound; i++ {
			if !composite[i] {
				smallPrimes = append(smallPrimes, i)
				smallPrimeSet[i] = struct{}{}
			}
		}
	})
	return smallPrimes, smallPrimeSet
}

// primalityTester implements keys.PrimalityTester with trial division
// against the small-prime set followed by Miller-Rabin.
type primalityTester struct {
	rounds int
	rng    *rand.Rand
}

// NewPrimalityTester creates a primality tester running the given number of
// Miller-Rabin rounds; rounds < 1 falls back to DefaultMillerRabinRounds.
func NewPrimalityTester(rounds int) keys.PrimalityTester {
	if rounds < 1 {
		rounds = DefaultMillerRabinRounds
	}
	return &primalityTester{
		rounds: rounds,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// IsPrime reports whether n is (probably) prime.
func (t *primalityTester) IsPrime(n *big.Int) bool {
	if n.Cmp(two) < 0 {
		return false
	}

	primes, set := smallPrimeTable()
	if n.IsInt64() {
		if _, ok := set[n.Int64()]; ok {
			return true
		}
	}

	divisor := new(big.Int)
	remainder := new(big.Int)
	for _, p := range primes {
		divisor.SetInt64(p)
		if remainder.Mod(n, divisor).Sign() == 0 {
			return false
		}
	}

	return t.millerRabin(n)
}

// millerRabin runs the witness loop on n, which at this point is known to be
// odd and larger than every small prime.
func (t *primalityTester) millerRabin(n *big.Int) bool {
	nMinusOne := new(big.Int).Sub(n, one)

	// factor n-1 = 2^r * d with d odd
	d := new(big.Int).Set(nMinusOne)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	x := new(big.Int)
	for round := 0; round < t.rounds; round++ {
		a := t.randomBase(n)
		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		witness := true
		for i := 0; i < r-1; i++ {
			x.Exp(x, two, n)
			if x.Cmp(nMinusOne) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}

// randomBase draws a uniformly random witness base in [2, n-2].
func (t *primalityTester) randomBase(n *big.Int) *big.Int {
	span := new(big.Int).Sub(n, big.NewInt(3))
	base := new(big.Int).Rand(t.rng, span)
	return base.Add(base, two)
}
