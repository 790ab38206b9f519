// Package keys holds the key pair domain types and the contracts implemented
// by the arithmetic engine, the persistence layer and the application
// services.
package keys

import (
	"fmt"
	"math/big"
	"strings"
)

// Key is one half of a key pair: the shared modulus plus an exponent.
// BitSize records the bit length of the primes the modulus was built from;
// zero means the size was not declared, in which case callers are
// responsible for choosing a block size with 256^blockSize < N.
type Key struct {
	N       *big.Int
	Exp     *big.Int
	BitSize int
}

// KeyPair is a public/private key pair sharing a modulus. It is created once
// by the key generator and treated as immutable afterwards.
type KeyPair struct {
	Public  Key
	Private Key
}

// TupleString renders the key in its boundary format: "(n, e)" when no bit
// size is declared, "(n, e, size)" otherwise.
func (k Key) TupleString() string {
	if k.BitSize > 0 {
		return fmt.Sprintf("(%s, %s, %d)", k.N.String(), k.Exp.String(), k.BitSize)
	}
	return fmt.Sprintf("(%s, %s)", k.N.String(), k.Exp.String())
}

// ParseKeyTuple parses both tuple shapes produced by TupleString.
func ParseKeyTuple(s string) (Key, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "(") || !strings.HasSuffix(trimmed, ")") {
		return Key{}, fmt.Errorf("key tuple must be parenthesized: %q", s)
	}
	parts := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(parts) != 2 && len(parts) != 3 {
		return Key{}, fmt.Errorf("key tuple must have 2 or 3 fields, got %d", len(parts))
	}

	n, ok := new(big.Int).SetString(strings.TrimSpace(parts[0]), 10)
	if !ok {
		return Key{}, fmt.Errorf("invalid modulus in key tuple: %q", parts[0])
	}
	exp, ok := new(big.Int).SetString(strings.TrimSpace(parts[1]), 10)
	if !ok {
		return Key{}, fmt.Errorf("invalid exponent in key tuple: %q", parts[1])
	}

	key := Key{N: n, Exp: exp}
	if len(parts) == 3 {
		size := new(big.Int)
		if _, ok := size.SetString(strings.TrimSpace(parts[2]), 10); !ok || !size.IsInt64() {
			return Key{}, fmt.Errorf("invalid key size in key tuple: %q", parts[2])
		}
		key.BitSize = int(size.Int64())
	}
	return key, nil
}
