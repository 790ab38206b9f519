package keys

import (
	"context"
	"math/big"
)

// PrimalityTester classifies integers as prime or composite. The
// classification is probabilistic: composites slip through with probability
// at most 4^-rounds of the configured Miller-Rabin rounds.
type PrimalityTester interface {
	// IsPrime reports whether n is (probably) prime. It never fails;
	// n < 2 is composite by definition.
	IsPrime(n *big.Int) bool
}

// KeyGenerator searches for random primes and coprimes and derives key
// pairs from them.
type KeyGenerator interface {
	// RandomPrime draws uniformly random integers in [low, high) until one
	// is classified prime. With an unbounded search policy it loops forever
	// on ranges without primes.
	RandomPrime(low, high *big.Int) (*big.Int, error)

	// RandomCoprime draws uniformly random integers in [low, high) until one
	// is coprime with n.
	RandomCoprime(n, low, high *big.Int) (*big.Int, error)

	// ModularInverse computes x with value*x = 1 (mod modulus), normalized
	// into [0, modulus). modulus and value must be coprime.
	ModularInverse(modulus, value *big.Int) (*big.Int, error)

	// GenerateKeyPair derives a key pair from two distinct random primes of
	// the given bit size. With useDefaultExponent the public exponent is
	// 65537, otherwise a random coprime of phi is drawn.
	GenerateKeyPair(bitSize int, useDefaultExponent bool) (*KeyPair, error)
}

// CipherEngine performs block-wise modular exponentiation over encoded
// message blocks.
type CipherEngine interface {
	// Encrypt encodes message into base-256 blocks and raises each to the
	// public exponent modulo n.
	Encrypt(message string, publicKey Key, blockSize int) ([]*big.Int, error)

	// Decrypt raises each block to the private exponent modulo n and
	// reassembles the text.
	Decrypt(blocks []*big.Int, privateKey Key, blockSize int) (string, error)
}

// KeyPairRepository persists generated key pair records.
type KeyPairRepository interface {
	Create(ctx context.Context, meta *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, id string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, id string) error
}

// KeyGenerationService generates key pairs and persists their records.
type KeyGenerationService interface {
	Generate(ctx context.Context, bitSize int, useDefaultExponent bool) (*KeyPairMeta, error)
}

// KeyPairMetadataService exposes stored key pair records.
type KeyPairMetadataService interface {
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, id string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, id string) error
}

// CipherService encrypts and decrypts messages with stored key pairs.
// Ciphertext blocks cross the service boundary as decimal strings.
type CipherService interface {
	EncryptWithStoredKey(ctx context.Context, keyPairID, message string, blockSize int) ([]string, error)
	DecryptWithStoredKey(ctx context.Context, keyPairID string, blocks []string, blockSize int) (string, error)
}
