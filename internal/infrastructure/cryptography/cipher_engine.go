package cryptography

import (
	"fmt"
	"math/big"

	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/pkg/logger"
)

// cipherEngine implements keys.CipherEngine.
type cipherEngine struct {
	logger logger.Logger
}

// NewCipherEngine creates a cipher engine.
func NewCipherEngine(logger logger.Logger) (keys.CipherEngine, error) {
	return &cipherEngine{logger: logger}, nil
}

// Encrypt encodes message into blocks and raises each to the public exponent
// modulo n. When the key declares its bit size it must exceed blockSize*8;
// every encoded block must be strictly smaller than the modulus. Both are
// checked because violating either silently corrupts the round trip.
func (c *cipherEngine) Encrypt(message string, publicKey keys.Key, blockSize int) ([]*big.Int, error) {
	if err := validateKey(publicKey); err != nil {
		return nil, err
	}
	if publicKey.BitSize > 0 && publicKey.BitSize <= blockSize*8 {
		return nil, fmt.Errorf("key bits (%d) must be larger than block bits (%d)", publicKey.BitSize, blockSize*8)
	}

	blocks, err := TextToBlocks(message, blockSize)
	if err != nil {
		return nil, err
	}

	encrypted := make([]*big.Int, len(blocks))
	for i, block := range blocks {
		if block.Cmp(publicKey.N) >= 0 {
			return nil, fmt.Errorf("block %d does not fit the modulus: choose a block size with 256^blockSize < n", i)
		}
		encrypted[i] = new(big.Int).Exp(block, publicKey.Exp, publicKey.N)
	}

	if c.logger != nil {
		c.logger.Info("Encrypted ", len(encrypted), " block(s)")
	}
	return encrypted, nil
}

// Decrypt raises each block to the private exponent modulo n and reassembles
// the text.
func (c *cipherEngine) Decrypt(blocks []*big.Int, privateKey keys.Key, blockSize int) (string, error) {
	if err := validateKey(privateKey); err != nil {
		return "", err
	}

	decrypted := make([]*big.Int, len(blocks))
	for i, block := range blocks {
		decrypted[i] = new(big.Int).Exp(block, privateKey.Exp, privateKey.N)
	}

	message, err := BlocksToText(decrypted, blockSize)
	if err != nil {
		return "", err
	}

	if c.logger != nil {
		c.logger.Info("Decrypted ", len(blocks), " block(s)")
	}
	return message, nil
}

func validateKey(key keys.Key) error {
	if key.N == nil || key.Exp == nil {
		return fmt.Errorf("key modulus and exponent cannot be nil")
	}
	if key.N.Sign() <= 0 || key.Exp.Sign() <= 0 {
		return fmt.Errorf("key modulus and exponent must be positive")
	}
	return nil
}
