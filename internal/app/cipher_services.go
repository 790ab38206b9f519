package app

import (
	"context"
	"fmt"
	"math/big"

	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/pkg/logger"
)

// cipherService implements keys.CipherService on top of the cipher engine
// and the key pair repository.
type cipherService struct {
	engine keys.CipherEngine
	repo   keys.KeyPairRepository
	logger logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(engine keys.CipherEngine, repo keys.KeyPairRepository, logger logger.Logger) (keys.CipherService, error) {
	if engine == nil {
		return nil, fmt.Errorf("cipher engine cannot be nil")
	}
	if repo == nil {
		return nil, fmt.Errorf("key pair repository cannot be nil")
	}
	return &cipherService{
		engine: engine,
		repo:   repo,
		logger: logger,
	}, nil
}

// EncryptWithStoredKey encrypts message with the public key of a stored key
// pair and renders the ciphertext blocks as decimal strings.
func (s *cipherService) EncryptWithStoredKey(ctx context.Context, keyPairID, message string, blockSize int) ([]string, error) {
	meta, err := s.repo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	publicKey, err := meta.PublicKey()
	if err != nil {
		return nil, err
	}

	blocks, err := s.engine.Encrypt(message, publicKey, blockSize)
	if err != nil {
		return nil, fmt.Errorf("encryption with key pair %s failed: %w", keyPairID, err)
	}

	rendered := make([]string, len(blocks))
	for i, block := range blocks {
		rendered[i] = block.String()
	}
	return rendered, nil
}

// DecryptWithStoredKey decrypts decimal-string ciphertext blocks with the
// private key of a stored key pair.
func (s *cipherService) DecryptWithStoredKey(ctx context.Context, keyPairID string, blocks []string, blockSize int) (string, error) {
	meta, err := s.repo.GetByID(ctx, keyPairID)
	if err != nil {
		return "", err
	}
	privateKey, err := meta.PrivateKey()
	if err != nil {
		return "", err
	}

	parsed := make([]*big.Int, len(blocks))
	for i, block := range blocks {
		value, ok := new(big.Int).SetString(block, 10)
		if !ok {
			return "", fmt.Errorf("invalid ciphertext block %q at index %d", block, i)
		}
		parsed[i] = value
	}

	message, err := s.engine.Decrypt(parsed, privateKey, blockSize)
	if err != nil {
		return "", fmt.Errorf("decryption with key pair %s failed: %w", keyPairID, err)
	}
	return message, nil
}
