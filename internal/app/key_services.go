// Package app wires the arithmetic engine and the persistence layer into the
// services consumed by the API surfaces.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/pkg/logger"
)

// keyGenerationService implements keys.KeyGenerationService.
type keyGenerationService struct {
	generator keys.KeyGenerator
	repo      keys.KeyPairRepository
	logger    logger.Logger
}

// NewKeyGenerationService creates a new keyGenerationService instance
func NewKeyGenerationService(generator keys.KeyGenerator, repo keys.KeyPairRepository, logger logger.Logger) (keys.KeyGenerationService, error) {
	if generator == nil {
		return nil, fmt.Errorf("key generator cannot be nil")
	}
	if repo == nil {
		return nil, fmt.Errorf("key pair repository cannot be nil")
	}
	return &keyGenerationService{
		generator: generator,
		repo:      repo,
		logger:    logger,
	}, nil
}

// Generate derives a fresh key pair and persists its record. Key generation
// itself is blocking CPU work; the context only covers the persistence call.
func (s *keyGenerationService) Generate(ctx context.Context, bitSize int, useDefaultExponent bool) (*keys.KeyPairMeta, error) {
	pair, err := s.generator.GenerateKeyPair(bitSize, useDefaultExponent)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	meta := &keys.KeyPairMeta{
		ID:              uuid.New().String(),
		Modulus:         pair.Public.N.String(),
		PublicExponent:  pair.Public.Exp.String(),
		PrivateExponent: pair.Private.Exp.String(),
		BitSize:         bitSize,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("failed to persist key pair: %w", err)
	}

	s.logger.Info("Generated and stored key pair ", meta.ID)
	return meta, nil
}

// keyPairMetadataService implements keys.KeyPairMetadataService.
type keyPairMetadataService struct {
	repo   keys.KeyPairRepository
	logger logger.Logger
}

// NewKeyPairMetadataService creates a new keyPairMetadataService instance
func NewKeyPairMetadataService(repo keys.KeyPairRepository, logger logger.Logger) (keys.KeyPairMetadataService, error) {
	if repo == nil {
		return nil, fmt.Errorf("key pair repository cannot be nil")
	}
	return &keyPairMetadataService{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *keyPairMetadataService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	return s.repo.List(ctx, query)
}

func (s *keyPairMetadataService) GetByID(ctx context.Context, id string) (*keys.KeyPairMeta, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *keyPairMetadataService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
