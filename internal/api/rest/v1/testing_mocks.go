package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/derricw/publickey/internal/domain/keys"
)

// MockKeyGenerationService mocks keys.KeyGenerationService for handler tests.
type MockKeyGenerationService struct {
	mock.Mock
}

func (m *MockKeyGenerationService) Generate(ctx context.Context, bitSize int, useDefaultExponent bool) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, bitSize, useDefaultExponent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

// MockKeyPairMetadataService mocks keys.KeyPairMetadataService.
type MockKeyPairMetadataService struct {
	mock.Mock
}

func (m *MockKeyPairMetadataService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairMetadataService) GetByID(ctx context.Context, id string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairMetadataService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCipherService mocks keys.CipherService.
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) EncryptWithStoredKey(ctx context.Context, keyPairID, message string, blockSize int) ([]string, error) {
	args := m.Called(ctx, keyPairID, message, blockSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCipherService) DecryptWithStoredKey(ctx context.Context, keyPairID string, blocks []string, blockSize int) (string, error) {
	args := m.Called(ctx, keyPairID, blocks, blockSize)
	return args.String(0), args.Error(1)
}
