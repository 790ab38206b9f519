//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/infrastructure/cryptography"
	"github.com/derricw/publickey/internal/infrastructure/persistence"
	"github.com/derricw/publickey/internal/pkg/config"
	"github.com/derricw/publickey/internal/pkg/testutil"
)

type serviceFixture struct {
	keyGen keys.KeyGenerationService
	meta   keys.KeyPairMetadataService
	cipher keys.CipherService
}

func setupServices(t *testing.T) *serviceFixture {
	t.Helper()
	log := testutil.SetupTestLogger(t)
	tc := persistence.SetupTestDB(t, config.SqliteDbType)

	generator, err := cryptography.NewKeyGenerator(
		cryptography.NewPrimalityTester(cryptography.DefaultMillerRabinRounds),
		cryptography.SearchPolicy{},
		log,
	)
	require.NoError(t, err)

	engine, err := cryptography.NewCipherEngine(log)
	require.NoError(t, err)

	keyGen, err := NewKeyGenerationService(generator, tc.KeyPairRepo, log)
	require.NoError(t, err)
	meta, err := NewKeyPairMetadataService(tc.KeyPairRepo, log)
	require.NoError(t, err)
	cipher, err := NewCipherService(engine, tc.KeyPairRepo, log)
	require.NoError(t, err)

	return &serviceFixture{keyGen: keyGen, meta: meta, cipher: cipher}
}

func TestGenerateEncryptDecryptWithStoredKey(t *testing.T) {
	fixture := setupServices(t)
	ctx := context.Background()

	meta, err := fixture.keyGen.Generate(ctx, 64, true)
	require.NoError(t, err)
	assert.Equal(t, 64, meta.BitSize)
	assert.Equal(t, "65537", meta.PublicExponent)

	message := "attack at dawn"
	ciphertext, err := fixture.cipher.EncryptWithStoredKey(ctx, meta.ID, message, 7)
	require.NoError(t, err)
	assert.NotEmpty(t, ciphertext)

	plaintext, err := fixture.cipher.DecryptWithStoredKey(ctx, meta.ID, ciphertext, 7)
	require.NoError(t, err)
	assert.Equal(t, message, plaintext)
}

func TestEncryptWithStoredKeyRejectsOversizedBlocks(t *testing.T) {
	fixture := setupServices(t)
	ctx := context.Background()

	meta, err := fixture.keyGen.Generate(ctx, 64, true)
	require.NoError(t, err)

	// 8*8 bits is not smaller than the declared 64-bit key size
	_, err = fixture.cipher.EncryptWithStoredKey(ctx, meta.ID, "too big", 8)
	assert.Error(t, err)
}

func TestCipherServiceUnknownKeyPair(t *testing.T) {
	fixture := setupServices(t)
	ctx := context.Background()

	_, err := fixture.cipher.EncryptWithStoredKey(ctx, "11111111-2222-3333-4444-555555555555", "hi", 5)
	assert.Error(t, err)

	_, err = fixture.cipher.DecryptWithStoredKey(ctx, "11111111-2222-3333-4444-555555555555", []string{"1"}, 5)
	assert.Error(t, err)
}

func TestDecryptWithStoredKeyRejectsBadBlocks(t *testing.T) {
	fixture := setupServices(t)
	ctx := context.Background()

	meta, err := fixture.keyGen.Generate(ctx, 64, true)
	require.NoError(t, err)

	_, err = fixture.cipher.DecryptWithStoredKey(ctx, meta.ID, []string{"not-a-number"}, 5)
	assert.Error(t, err)
}

func TestMetadataServiceListAndDelete(t *testing.T) {
	fixture := setupServices(t)
	ctx := context.Background()

	first, err := fixture.keyGen.Generate(ctx, 64, true)
	require.NoError(t, err)
	_, err = fixture.keyGen.Generate(ctx, 64, true)
	require.NoError(t, err)

	all, err := fixture.meta.List(ctx, &keys.KeyPairQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, fixture.meta.DeleteByID(ctx, first.ID))
	_, err = fixture.meta.GetByID(ctx, first.ID)
	assert.Error(t, err)
}
