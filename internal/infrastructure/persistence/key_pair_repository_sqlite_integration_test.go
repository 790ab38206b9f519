//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/infrastructure/persistence/models"
	"github.com/derricw/publickey/internal/pkg/config"
)

func TestKeyPairSqliteRepository_Create(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	meta := CreateTestKeyPairMeta(t, 42)
	require.NoError(t, tc.KeyPairRepo.Create(context.Background(), meta))

	var created models.KeyPairModel
	require.NoError(t, tc.DB.First(&created, "id = ?", meta.ID).Error)
	assert.Equal(t, meta.Modulus, created.Modulus)
	assert.Equal(t, meta.BitSize, created.BitSize)
}

func TestKeyPairSqliteRepository_CreateRejectsInvalid(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	meta := CreateTestKeyPairMeta(t, 42)
	meta.Modulus = ""
	assert.Error(t, tc.KeyPairRepo.Create(context.Background(), meta))
}

func TestKeyPairSqliteRepository_GetByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	meta := CreateTestKeyPairMeta(t, 42)
	require.NoError(t, tc.KeyPairRepo.Create(context.Background(), meta))

	fetched, err := tc.KeyPairRepo.GetByID(context.Background(), meta.ID)
	require.NoError(t, err)
	assert.Equal(t, meta.ID, fetched.ID)
	assert.Equal(t, meta.PrivateExponent, fetched.PrivateExponent)

	key, err := fetched.PublicKey()
	require.NoError(t, err)
	assert.Equal(t, "5551201688147", key.N.String())
}

func TestKeyPairSqliteRepository_GetByIDNotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.KeyPairRepo.GetByID(context.Background(), "3f0ae6ae-0000-0000-0000-000000000000")
	assert.Error(t, err)
}

func TestKeyPairSqliteRepository_List(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, tc.KeyPairRepo.Create(context.Background(), CreateTestKeyPairMeta(t, 42)))
	require.NoError(t, tc.KeyPairRepo.Create(context.Background(), CreateTestKeyPairMeta(t, 64)))

	all, err := tc.KeyPairRepo.List(context.Background(), &keys.KeyPairQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := tc.KeyPairRepo.List(context.Background(), &keys.KeyPairQuery{BitSize: 64})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, 64, filtered[0].BitSize)
}

func TestKeyPairSqliteRepository_DeleteByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	meta := CreateTestKeyPairMeta(t, 42)
	require.NoError(t, tc.KeyPairRepo.Create(context.Background(), meta))
	require.NoError(t, tc.KeyPairRepo.DeleteByID(context.Background(), meta.ID))

	_, err := tc.KeyPairRepo.GetByID(context.Background(), meta.ID)
	assert.Error(t, err)
}
