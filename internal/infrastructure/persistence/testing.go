package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/infrastructure/persistence/models"
	"github.com/derricw/publickey/internal/pkg/config"
	"github.com/derricw/publickey/internal/pkg/testutil"
)

// TestContext bundles the pieces integration tests need.
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keys.KeyPairRepository
}

// SetupTestDB opens an in-memory database, migrates the schema and wraps it
// in a repository.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	db, err := NewDBConnection(config.DatabaseSettings{Type: dbType})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.KeyPairModel{}))

	repo, err := NewGormKeyPairRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return &TestContext{DB: db, KeyPairRepo: repo}
}

// CreateTestKeyPairMeta returns a valid record with a fresh ID. The numbers
// are the sample 42-bit key, stored as decimal strings.
func CreateTestKeyPairMeta(t *testing.T, bitSize int) *keys.KeyPairMeta {
	t.Helper()

	return &keys.KeyPairMeta{
		ID:              uuid.New().String(),
		Modulus:         "5551201688147",
		PublicExponent:  "65537",
		PrivateExponent: "109182490673",
		BitSize:         bitSize,
		DateTimeCreated: time.Now().UTC(),
	}
}
