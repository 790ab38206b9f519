package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/derricw/publickey/internal/domain/keys"
)

func TestKeyPairModelMapping(t *testing.T) {
	meta := &keys.KeyPairMeta{
		ID:              uuid.New().String(),
		Modulus:         "5551201688147",
		PublicExponent:  "65537",
		PrivateExponent: "109182490673",
		BitSize:         42,
		DateTimeCreated: time.Now().UTC(),
	}

	model := &KeyPairModel{}
	model.FromDomain(meta)
	assert.Equal(t, meta.ID, model.ID)
	assert.Equal(t, meta.Modulus, model.Modulus)

	roundTripped := model.ToDomain()
	assert.Equal(t, meta, roundTripped)
}

func TestKeyPairModelTableName(t *testing.T) {
	assert.Equal(t, "key_pairs", KeyPairModel{}.TableName())
}
