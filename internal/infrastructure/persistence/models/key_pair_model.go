// Package models holds the GORM database models and their mapping to the
// domain types.
package models

import (
	"time"

	"github.com/derricw/publickey/internal/domain/keys"
)

// KeyPairModel is the GORM database model for generated key pairs
// (infrastructure concern). Modulus and exponents are decimal strings so the
// arbitrary-precision values survive any column width.
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Modulus         string    `gorm:"not null;type:text"`
	PublicExponent  string    `gorm:"not null;type:text"`
	PrivateExponent string    `gorm:"not null;type:text"`
	BitSize         int       `gorm:"not null;index;type:integer"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              m.ID,
		Modulus:         m.Modulus,
		PublicExponent:  m.PublicExponent,
		PrivateExponent: m.PrivateExponent,
		BitSize:         m.BitSize,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(k *keys.KeyPairMeta) {
	m.ID = k.ID
	m.Modulus = k.Modulus
	m.PublicExponent = k.PublicExponent
	m.PrivateExponent = k.PrivateExponent
	m.BitSize = k.BitSize
	m.DateTimeCreated = k.DateTimeCreated
}
