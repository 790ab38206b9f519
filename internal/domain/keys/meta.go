package keys

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyPairMeta is the persisted record of a generated key pair. The modulus
// and exponents are stored as decimal strings so arbitrary precision
// survives any column width.
type KeyPairMeta struct {
	ID              string    `validate:"required,uuid"`
	Modulus         string    `validate:"required"`
	PublicExponent  string    `validate:"required"`
	PrivateExponent string    `validate:"required"`
	BitSize         int       `validate:"required,gt=0"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyPairMeta struct
func (m *KeyPairMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// PublicKey reconstructs the public key from the stored decimal strings.
func (m *KeyPairMeta) PublicKey() (Key, error) {
	return m.key(m.PublicExponent)
}

// PrivateKey reconstructs the private key from the stored decimal strings.
func (m *KeyPairMeta) PrivateKey() (Key, error) {
	return m.key(m.PrivateExponent)
}

func (m *KeyPairMeta) key(exponent string) (Key, error) {
	n, ok := new(big.Int).SetString(m.Modulus, 10)
	if !ok {
		return Key{}, fmt.Errorf("invalid stored modulus for key pair %s", m.ID)
	}
	exp, ok := new(big.Int).SetString(exponent, 10)
	if !ok {
		return Key{}, fmt.Errorf("invalid stored exponent for key pair %s", m.ID)
	}
	return Key{N: n, Exp: exp, BitSize: m.BitSize}, nil
}

// KeyPairQuery holds filter and pagination options for listing key pairs.
type KeyPairQuery struct {
	BitSize   int    `validate:"omitempty,gt=0"`
	SortBy    string `validate:"omitempty,oneof=bit_size date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,gt=0"`
	Offset    int    `validate:"omitempty,gte=0"`
}

// Validate for validating KeyPairQuery struct
func (q *KeyPairQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for KeyPairQuery: %w", err)
	}
	return nil
}
