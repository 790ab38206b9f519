// Package v1 exposes the key generation and block cipher operations over a
// gin REST API.
package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// GenerateKeyPairRequest asks for a fresh key pair. BitSize is the bit
// length of each prime, not of the modulus.
type GenerateKeyPairRequest struct {
	BitSize            int   `json:"bit_size" validate:"required,gte=16,lte=4096"`
	UseDefaultExponent *bool `json:"use_default_exponent"`
}

// Validate for validating GenerateKeyPairRequest struct
func (r *GenerateKeyPairRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for GenerateKeyPairRequest: %w", err)
	}
	return nil
}

// DefaultExponentRequested resolves the optional flag; absent means true.
func (r *GenerateKeyPairRequest) DefaultExponentRequested() bool {
	return r.UseDefaultExponent == nil || *r.UseDefaultExponent
}

// KeyPairMetaResponse is the stored key pair record. The private exponent is
// deliberately not echoed back on list/get responses.
type KeyPairMetaResponse struct {
	ID              string    `json:"id"`
	Modulus         string    `json:"modulus"`
	PublicExponent  string    `json:"public_exponent"`
	BitSize         int       `json:"bit_size"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// EncryptRequest encrypts a message with a stored key pair.
type EncryptRequest struct {
	KeyPairID string `json:"key_pair_id" validate:"required,uuid"`
	Message   string `json:"message" validate:"required"`
	BlockSize int    `json:"block_size" validate:"omitempty,gt=0"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for EncryptRequest: %w", err)
	}
	return nil
}

// EncryptResponse carries the ciphertext blocks as decimal strings.
type EncryptResponse struct {
	MessageLength int      `json:"message_length"`
	BlockSize     int      `json:"block_size"`
	Blocks        []string `json:"blocks"`
}

// DecryptRequest decrypts ciphertext blocks with a stored key pair.
type DecryptRequest struct {
	KeyPairID string   `json:"key_pair_id" validate:"required,uuid"`
	Blocks    []string `json:"blocks" validate:"required,min=1"`
	BlockSize int      `json:"block_size" validate:"omitempty,gt=0"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for DecryptRequest: %w", err)
	}
	return nil
}

// DecryptResponse carries the recovered plaintext.
type DecryptResponse struct {
	Message string `json:"message"`
}
