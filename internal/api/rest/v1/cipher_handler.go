package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/infrastructure/cryptography"
)

// CipherHandler defines the interface for handling encrypt/decrypt requests
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

// cipherHandler struct holds the cipher service
type cipherHandler struct {
	cipherService keys.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService keys.CipherService) CipherHandler {
	return &cipherHandler{cipherService: cipherService}
}

// Encrypt handles the POST request to encrypt a message with a stored key pair
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid encrypt request: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	blockSize := request.BlockSize
	if blockSize == 0 {
		blockSize = cryptography.DefaultBlockSize
	}

	blocks, err := handler.cipherService.EncryptWithStoredKey(ctx, request.KeyPairID, request.Message, blockSize)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error encrypting message: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{
		MessageLength: len(request.Message),
		BlockSize:     blockSize,
		Blocks:        blocks,
	})
}

// Decrypt handles the POST request to decrypt ciphertext blocks with a stored key pair
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid decrypt request: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	blockSize := request.BlockSize
	if blockSize == 0 {
		blockSize = cryptography.DefaultBlockSize
	}

	message, err := handler.cipherService.DecryptWithStoredKey(ctx, request.KeyPairID, request.Blocks, blockSize)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error decrypting message: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Message: message})
}
