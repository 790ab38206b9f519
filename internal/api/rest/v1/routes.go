package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/derricw/publickey/internal/domain/keys"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyGenerationService keys.KeyGenerationService,
	metadataService keys.KeyPairMetadataService,
	cipherService keys.CipherService) {

	v1 := r.Group(BasePath)

	// Key pair routes
	keyHandler := NewKeyHandler(keyGenerationService, metadataService)
	v1.POST("/keys", keyHandler.Generate)
	v1.GET("/keys", keyHandler.List)
	v1.GET("/keys/:id", keyHandler.GetByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Cipher routes
	cipherHandler := NewCipherHandler(cipherService)
	v1.POST("/encrypt", cipherHandler.Encrypt)
	v1.POST("/decrypt", cipherHandler.Decrypt)
}
