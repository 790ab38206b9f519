package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/derricw/publickey/internal/domain/keys"
)

// KeyHandler defines the interface for handling key pair operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyGenerationService keys.KeyGenerationService
	metadataService      keys.KeyPairMetadataService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyGenerationService keys.KeyGenerationService, metadataService keys.KeyPairMetadataService) KeyHandler {
	return &keyHandler{
		keyGenerationService: keyGenerationService,
		metadataService:      metadataService,
	}
}

// Generate handles the POST request to generate and store a key pair
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyPairRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key pair request: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	meta, err := handler.keyGenerationService.Generate(ctx, request.BitSize, request.DefaultExponentRequested())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error generating key pair: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toMetaResponse(meta))
}

// List handles the GET request for stored key pair records
func (handler *keyHandler) List(ctx *gin.Context) {
	query := &keys.KeyPairQuery{
		SortBy:    ctx.Query("sort_by"),
		SortOrder: ctx.Query("sort_order"),
	}
	if v := ctx.Query("bit_size"); v != "" {
		bitSize, err := strconv.Atoi(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid bit_size filter: %v", err)})
			return
		}
		query.BitSize = bitSize
	}

	metas, err := handler.metadataService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing key pairs: %v", err)})
		return
	}

	listResponse := []KeyPairMetaResponse{}
	for _, meta := range metas {
		listResponse = append(listResponse, toMetaResponse(meta))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request for a single stored key pair record
func (handler *keyHandler) GetByID(ctx *gin.Context) {
	meta, err := handler.metadataService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("key pair not found: %v", err)})
		return
	}
	ctx.JSON(http.StatusOK, toMetaResponse(meta))
}

// DeleteByID handles the DELETE request for a stored key pair record
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.metadataService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error deleting key pair: %v", err)})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func toMetaResponse(meta *keys.KeyPairMeta) KeyPairMetaResponse {
	return KeyPairMetaResponse{
		ID:              meta.ID,
		Modulus:         meta.Modulus,
		PublicExponent:  meta.PublicExponent,
		BitSize:         meta.BitSize,
		DateTimeCreated: meta.DateTimeCreated,
	}
}
