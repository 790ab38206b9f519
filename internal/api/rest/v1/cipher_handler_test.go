package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/derricw/publickey/internal/infrastructure/cryptography"
)

const testKeyPairID = "7d7e33b2-5b15-4cbb-8a23-aa9b2ec0c0ab"

func setupCipherRouter(cipher *MockCipherService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, &MockKeyGenerationService{}, &MockKeyPairMetadataService{}, cipher)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCipherHandlerEncrypt(t *testing.T) {
	mockCipher := &MockCipherService{}
	router := setupCipherRouter(mockCipher)

	mockCipher.On("EncryptWithStoredKey", mock.Anything, testKeyPairID, "hello", 5).
		Return([]string{"123", "456"}, nil)

	w := postJSON(t, router, BasePath+"/encrypt", EncryptRequest{
		KeyPairID: testKeyPairID,
		Message:   "hello",
		BlockSize: 5,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response EncryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 5, response.MessageLength)
	assert.Equal(t, 5, response.BlockSize)
	assert.Equal(t, []string{"123", "456"}, response.Blocks)

	mockCipher.AssertExpectations(t)
}

func TestCipherHandlerEncryptDefaultsBlockSize(t *testing.T) {
	mockCipher := &MockCipherService{}
	router := setupCipherRouter(mockCipher)

	mockCipher.On("EncryptWithStoredKey", mock.Anything, testKeyPairID, "hello", cryptography.DefaultBlockSize).
		Return([]string{"123"}, nil)

	w := postJSON(t, router, BasePath+"/encrypt", EncryptRequest{
		KeyPairID: testKeyPairID,
		Message:   "hello",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	mockCipher.AssertExpectations(t)
}

func TestCipherHandlerEncryptRejectsInvalidRequests(t *testing.T) {
	router := setupCipherRouter(&MockCipherService{})

	tests := []struct {
		name    string
		payload EncryptRequest
	}{
		{"missing key pair id", EncryptRequest{Message: "hello"}},
		{"bad key pair id", EncryptRequest{KeyPairID: "nope", Message: "hello"}},
		{"missing message", EncryptRequest{KeyPairID: testKeyPairID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, BasePath+"/encrypt", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCipherHandlerEncryptServiceError(t *testing.T) {
	mockCipher := &MockCipherService{}
	router := setupCipherRouter(mockCipher)

	mockCipher.On("EncryptWithStoredKey", mock.Anything, testKeyPairID, "hello", 5).
		Return(nil, assert.AnError)

	w := postJSON(t, router, BasePath+"/encrypt", EncryptRequest{
		KeyPairID: testKeyPairID,
		Message:   "hello",
		BlockSize: 5,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCipherHandlerDecrypt(t *testing.T) {
	mockCipher := &MockCipherService{}
	router := setupCipherRouter(mockCipher)

	mockCipher.On("DecryptWithStoredKey", mock.Anything, testKeyPairID, []string{"123", "456"}, 5).
		Return("hello", nil)

	w := postJSON(t, router, BasePath+"/decrypt", DecryptRequest{
		KeyPairID: testKeyPairID,
		Blocks:    []string{"123", "456"},
		BlockSize: 5,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response DecryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "hello", response.Message)

	mockCipher.AssertExpectations(t)
}

func TestCipherHandlerDecryptRejectsEmptyBlocks(t *testing.T) {
	router := setupCipherRouter(&MockCipherService{})

	w := postJSON(t, router, BasePath+"/decrypt", DecryptRequest{
		KeyPairID: testKeyPairID,
		Blocks:    []string{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
