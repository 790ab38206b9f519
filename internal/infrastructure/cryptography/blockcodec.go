package cryptography

import (
	"fmt"
	"math/big"
	"strings"
)

// DefaultBlockSize is the default block width in bytes.
const DefaultBlockSize = 128

var base256 = big.NewInt(256)

// TextToBlocks converts an ASCII message into fixed-size integer blocks.
// Trailing NUL characters are stripped first, so messages that genuinely end
// in NUL do not round-trip. Within each blockSize-byte window the byte at
// offset i contributes byte*256^i; the final partial window is encoded over
// its actual length, so len(blocks) = ceil(len(message)/blockSize).
func TextToBlocks(message string, blockSize int) ([]*big.Int, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("block size must be positive, got %d", blockSize)
	}

	trimmed := strings.TrimRight(message, "\x00")
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] > 0x7F {
			return nil, fmt.Errorf("message contains non-ASCII byte 0x%02x at offset %d", trimmed[i], i)
		}
	}

	blocks := make([]*big.Int, 0, (len(trimmed)+blockSize-1)/blockSize)
	for start := 0; start < len(trimmed); start += blockSize {
		end := start + blockSize
		if end > len(trimmed) {
			end = len(trimmed)
		}

		value := new(big.Int)
		weight := big.NewInt(1)
		for i := start; i < end; i++ {
			value.Add(value, new(big.Int).Mul(weight, big.NewInt(int64(trimmed[i]))))
			weight = new(big.Int).Mul(weight, base256)
		}
		blocks = append(blocks, value)
	}
	return blocks, nil
}

// BlocksToText is the inverse of TextToBlocks: each block is decomposed into
// blockSize base-256 digits in positional order and the concatenated result
// has its trailing NUL characters stripped.
func BlocksToText(blocks []*big.Int, blockSize int) (string, error) {
	if blockSize < 1 {
		return "", fmt.Errorf("block size must be positive, got %d", blockSize)
	}

	var sb strings.Builder
	sb.Grow(len(blocks) * blockSize)
	remainder := new(big.Int)
	for _, block := range blocks {
		value := new(big.Int).Set(block)
		for i := 0; i < blockSize; i++ {
			value.QuoRem(value, base256, remainder)
			sb.WriteByte(byte(remainder.Int64()))
		}
	}
	return strings.TrimRight(sb.String(), "\x00"), nil
}
