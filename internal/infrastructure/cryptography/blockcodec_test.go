package cryptography

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextToBlocksKnownValues(t *testing.T) {
	t.Run("single byte", func(t *testing.T) {
		blocks, err := TextToBlocks("a", DefaultBlockSize)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, int64(97), blocks[0].Int64())
	})

	t.Run("positional weighting", func(t *testing.T) {
		// 97 + 97*256 + 97*256^2
		blocks, err := TextToBlocks("aaa", DefaultBlockSize)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, int64(6381921), blocks[0].Int64())
	})

	t.Run("empty message", func(t *testing.T) {
		blocks, err := TextToBlocks("", DefaultBlockSize)
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}

func TestTextToBlocksBoundaries(t *testing.T) {
	blockSize := 8

	t.Run("exactly one block", func(t *testing.T) {
		blocks, err := TextToBlocks(strings.Repeat("a", blockSize), blockSize)
		require.NoError(t, err)
		assert.Len(t, blocks, 1)
	})

	t.Run("one byte over", func(t *testing.T) {
		blocks, err := TextToBlocks(strings.Repeat("a", blockSize+1), blockSize)
		require.NoError(t, err)
		require.Len(t, blocks, 2)
		// the overflow block holds a single byte
		assert.Equal(t, int64(97), blocks[1].Int64())
	})
}

func TestTextToBlocksRejectsInvalidInput(t *testing.T) {
	_, err := TextToBlocks("héllo", 16)
	assert.Error(t, err)

	_, err = TextToBlocks("hello", 0)
	assert.Error(t, err)

	_, err = TextToBlocks("hello", -1)
	assert.Error(t, err)
}

func TestBlocksToTextInvalidBlockSize(t *testing.T) {
	_, err := BlocksToText([]*big.Int{big.NewInt(97)}, 0)
	assert.Error(t, err)
}

func TestBlockCodecRoundTrip(t *testing.T) {
	messages := []string{
		"a",
		"abcdefghijklmnopqrstuvwxyz",
		"The quick brown fox jumps over the lazy dog!",
		"with\ninterior\twhitespace and digits 0123456789",
		"interior\x00nul survives",
		strings.Repeat("x", 1000),
	}
	blockSizes := []int{1, 2, 5, 16, DefaultBlockSize}

	for _, message := range messages {
		for _, blockSize := range blockSizes {
			blocks, err := TextToBlocks(message, blockSize)
			require.NoError(t, err)

			decoded, err := BlocksToText(blocks, blockSize)
			require.NoError(t, err)
			assert.Equal(t, message, decoded, "block size %d", blockSize)
		}
	}
}

func TestBlockCodecTrailingNulIsLossy(t *testing.T) {
	blocks, err := TextToBlocks("hello\x00\x00", 16)
	require.NoError(t, err)

	decoded, err := BlocksToText(blocks, 16)
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded)
}
