// Package cipherfile reads and writes the plain-text ciphertext file layout:
// ordered header lines, a blank separator, then the ciphertext blocks
// newline-joined. The format is human readable and carries no version or
// checksum.
package cipherfile

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/derricw/publickey/internal/domain/keys"
)

// File is the parsed content of a ciphertext file. Key.BitSize is zero when
// the file carries no key_size line.
type File struct {
	MessageLength int
	Key           keys.Key
	BlockSize     int
	Blocks        []*big.Int
}

// Write saves message metadata and ciphertext blocks to path. The key tuple
// is always written as (n, e); the declared bit size, when present, gets its
// own key_size line.
func Write(path string, messageLength int, key keys.Key, blockSize int, blocks []*big.Int) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("message_length: %d\n", messageLength))
	sb.WriteString(fmt.Sprintf("public_key_used: (%s, %s)\n", key.N.String(), key.Exp.String()))
	if key.BitSize > 0 {
		sb.WriteString(fmt.Sprintf("key_size: %d\n", key.BitSize))
	}
	sb.WriteString(fmt.Sprintf("block_size: %d\n", blockSize))
	sb.WriteString("\n")
	sb.WriteString("message: \n")
	rendered := make([]string, len(blocks))
	for i, block := range blocks {
		rendered[i] = block.String()
	}
	sb.WriteString(strings.Join(rendered, "\n"))

	if err := os.WriteFile(filepath.Clean(path), []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write ciphertext file: %w", err)
	}
	return nil
}

// Read parses a ciphertext file written by Write.
func Read(path string) (*File, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("unable to open ciphertext file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	parsed := &File{}
	inMessage := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if inMessage {
			block, ok := new(big.Int).SetString(line, 10)
			if !ok {
				return nil, fmt.Errorf("invalid ciphertext block %q", line)
			}
			parsed.Blocks = append(parsed.Blocks, block)
			continue
		}

		field, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("malformed header line %q", line)
		}
		value = strings.TrimSpace(value)

		switch field {
		case "message_length":
			parsed.MessageLength, err = strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid message_length: %w", err)
			}
		case "public_key_used":
			parsed.Key, err = keys.ParseKeyTuple(value)
			if err != nil {
				return nil, fmt.Errorf("invalid public_key_used: %w", err)
			}
		case "key_size":
			parsed.Key.BitSize, err = strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid key_size: %w", err)
			}
		case "block_size":
			parsed.BlockSize, err = strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid block_size: %w", err)
			}
		case "message":
			inMessage = true
		default:
			return nil, fmt.Errorf("unknown header field %q", field)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ciphertext file: %w", err)
	}

	if parsed.Key.N == nil {
		return nil, fmt.Errorf("ciphertext file is missing the public_key_used header")
	}
	if parsed.BlockSize < 1 {
		return nil, fmt.Errorf("ciphertext file is missing a valid block_size header")
	}
	return parsed, nil
}
