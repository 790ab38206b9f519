package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/infrastructure/cipherfile"
	"github.com/derricw/publickey/internal/infrastructure/cryptography"
	"github.com/derricw/publickey/internal/pkg/logger"
)

// CipherCommandHandler encapsulates logic for handling encrypt/decrypt
// operations via CLI.
type CipherCommandHandler struct {
	engine keys.CipherEngine
	logger logger.Logger
}

// NewCipherCommandHandler initializes a new CipherCommandHandler with logging
// and a cipher engine.
func NewCipherCommandHandler() (*CipherCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	engine, err := cryptography.NewCipherEngine(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher engine: %w", err)
	}

	return &CipherCommandHandler{
		engine: engine,
		logger: loggerInstance,
	}, nil
}

// EncryptCmd encrypts a text file with a public key tuple file and writes
// the ciphertext file.
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}
	blockSize, err := cmd.Flags().GetInt("block-size")
	if err != nil {
		commandHandler.logger.Error("invalid block-size flag: ", err)
		return
	}

	publicKey, err := readKeyTupleFile(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("unable to read input file: ", err)
		return
	}

	blocks, err := commandHandler.engine.Encrypt(string(message), publicKey, blockSize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := cipherfile.Write(outputFile, len(message), publicKey, blockSize, blocks); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Encrypted ", inputFile, " to ", outputFile)
}

// DecryptCmd decrypts a ciphertext file with a private key tuple file and
// writes the recovered plaintext.
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	privateKey, err := readKeyTupleFile(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	parsed, err := cipherfile.Read(inputFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := commandHandler.engine.Decrypt(parsed.Blocks, privateKey, parsed.BlockSize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(filepath.Clean(outputFile), []byte(message), 0o600); err != nil {
		commandHandler.logger.Error("unable to write output file: ", err)
		return
	}
	commandHandler.logger.Info("Decrypted ", inputFile, " to ", outputFile)
}

// InitCipherCommands registers the encrypt and decrypt commands.
func InitCipherCommands(rootCmd *cobra.Command) error {
	handler, err := NewCipherCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize cipher command handler: %w", err)
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt an ASCII text file into a ciphertext file",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input-file", "", "", "Path to the plaintext input file")
	encryptCmd.Flags().StringP("output-file", "", "", "Path for the ciphertext output file")
	encryptCmd.Flags().StringP("public-key", "", "", "Path to the public key tuple file")
	encryptCmd.Flags().IntP("block-size", "", cryptography.DefaultBlockSize, "Block size in bytes")
	rootCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext file back into plaintext",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input-file", "", "", "Path to the ciphertext input file")
	decryptCmd.Flags().StringP("output-file", "", "", "Path for the plaintext output file")
	decryptCmd.Flags().StringP("private-key", "", "", "Path to the private key tuple file")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
