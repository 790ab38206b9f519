package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/derricw/publickey/internal/domain/keys"
	"github.com/derricw/publickey/internal/infrastructure/cryptography"
	"github.com/derricw/publickey/internal/pkg/logger"
)

// KeyCommandHandler encapsulates logic for handling key pair generation via CLI.
type KeyCommandHandler struct {
	generator keys.KeyGenerator
	logger    logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging and a
// key generator.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	generator, err := cryptography.NewKeyGenerator(
		cryptography.NewPrimalityTester(cryptography.DefaultMillerRabinRounds),
		cryptography.SearchPolicy{},
		loggerInstance,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	return &KeyCommandHandler{
		generator: generator,
		logger:    loggerInstance,
	}, nil
}

// GenerateKeysCmd generates a key pair and persists the two tuple files in a
// selected directory.
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}
	randomExponent, err := cmd.Flags().GetBool("random-exponent")
	if err != nil {
		commandHandler.logger.Error("invalid random-exponent flag: ", err)
		return
	}

	pair, err := commandHandler.generator.GenerateKeyPair(keySize, !randomExponent)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	uniqueID := uuid.New()

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.txt", uniqueID.String()))
	if err := writeKeyTupleFile(publicKeyFilePath, pair.Public); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Saved public key ", publicKeyFilePath)

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.txt", uniqueID.String()))
	if err := writeKeyTupleFile(privateKeyFilePath, pair.Private); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Saved private key ", privateKeyFilePath)
}

func writeKeyTupleFile(path string, key keys.Key) error {
	if err := os.WriteFile(filepath.Clean(path), []byte(key.TupleString()+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

func readKeyTupleFile(path string) (keys.Key, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return keys.Key{}, fmt.Errorf("unable to read key file: %w", err)
	}
	return keys.ParseKeyTuple(string(data))
}

// InitKeyCommands registers the key generation commands.
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize key command handler: %w", err)
	}

	generateKeysCmd := &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a key pair and save both tuple files",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", 512, "Bit size of each prime")
	generateKeysCmd.Flags().StringP("key-dir", "", ".", "Directory to store the key files")
	generateKeysCmd.Flags().BoolP("random-exponent", "", false, "Draw a random public exponent instead of 65537")
	rootCmd.AddCommand(generateKeysCmd)

	return nil
}
