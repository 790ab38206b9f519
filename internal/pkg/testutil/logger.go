// Package testutil provides shared helpers for package tests.
package testutil

import (
	"testing"

	"github.com/derricw/publickey/internal/pkg/config"
	"github.com/derricw/publickey/internal/pkg/logger"
)

// SetupTestLogger returns a quiet console logger for use in tests.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.NewConsoleLogger(config.LogLevelError)
}
