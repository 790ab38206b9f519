package logger

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derricw/publickey/internal/pkg/config"
)

func TestInitLogger_Console(t *testing.T) {
	resetLoggerSingleton()
	t.Cleanup(resetLoggerSingleton)

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}
	require.NoError(t, InitLogger(settings))

	log, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)

	// Second init is a no-op: the first instance stays.
	require.NoError(t, InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	}))
	again, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, log, again)
}

func TestInitLogger_File(t *testing.T) {
	resetLoggerSingleton()
	t.Cleanup(resetLoggerSingleton)

	settings := &config.LoggerSettings{
		LogLevel:   config.LogLevelDebug,
		LogType:    config.LogTypeFile,
		FilePath:   filepath.Join(t.TempDir(), "app.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}
	require.NoError(t, InitLogger(settings))

	log, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestGetLogger_BeforeInit(t *testing.T) {
	resetLoggerSingleton()
	t.Cleanup(resetLoggerSingleton)

	_, err := GetLogger()
	assert.Error(t, err)
}

func TestNewLogger_InvalidSettings(t *testing.T) {
	cases := []struct {
		name     string
		settings config.LoggerSettings
	}{
		{"bad log level", config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}},
		{"bad log type", config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}},
		{"file logger without path", config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newLogger(&tc.settings)
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(config.LogLevelDebug))
	assert.Equal(t, slog.LevelInfo, parseLevel(config.LogLevelInfo))
	assert.Equal(t, slog.LevelWarn, parseLevel(config.LogLevelWarning))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelError))
	assert.Equal(t, slog.LevelInfo, parseLevel("unknown"))
}
