package logging_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/andrescamacho/factory-planner/internal/adapters/logging"
	"github.com/andrescamacho/factory-planner/internal/application/common"
	"github.com/andrescamacho/factory-planner/internal/infrastructure/config"
)

func TestZapLogger_MapsLevelsAndFields(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.DebugLevel)
	logger := logging.NewZapLoggerFrom(zap.New(core))

	// Act
	logger.Log(common.LevelDebug, "Candidate solution", map[string]interface{}{"product": "Iron Plate", "machines": 2})
	logger.Log(common.LevelWarn, "Manual time exceeds budget", nil)
	logger.Log(common.LevelError, "Solve failed", map[string]interface{}{"error": errors.New("boom")})
	logger.Log(common.LevelInfo, "Solve complete", nil)

	// Assert
	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "Iron Plate", entries[0].ContextMap()["product"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["machines"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
	assert.Equal(t, zapcore.InfoLevel, entries[3].Level)
}

func TestNewZapLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := logging.NewZapLogger(config.LoggingConfig{Level: "verbose", Format: "json", Output: "stderr"})

	assert.Error(t, err)
}

func TestNewZapLogger_BuildsFromConfig(t *testing.T) {
	logger, err := logging.NewZapLogger(config.LoggingConfig{Level: "warn", Format: "text", Output: "stderr"})

	require.NoError(t, err)
	assert.NotNil(t, logger)
}
