package logger_test

import (
	"bytes"
	"testing"

	"github.com/srgjo27/movie_ticket/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "warn")

	log.Info("hidden")
	log.Warn("shown", "movie", "The Batman")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `movie="The Batman"`)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "chatty")

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
