package server_test

import (
	"context"
	"testing"

	"github.com/deppfellow/mock-api/internal/config"
	"github.com/deppfellow/mock-api/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutTelemetry(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 8080
	log := zerolog.Nop()

	s, err := server.New(cfg, &log, nil)
	require.NoError(t, err)

	assert.NotNil(t, s.LoggerService)
	assert.Nil(t, s.LoggerService.GetApplication())
	assert.Nil(t, s.TracerProvider)
	assert.NotNil(t, s.Metrics)

	families, err := s.Metrics.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNew_RequiresConfig(t *testing.T) {
	log := zerolog.Nop()

	_, err := server.New(nil, &log, nil)
	assert.Error(t, err)
}

func TestStart_WithoutSetup(t *testing.T) {
	cfg := config.Default()
	log := zerolog.Nop()
	s, err := server.New(cfg, &log, nil)
	require.NoError(t, err)

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
	assert.NoError(t, s.Shutdown(context.Background()))
}
