package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dev-connector/internal/config"
	"github.com/MKhiriev/go-dev-connector/internal/logger"
	"github.com/MKhiriev/go-dev-connector/internal/service"
)

func TestNewHandlers(t *testing.T) {
	t.Run("http address configured", func(t *testing.T) {
		h, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":5000", RequestTimeout: time.Second}, logger.Nop())

		require.NoError(t, err)
		require.NotNil(t, h)
		assert.NotNil(t, h.HTTP)
		assert.NotNil(t, h.HTTP.Init())
	})

	t.Run("no address", func(t *testing.T) {
		h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

		require.ErrorIs(t, err, errNoHandlersAreCreated)
		assert.Nil(t, h)
	})
}
