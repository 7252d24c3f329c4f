package config

import (
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	Location       *time.Location
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown flushes buffered log entries.
func (b *Bootstrap) Shutdown() error {
	return b.Logger.Sync()
}
