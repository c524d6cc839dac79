package translator

import (
	"context"
	"sync"

	"github.com/goliatone/go-translate/pkg/config"
	"github.com/goliatone/go-translate/pkg/interfaces/logger"
)

var (
	defaultMu      sync.Mutex
	defaultService *Service
)

// Init configures the package-level service. Call it once at startup; later
// calls replace the default.
func Init(cfg config.Config, log logger.Logger) error {
	svc, err := NewFromConfig(cfg, log)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defaultService = svc
	defaultMu.Unlock()
	return nil
}

// Default returns the package-level service, creating a catalog-only one on
// first use when Init was never called.
func Default() *Service {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultService == nil {
		defaultService = New(Dependencies{})
	}
	return defaultService
}

// Translate runs the package-level service against value.
func Translate(ctx context.Context, value any, opts ...RequestOption) any {
	return Default().Translate(ctx, value, opts...)
}
