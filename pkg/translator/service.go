// Package translator is the top-level facade: it walks arbitrary payloads,
// batches the template fetch for every embedded translation node, and
// resolves the tree against a per-request engine clone.
package translator

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-translate/pkg/config"
	"github.com/goliatone/go-translate/pkg/engine"
	"github.com/goliatone/go-translate/pkg/interfaces/logger"
	"github.com/goliatone/go-translate/pkg/loader"
	"github.com/goliatone/go-translate/pkg/node"
	"github.com/goliatone/go-translate/pkg/walker"
)

// Service translates structured payloads in place of their embedded nodes.
type Service struct {
	engine *engine.Engine
	loader *loader.Loader
	logger logger.Logger
}

// Dependencies wires the engine, optional remote loader, and logger.
type Dependencies struct {
	Engine *engine.Engine
	Loader *loader.Loader
	Logger logger.Logger
}

// New instantiates the translator facade using the provided dependencies.
func New(deps Dependencies) *Service {
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	if deps.Engine == nil {
		deps.Engine = engine.New(engine.WithLogger(deps.Logger))
	}
	return &Service{
		engine: deps.Engine,
		loader: deps.Loader,
		logger: deps.Logger,
	}
}

// NewFromConfig builds a fully wired service: engine seeded with inline
// translations and, when a loader URL is configured, a remote loader.
func NewFromConfig(cfg config.Config, log logger.Logger) (*Service, error) {
	cfg, err := config.Load(cfg)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = &logger.Nop{}
	}

	opts := []engine.Option{
		engine.WithLocale(cfg.Locale),
		engine.WithDefaultLocale(cfg.DefaultLocale),
		engine.WithLogger(log),
	}
	if cfg.Timezone != "" {
		zone, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithTimezone(zone))
	}
	if len(cfg.Translations) > 0 {
		opts = append(opts, engine.WithTranslations(cfg.Translations))
	}
	eng := engine.New(opts...)

	var ldr *loader.Loader
	if cfg.Loader.URL != "" {
		ldr, err = loader.New(loader.Config{
			URL:             cfg.Loader.URL,
			KeyPrefix:       cfg.Loader.KeyPrefix,
			CacheMaxEntries: cfg.Loader.Cache.MaxEntries,
			CacheMaxAge:     cfg.Loader.Cache.MaxAge,
			Logger:          log,
		})
		if err != nil {
			return nil, err
		}
	}

	return New(Dependencies{Engine: eng, Loader: ldr, Logger: log}), nil
}

// RequestOption adjusts a single Translate call without mutating the service.
type RequestOption func(*requestSettings)

type requestSettings struct {
	locale   string
	timezone *time.Location
	badZone  string
}

// WithLocale overrides the target locale for one request.
func WithLocale(locale string) RequestOption {
	return func(rs *requestSettings) {
		rs.locale = strings.TrimSpace(locale)
	}
}

// WithTimezone sets the request timezone from an IANA name. Invalid names are
// logged and ignored so a bad client header never fails the request.
func WithTimezone(name string) RequestOption {
	return func(rs *requestSettings) {
		zone, err := time.LoadLocation(name)
		if err != nil {
			rs.badZone = name
			return
		}
		rs.timezone = zone
	}
}

// Translate walks value, loads every referenced template in one batched
// round trip, and returns a deep copy with translation nodes replaced by
// rendered strings. The input is never mutated.
func (s *Service) Translate(ctx context.Context, value any, opts ...RequestOption) any {
	settings := requestSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	log := s.logger.With(logger.Field{Key: "request_id", Value: uuid.NewString()})
	if settings.badZone != "" {
		log.Warn("ignoring invalid timezone", logger.Field{Key: "timezone", Value: settings.badZone})
	}

	eng := s.engine.Clone()
	eng.SetLogger(log)
	if settings.locale != "" {
		eng.SetLocale(settings.locale)
	}
	if settings.timezone != nil {
		eng.SetTimezone(settings.timezone)
	}

	result := walker.Walk(value)
	keys := result.Keys()
	if len(keys) == 0 {
		return result.Output()
	}

	if s.loader != nil {
		s.loader.Load(ctx, eng, keys)
	}

	log.Debug("translating payload",
		logger.Field{Key: "locale", Value: eng.Locale()},
		logger.Field{Key: "nodes", Value: len(keys)},
	)
	return result.ResolveConcurrent(eng.Translate)
}

// AddTranslations registers inline templates on the shared engine.
func (s *Service) AddTranslations(locale string, templates map[string]any) {
	s.engine.AddTranslations(locale, templates)
}

// Engine exposes the shared engine for direct single-template use.
func (s *Service) Engine() *engine.Engine { return s.engine }

// Disconnect releases the loader's remote connection, if any.
func (s *Service) Disconnect() error {
	if s.loader == nil {
		return nil
	}
	return s.loader.Disconnect()
}

// BuildTranslateNode assembles a wire-form translation node for embedding in
// outbound payloads.
func BuildTranslateNode(key string, placeholders map[string]any, opts ...node.BuildOption) map[string]any {
	return node.Build(key, placeholders, opts...)
}
