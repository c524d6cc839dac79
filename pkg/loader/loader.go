// Package loader bridges the engine's catalog to a remote template store.
// Reads go cache-first; unknown keys fetch in one batched remote round trip,
// write through to the cache, and merge into the engine's catalog. Remote
// failures degrade to the cache-only result with a logged warning — a missing
// loader never fails a translation.
package loader

import (
	"context"
	"time"

	"github.com/goliatone/go-translate/pkg/adapters/redisstore"
	"github.com/goliatone/go-translate/pkg/cache"
	"github.com/goliatone/go-translate/pkg/engine"
	"github.com/goliatone/go-translate/pkg/interfaces/logger"
	"github.com/goliatone/go-translate/pkg/interfaces/remote"
)

// Config wires a loader. URL builds a redis-backed remote; an explicit Remote
// wins over URL; with neither, the loader serves cache hits only.
type Config struct {
	URL       string
	Remote    remote.Store
	KeyPrefix string

	CacheMaxEntries int
	CacheMaxAge     time.Duration

	Logger logger.Logger
}

// Loader resolves translation keys against the cache and the remote store.
type Loader struct {
	remote remote.Store
	cache  *cache.Cache
	logger logger.Logger
	prefix string
}

// New validates cfg and builds the loader.
func New(cfg Config) (*Loader, error) {
	l := &Loader{
		remote: cfg.Remote,
		cache:  cache.New(cfg.CacheMaxEntries, cfg.CacheMaxAge),
		logger: cfg.Logger,
		prefix: cfg.KeyPrefix,
	}
	if l.logger == nil {
		l.logger = &logger.Nop{}
	}
	if l.remote == nil && cfg.URL != "" {
		store, err := redisstore.New(redisstore.Config{URL: cfg.URL})
		if err != nil {
			return nil, err
		}
		l.remote = store
	}
	return l, nil
}

// Cache exposes the loader's cache, mainly for tests and metrics.
func (l *Loader) Cache() *cache.Cache { return l.cache }

// Disconnect closes the remote store when it owns a connection.
func (l *Loader) Disconnect() error {
	if closer, ok := l.remote.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// Load resolves keys for the engine's locale chain and merges everything
// found into the engine's catalog. The returned mapping is
// locale → key → template. Load never returns an error: remote failures log
// a warning and the cache-derived result stands.
func (l *Loader) Load(ctx context.Context, eng *engine.Engine, keys []string) map[string]map[string]string {
	result := make(map[string]map[string]string)
	if eng == nil || len(keys) == 0 {
		return result
	}

	locales := eng.Locales()
	unknown := make([]string, 0, len(keys))
	for _, key := range dedupe(keys) {
		hit := l.cache.Get(key, locales...)
		if hit == nil {
			unknown = append(unknown, key)
			continue
		}
		for locale, template := range hit {
			merge(result, locale, key, template)
		}
	}

	if l.remote != nil && len(unknown) > 0 {
		rows, err := l.fetch(ctx, unknown, locales)
		if err != nil {
			l.logger.Warn("loader: remote fetch failed",
				logger.Field{Key: "keys", Value: len(unknown)},
				logger.Err(err),
			)
		} else {
			l.absorb(result, unknown, locales, rows)
		}
	}

	for locale, templates := range result {
		flat := make(map[string]any, len(templates))
		for key, template := range templates {
			flat[key] = template
		}
		eng.AddTranslations(locale, flat)
	}
	return result
}

// fetch issues the batched remote read: one round trip when the store
// supports multi-key reads, otherwise one call per key.
func (l *Loader) fetch(ctx context.Context, keys, locales []string) ([][]*string, error) {
	remoteKeys := keys
	if l.prefix != "" {
		remoteKeys = make([]string, len(keys))
		for i, key := range keys {
			remoteKeys[i] = l.prefix + key
		}
	}

	if batch, ok := l.remote.(remote.BatchStore); ok {
		return batch.HashFieldsGetMulti(ctx, remoteKeys, locales...)
	}

	rows := make([][]*string, len(remoteKeys))
	for i, key := range remoteKeys {
		row, err := l.remote.HashFieldsGet(ctx, key, locales...)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return rows, nil
}

// absorb zips fetched rows against (keys, locales), writes found templates
// through to the cache, and folds them into the result mapping.
func (l *Loader) absorb(result map[string]map[string]string, keys, locales []string, rows [][]*string) {
	for i, key := range keys {
		if i >= len(rows) {
			break
		}
		found := make(map[string]string)
		for j, locale := range locales {
			if j >= len(rows[i]) {
				break
			}
			value := rows[i][j]
			if value == nil || *value == "" {
				continue
			}
			found[locale] = *value
			merge(result, locale, key, *value)
		}
		if len(found) > 0 {
			l.cache.Set(key, found)
			l.logger.Debug("loader: templates added",
				logger.Field{Key: "key", Value: key},
				logger.Field{Key: "locales", Value: len(found)},
			)
		}
	}
}

func merge(result map[string]map[string]string, locale, key, template string) {
	templates, ok := result[locale]
	if !ok {
		templates = make(map[string]string)
		result[locale] = templates
	}
	templates[key] = template
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
