package loader

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-translate/pkg/engine"
	"github.com/goliatone/go-translate/pkg/interfaces/logger"
)

// fakeStore serves canned hash rows and records traffic.
type fakeStore struct {
	data    map[string]map[string]string // key -> locale -> template
	err     error
	calls   int
	batched int
}

func (f *fakeStore) HashFieldsGet(ctx context.Context, key string, fields ...string) ([]*string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	row := make([]*string, len(fields))
	for i, field := range fields {
		if template, ok := f.data[key][field]; ok {
			value := template
			row[i] = &value
		}
	}
	return row, nil
}

func (f *fakeStore) HashFieldsGetMulti(ctx context.Context, keys []string, fields ...string) ([][]*string, error) {
	f.calls++
	f.batched++
	if f.err != nil {
		return nil, f.err
	}
	rows := make([][]*string, len(keys))
	for i, key := range keys {
		row, _ := f.HashFieldsGet(ctx, key, fields...)
		f.calls-- // inner call is part of the same round trip
		rows[i] = row
	}
	return rows, nil
}

func newTestLoader(t *testing.T, store *fakeStore) *Loader {
	t.Helper()
	l, err := New(Config{Remote: store})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func TestLoadFetchesAndMergesIntoEngine(t *testing.T) {
	store := &fakeStore{data: map[string]map[string]string{
		"greeting": {"en": "Hello", "fr": "Bonjour"},
		"farewell": {"en": "Bye"},
	}}
	l := newTestLoader(t, store)
	eng := engine.New(engine.WithLocale("fr"))

	got := l.Load(context.Background(), eng, []string{"greeting", "farewell", "greeting"})

	want := map[string]map[string]string{
		"en": {"greeting": "Hello", "farewell": "Bye"},
		"fr": {"greeting": "Bonjour"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
	if store.batched != 1 {
		t.Errorf("expected one batched round trip, got %d", store.batched)
	}

	// Templates land in the engine catalog under their source locale.
	if template, ok := eng.Catalog().Lookup("fr", "greeting"); !ok || template != "Bonjour" {
		t.Errorf("catalog fr greeting = %q, %v", template, ok)
	}
	if template, ok := eng.Catalog().Lookup("en", "farewell"); !ok || template != "Bye" {
		t.Errorf("catalog en farewell = %q, %v", template, ok)
	}
}

func TestLoadServesCacheWithoutRemote(t *testing.T) {
	store := &fakeStore{data: map[string]map[string]string{
		"greeting": {"en": "Hello"},
	}}
	l := newTestLoader(t, store)
	eng := engine.New()

	l.Load(context.Background(), eng, []string{"greeting"})
	first := store.calls

	l.Load(context.Background(), engine.New(), []string{"greeting"})
	if store.calls != first {
		t.Errorf("second Load should be cache-only, calls %d -> %d", first, store.calls)
	}
}

func TestLoadPartialCacheHitOnlyFetchesUnknownKeys(t *testing.T) {
	store := &fakeStore{data: map[string]map[string]string{
		"greeting": {"en": "Hello"},
		"farewell": {"en": "Bye"},
	}}
	l := newTestLoader(t, store)

	l.Load(context.Background(), engine.New(), []string{"greeting"})
	l.Load(context.Background(), engine.New(), []string{"greeting", "farewell"})

	if store.batched != 2 {
		t.Fatalf("round trips = %d", store.batched)
	}
	// The cache now holds both keys.
	if l.Cache().Len() != 2 {
		t.Errorf("cache Len = %d", l.Cache().Len())
	}
}

func TestLoadDegradesOnRemoteFailure(t *testing.T) {
	spy := &warnSpy{}
	store := &fakeStore{data: map[string]map[string]string{
		"greeting": {"en": "Hello"},
	}}
	l, err := New(Config{Remote: store, Logger: spy})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Seed the cache, then fail the remote.
	l.Load(context.Background(), engine.New(), []string{"greeting"})
	store.err = errors.New("connection refused")

	got := l.Load(context.Background(), engine.New(), []string{"greeting", "farewell"})
	if got["en"]["greeting"] != "Hello" {
		t.Errorf("cached templates should survive the failure: %v", got)
	}
	if _, ok := got["en"]["farewell"]; ok {
		t.Error("failed keys should be absent, not errored")
	}
	if len(spy.warns) != 1 {
		t.Errorf("expected one warning, got %d", len(spy.warns))
	}
}

func TestLoadAppliesKeyPrefix(t *testing.T) {
	store := &fakeStore{data: map[string]map[string]string{
		"i18n:greeting": {"en": "Hello"},
	}}
	l, err := New(Config{Remote: store, KeyPrefix: "i18n:"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := l.Load(context.Background(), engine.New(), []string{"greeting"})
	if got["en"]["greeting"] != "Hello" {
		t.Errorf("prefixed fetch = %v", got)
	}
	// Cache and results stay keyed by the logical name.
	if l.Cache().Get("greeting") == nil {
		t.Error("cache should use the unprefixed key")
	}
}

func TestLoadWithoutRemote(t *testing.T) {
	l, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := l.Load(context.Background(), engine.New(), []string{"greeting"})
	if len(got) != 0 {
		t.Errorf("loader without remote should return empty, got %v", got)
	}
	if err := l.Disconnect(); err != nil {
		t.Errorf("Disconnect: %v", err)
	}
}

func TestLoadIgnoresEmptyInput(t *testing.T) {
	store := &fakeStore{}
	l := newTestLoader(t, store)
	l.Load(context.Background(), nil, []string{"greeting"})
	l.Load(context.Background(), engine.New(), nil)
	if store.calls != 0 {
		t.Errorf("no remote traffic expected, got %d calls", store.calls)
	}
}

type warnSpy struct {
	warns []string
}

func (s *warnSpy) With(fields ...logger.Field) logger.Logger { return s }
func (s *warnSpy) Debug(msg string, fields ...logger.Field)  {}
func (s *warnSpy) Info(msg string, fields ...logger.Field)   {}
func (s *warnSpy) Warn(msg string, fields ...logger.Field)   { s.warns = append(s.warns, msg) }
func (s *warnSpy) Error(msg string, fields ...logger.Field)  {}
