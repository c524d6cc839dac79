package bunstore

import (
	"context"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	// One named in-memory database per test keeps fixtures isolated.
	store, err := NewSQLite("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return store
}

func TestHashFieldsGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	seed := []struct{ key, locale, template string }{
		{"greeting", "en", "Hello"},
		{"greeting", "fr", "Bonjour"},
		{"farewell", "en", "Bye"},
	}
	for _, s := range seed {
		if err := store.Put(ctx, s.key, s.locale, s.template); err != nil {
			t.Fatalf("Put(%s, %s): %v", s.key, s.locale, err)
		}
	}

	row, err := store.HashFieldsGet(ctx, "greeting", "en", "fr", "de")
	if err != nil {
		t.Fatalf("HashFieldsGet: %v", err)
	}
	if row[0] == nil || *row[0] != "Hello" {
		t.Errorf("en = %v", row[0])
	}
	if row[1] == nil || *row[1] != "Bonjour" {
		t.Errorf("fr = %v", row[1])
	}
	if row[2] != nil {
		t.Errorf("de should be nil, got %v", *row[2])
	}
}

func TestHashFieldsGetMulti(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Put(ctx, "greeting", "en", "Hello"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, "farewell", "en", "Bye"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	rows, err := store.HashFieldsGetMulti(ctx, []string{"greeting", "missing", "farewell"}, "en")
	if err != nil {
		t.Fatalf("HashFieldsGetMulti: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0][0] == nil || *rows[0][0] != "Hello" {
		t.Errorf("greeting = %v", rows[0][0])
	}
	if rows[1][0] != nil {
		t.Errorf("missing key should be nil, got %v", *rows[1][0])
	}
	if rows[2][0] == nil || *rows[2][0] != "Bye" {
		t.Errorf("farewell = %v", rows[2][0])
	}
}

func TestPutUpserts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Put(ctx, "greeting", "en", "Hello"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, "greeting", "en", "Hi"); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	row, err := store.HashFieldsGet(ctx, "greeting", "en")
	if err != nil {
		t.Fatalf("HashFieldsGet: %v", err)
	}
	if row[0] == nil || *row[0] != "Hi" {
		t.Errorf("upsert result = %v", row[0])
	}
}

func TestEmptyRequests(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	rows, err := store.HashFieldsGetMulti(ctx, nil, "en")
	if err != nil || len(rows) != 0 {
		t.Errorf("empty keys = %v, %v", rows, err)
	}
	row, err := store.HashFieldsGet(ctx, "greeting")
	if err != nil || len(row) != 0 {
		t.Errorf("empty fields = %v, %v", row, err)
	}
}
