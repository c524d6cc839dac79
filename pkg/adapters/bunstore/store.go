// Package bunstore backs the remote.Store contract with a relational table,
// useful when translations live alongside application data instead of a
// dedicated key/value service.
package bunstore

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Translation is one template variant: a key rendered for a locale.
type Translation struct {
	bun.BaseModel `bun:"table:translations,alias:tr"`

	ID       uuid.UUID `bun:"id,pk,type:uuid"`
	Key      string    `bun:"key,notnull,unique:key_locale"`
	Locale   string    `bun:"locale,notnull,unique:key_locale"`
	Template string    `bun:"template,notnull"`
}

// Store serves hash-style lookups out of the translations table. Translation
// keys map to hash keys and locales to hash fields, mirroring the key/value
// layout the loader expects.
type Store struct {
	db *bun.DB
}

// New wraps an existing bun handle.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// NewSQLite opens an in-process SQLite database, handy for tests and
// single-binary deployments.
func NewSQLite(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	sqldb, err := sql.Open(sqliteshim.DriverName(), dsn)
	if err != nil {
		return nil, err
	}
	return New(bun.NewDB(sqldb, sqlitedialect.New())), nil
}

// Init creates the translations table when missing.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*Translation)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Put upserts one template variant.
func (s *Store) Put(ctx context.Context, key, locale, template string) error {
	record := Translation{
		ID:       uuid.New(),
		Key:      strings.TrimSpace(key),
		Locale:   strings.TrimSpace(locale),
		Template: template,
	}
	_, err := s.db.NewInsert().
		Model(&record).
		On("CONFLICT (key, locale) DO UPDATE").
		Set("template = EXCLUDED.template").
		Exec(ctx)
	return err
}

// HashFieldsGet returns the template per locale for one key, nil for misses.
func (s *Store) HashFieldsGet(ctx context.Context, key string, fields ...string) ([]*string, error) {
	rows, err := s.HashFieldsGetMulti(ctx, []string{key}, fields...)
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

// HashFieldsGetMulti resolves many keys with a single query.
func (s *Store) HashFieldsGetMulti(ctx context.Context, keys []string, fields ...string) ([][]*string, error) {
	rows := make([][]*string, len(keys))
	for i := range rows {
		rows[i] = make([]*string, len(fields))
	}
	if len(keys) == 0 || len(fields) == 0 {
		return rows, nil
	}

	var records []Translation
	err := s.db.NewSelect().
		Model(&records).
		Where("key IN (?)", bun.In(keys)).
		Where("locale IN (?)", bun.In(fields)).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	keyIndex := indexOf(keys)
	fieldIndex := indexOf(fields)
	for _, record := range records {
		ki, ok := keyIndex[record.Key]
		if !ok {
			continue
		}
		fi, ok := fieldIndex[record.Locale]
		if !ok {
			continue
		}
		template := record.Template
		rows[ki][fi] = &template
	}
	return rows, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func indexOf(values []string) map[string]int {
	index := make(map[string]int, len(values))
	for i, v := range values {
		index[v] = i
	}
	return index
}
