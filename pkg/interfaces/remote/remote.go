package remote

import "context"

// Store is the remote template source capability consumed by the loader.
// The backing schema is a per-key hash whose fields are locale tags and whose
// values are template strings. Connection lifecycle belongs to the
// implementation; the loader only reads.
type Store interface {
	// HashFieldsGet returns the values for the requested fields of one key.
	// The result is ordered to match fields; absent fields yield nil entries.
	HashFieldsGet(ctx context.Context, key string, fields ...string) ([]*string, error)
}

// BatchStore is an optional upgrade implemented by stores that can resolve
// several keys in a single round trip. Results are zipped with (keys, fields):
// result[i][j] is the value of fields[j] for keys[i], nil when absent.
type BatchStore interface {
	Store
	HashFieldsGetMulti(ctx context.Context, keys []string, fields ...string) ([][]*string, error)
}

// Nop is an empty store: every field resolves to nil.
type Nop struct{}

var _ Store = (*Nop)(nil)

func (n *Nop) HashFieldsGet(ctx context.Context, key string, fields ...string) ([]*string, error) {
	return make([]*string, len(fields)), nil
}
