package docstore

import (
	"context"
	"iter"
	"path/filepath"
	"strings"
)

// FileRecord is a single enumeration result: the file's name (relative to
// the searched directory) and an open-ended metadata mapping.
//
// Metadata is currently always empty; it exists so that future enumeration
// sources can attach attributes without changing the Find contract. Ordering
// of records follows enumeration order and is not guaranteed to be stable
// across calls.
type FileRecord struct {
	Name     string
	Metadata map[string]any
}

// Storage is the uniform surface the ingestion pipeline consumes, regardless
// of where documents physically live.
//
// Implementations must not pool or share remote sessions across calls; every
// Find/GetText that touches a remote backend opens and closes its own
// session. There is no caching, deduplication, or conflict resolution
// anywhere in this layer - each call is a direct pass-through to the backing
// medium.
type Storage interface {
	// Find enumerates candidate document files as a lazy, finite,
	// non-restartable sequence. Per-source listing faults are logged and
	// skipped (best effort); only session establishment failures are
	// yielded as errors.
	Find(ctx context.Context, optFns ...CallOption) iter.Seq2[FileRecord, error]

	// Get reads the raw bytes stored at key. A key that resolves neither
	// under the store root nor as a standalone path returns (nil, nil),
	// not an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// GetString reads the value at key and decodes it using the store's
	// encoding, or a per-call override via WithEncoding. Absent keys
	// return ("", nil).
	GetString(ctx context.Context, key string, optFns ...CallOption) (string, error)

	// GetText reads the document at key and extracts its plain text based
	// on the file extension. With WithRemote the document is fetched from
	// the network share instead of local storage. Unsupported extensions
	// yield ("", nil).
	GetText(ctx context.Context, key string, optFns ...CallOption) (string, error)

	// Set writes raw bytes to key, creating or overwriting it.
	Set(ctx context.Context, key string, value []byte) error

	// SetString encodes value with the store's encoding (or a per-call
	// override) and writes it to key.
	SetString(ctx context.Context, key, value string, optFns ...CallOption) error

	// Has reports whether key exists under the store root.
	Has(ctx context.Context, key string) (bool, error)

	// Delete removes the entry at key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry directly under the store root, recursively
	// for directories. Irreversible.
	Clear(ctx context.Context) error

	// Child returns a Storage scoped to root/name. An empty name returns
	// the receiver unchanged.
	Child(name string) Storage
}

// JoinPath combines a root directory, the parent portion of a key and the
// key's final segment into one OS-independent path.
func JoinPath(root, key string) string {
	key = filepath.FromSlash(key)
	return filepath.Join(root, filepath.Dir(key), filepath.Base(key))
}

// KeyExt returns the lower-cased extension of key without the leading dot.
func KeyExt(key string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(key)), ".")
}
