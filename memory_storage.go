package docstore

import (
	"context"
	"iter"
	"sort"
	"sync"

	"github.com/hupe1980/docstore/extract"
	"github.com/hupe1980/docstore/internal/textenc"
)

// MemoryStorage is a map-backed Storage for tests and ephemeral pipelines.
// It has no filesystem dependency and is safe for concurrent use.
type MemoryStorage struct {
	mu       sync.RWMutex
	entries  map[string][]byte
	encoding string
	logger   *Logger
}

var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage(optFns ...Option) *MemoryStorage {
	o := applyOptions(optFns)
	return &MemoryStorage{
		entries:  make(map[string][]byte),
		encoding: o.encoding,
		logger:   o.logger,
	}
}

// Find enumerates stored keys with a supported document extension, in
// sorted key order.
func (s *MemoryStorage) Find(ctx context.Context, optFns ...CallOption) iter.Seq2[FileRecord, error] {
	o := NewCallOptions(optFns...)

	return func(yield func(FileRecord, error) bool) {
		s.mu.RLock()
		var names []string
		for key := range s.entries {
			if extract.Supported(KeyExt(key)) {
				names = append(names, key)
			}
		}
		s.mu.RUnlock()
		sort.Strings(names)

		total := len(names)
		loaded, filtered := 0, 0
		for _, name := range names {
			if o.Filter != nil && !o.Filter(name) {
				filtered++
				if o.Progress != nil {
					o.Progress(NewProgressStatus(loaded, filtered, total))
				}
				continue
			}
			if !yield(FileRecord{Name: name, Metadata: map[string]any{}}, nil) {
				return
			}
			loaded++
			if o.Progress != nil {
				o.Progress(NewProgressStatus(loaded, filtered, total))
			}
			if o.MaxCount > 0 && loaded >= o.MaxCount {
				break
			}
		}
		s.logger.LogFind(ctx, loaded, filtered, total)
	}
}

// Get returns a copy of the bytes stored at key, or (nil, nil) when absent.
func (s *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// GetString decodes the value at key with the per-call encoding override or
// the store default.
func (s *MemoryStorage) GetString(ctx context.Context, key string, optFns ...CallOption) (string, error) {
	o := NewCallOptions(optFns...)

	data, err := s.Get(ctx, key)
	if err != nil || data == nil {
		return "", err
	}
	return textenc.Decode(data, s.callEncoding(o))
}

// GetText extracts plain text from the document stored at key. Absent keys
// and unsupported extensions yield ("", nil).
func (s *MemoryStorage) GetText(ctx context.Context, key string, optFns ...CallOption) (string, error) {
	data, err := s.Get(ctx, key)
	if err != nil || data == nil {
		return "", err
	}

	text, err := extract.Text(KeyExt(key), data)
	s.logger.LogGetText(ctx, key, false, len(text), err)
	return text, err
}

// Set stores a copy of value at key.
func (s *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	s.entries[key] = stored
	s.mu.Unlock()

	s.logger.LogSet(ctx, key, len(value), nil)
	return nil
}

// SetString encodes value and stores it at key.
func (s *MemoryStorage) SetString(ctx context.Context, key, value string, optFns ...CallOption) error {
	o := NewCallOptions(optFns...)

	data, err := textenc.Encode(value, s.callEncoding(o))
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}

// Has reports whether key is stored.
func (s *MemoryStorage) Has(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[key]
	return ok, nil
}

// Delete removes key; deleting an absent key is a no-op.
func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Clear removes every stored entry.
func (s *MemoryStorage) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.entries = make(map[string][]byte)
	s.mu.Unlock()

	s.logger.LogClear(ctx, "memory", nil)
	return nil
}

// Child returns the receiver: in-memory pipelines share one flat keyspace.
func (s *MemoryStorage) Child(name string) Storage {
	return s
}

func (s *MemoryStorage) callEncoding(o CallOptions) string {
	if o.Encoding != "" {
		return o.Encoding
	}
	return s.encoding
}
