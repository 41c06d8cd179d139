package minio

import (
	"bytes"
	"context"
	"io"
	"iter"
	"path"
	"strings"

	"github.com/hupe1980/docstore"
	"github.com/hupe1980/docstore/extract"
	"github.com/hupe1980/docstore/internal/textenc"
	"github.com/minio/minio-go/v7"
)

// Storage implements docstore.Storage for MinIO and S3-compatible object
// storage. Keys map to object names under an optional root prefix.
//
// WithRemote call options are ignored: the bucket already is the remote
// medium, there is no share to route to.
type Storage struct {
	client   *minio.Client
	bucket   string
	prefix   string
	encoding string
	logger   *docstore.Logger
}

var _ docstore.Storage = (*Storage)(nil)

// Option configures a Storage.
type Option func(*Storage)

// WithPrefix prepends a root prefix to all keys (e.g. "artifacts/").
func WithPrefix(prefix string) Option {
	return func(s *Storage) {
		s.prefix = strings.Trim(prefix, "/")
	}
}

// WithDefaultEncoding sets the default text encoding for
// GetString/SetString.
func WithDefaultEncoding(name string) Option {
	return func(s *Storage) {
		s.encoding = name
	}
}

// WithLogger configures structured logging for storage operations.
func WithLogger(logger *docstore.Logger) Option {
	return func(s *Storage) {
		if logger == nil {
			logger = docstore.NoopLogger()
		}
		s.logger = logger
	}
}

// NewStorage creates a Storage over the given bucket.
func NewStorage(client *minio.Client, bucket string, optFns ...Option) *Storage {
	s := &Storage{
		client:   client,
		bucket:   bucket,
		encoding: docstore.DefaultEncoding,
		logger:   docstore.NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(s)
		}
	}
	return s
}

func (s *Storage) key(name string) string {
	return path.Join(s.prefix, name)
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NotFound"
}

// Find enumerates objects with a supported document extension under the
// store prefix (scoped by WithBaseDir), in listing order.
func (s *Storage) Find(ctx context.Context, optFns ...docstore.CallOption) iter.Seq2[docstore.FileRecord, error] {
	o := docstore.NewCallOptions(optFns...)

	return func(yield func(docstore.FileRecord, error) bool) {
		searchPrefix := path.Join(s.prefix, o.BaseDir)

		var names []string
		for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
			Prefix:    searchPrefix,
			Recursive: true,
		}) {
			if obj.Err != nil {
				// Best effort: enumeration proceeds with what was
				// already collected.
				s.logger.ErrorContext(ctx, "bucket listing failed",
					"bucket", s.bucket,
					"prefix", searchPrefix,
					"error", obj.Err,
				)
				break
			}
			name := strings.TrimPrefix(strings.TrimPrefix(obj.Key, searchPrefix), "/")
			if name == "" || !extract.Supported(docstore.KeyExt(name)) {
				continue
			}
			names = append(names, name)
		}

		total := len(names)
		loaded, filtered := 0, 0
		for _, name := range names {
			if o.Filter != nil && !o.Filter(name) {
				filtered++
				if o.Progress != nil {
					o.Progress(docstore.NewProgressStatus(loaded, filtered, total))
				}
				continue
			}
			if !yield(docstore.FileRecord{Name: name, Metadata: map[string]any{}}, nil) {
				return
			}
			loaded++
			if o.Progress != nil {
				o.Progress(docstore.NewProgressStatus(loaded, filtered, total))
			}
			if o.MaxCount > 0 && loaded >= o.MaxCount {
				break
			}
		}
		s.logger.LogFind(ctx, loaded, filtered, total)
	}
}

// Get reads the object at key, or (nil, nil) when it does not exist.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(key), minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// GetString decodes the object at key with the per-call encoding override
// or the store default.
func (s *Storage) GetString(ctx context.Context, key string, optFns ...docstore.CallOption) (string, error) {
	o := docstore.NewCallOptions(optFns...)

	data, err := s.Get(ctx, key)
	if err != nil || data == nil {
		return "", err
	}
	return textenc.Decode(data, s.callEncoding(o))
}

// GetText extracts plain text from the document object at key. Absent keys
// and unsupported extensions yield ("", nil).
func (s *Storage) GetText(ctx context.Context, key string, optFns ...docstore.CallOption) (string, error) {
	data, err := s.Get(ctx, key)
	if err != nil || data == nil {
		return "", err
	}

	text, err := extract.Text(docstore.KeyExt(key), data)
	s.logger.LogGetText(ctx, key, false, len(text), err)
	return text, err
}

// Set writes value to the object at key, creating or overwriting it.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.key(key),
		bytes.NewReader(value), int64(len(value)), minio.PutObjectOptions{})
	s.logger.LogSet(ctx, key, len(value), err)
	return err
}

// SetString encodes value and writes it to the object at key.
func (s *Storage) SetString(ctx context.Context, key, value string, optFns ...docstore.CallOption) error {
	o := docstore.NewCallOptions(optFns...)

	data, err := textenc.Encode(value, s.callEncoding(o))
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}

// Has reports whether the object at key exists.
func (s *Storage) Has(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, s.key(key), minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes the object at key; deleting an absent key is a no-op.
func (s *Storage) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.key(key), minio.RemoveObjectOptions{})
	if err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

// Clear removes every object under the store prefix. Irreversible.
func (s *Storage) Clear(ctx context.Context) error {
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			s.logger.LogClear(ctx, s.prefix, obj.Err)
			return obj.Err
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			s.logger.LogClear(ctx, s.prefix, err)
			return err
		}
	}
	s.logger.LogClear(ctx, s.prefix, nil)
	return nil
}

// Child returns a Storage scoped to prefix/name within the same bucket.
// An empty name returns the receiver.
func (s *Storage) Child(name string) docstore.Storage {
	if name == "" {
		return s
	}
	return &Storage{
		client:   s.client,
		bucket:   s.bucket,
		prefix:   path.Join(s.prefix, name),
		encoding: s.encoding,
		logger:   s.logger,
	}
}

func (s *Storage) callEncoding(o docstore.CallOptions) string {
	if o.Encoding != "" {
		return o.Encoding
	}
	return s.encoding
}
