package docstore

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"

	"github.com/hupe1980/docstore/extract"
	"github.com/hupe1980/docstore/internal/textenc"
	"github.com/hupe1980/docstore/smb"
)

// FileStorage is a directory-rooted Storage backed by the local filesystem.
// Find and GetText calls that carry remote credentials are routed to the
// share client instead of the local root.
type FileStorage struct {
	root     string
	encoding string
	logger   *Logger
	client   *smb.Client
}

var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a FileStorage rooted at root. The root directory
// is created eagerly, before any read or write is attempted.
func NewFileStorage(root string, optFns ...Option) (*FileStorage, error) {
	o := applyOptions(optFns)
	if root == "" {
		root = "."
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}

	o.logger.Info("creating file storage", "root", root)

	return &FileStorage{
		root:     root,
		encoding: o.encoding,
		logger:   o.logger,
		client:   o.client,
	}, nil
}

// Root returns the store's root directory.
func (s *FileStorage) Root() string {
	return s.root
}

// Find enumerates candidate document files. Without WithRemote it walks the
// local root (scoped by WithBaseDir) for files with a supported extension;
// with WithRemote it enumerates the network share instead. Either way the
// result is a lazy, finite, non-restartable sequence.
func (s *FileStorage) Find(ctx context.Context, optFns ...CallOption) iter.Seq2[FileRecord, error] {
	o := NewCallOptions(optFns...)
	if o.Remote != nil {
		return s.findRemote(ctx, o)
	}
	return s.findLocal(ctx, o)
}

func (s *FileStorage) findRemote(ctx context.Context, o CallOptions) iter.Seq2[FileRecord, error] {
	creds := *o.Remote
	if o.BaseDir != "" {
		creds.Dir = path.Join(creds.Dir, o.BaseDir)
	}

	findOpts := smb.FindOptions{
		Filter:   o.Filter,
		MaxCount: o.MaxCount,
	}
	if o.Progress != nil {
		progress := o.Progress
		findOpts.OnProgress = func(loaded, filtered, total int) {
			progress(NewProgressStatus(loaded, filtered, total))
		}
	}

	return func(yield func(FileRecord, error) bool) {
		for name, err := range s.client.Find(ctx, creds, findOpts) {
			if err != nil {
				yield(FileRecord{}, err)
				return
			}
			if !yield(FileRecord{Name: name, Metadata: map[string]any{}}, nil) {
				return
			}
		}
	}
}

func (s *FileStorage) findLocal(ctx context.Context, o CallOptions) iter.Seq2[FileRecord, error] {
	return func(yield func(FileRecord, error) bool) {
		searchPath := filepath.Join(s.root, o.BaseDir)

		// Candidates are collected eagerly, then yielded one at a time.
		var names []string
		walkErr := filepath.WalkDir(searchPath, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if !extract.Supported(KeyExt(p)) {
				return nil
			}
			rel, err := filepath.Rel(searchPath, p)
			if err != nil {
				return nil
			}
			names = append(names, filepath.ToSlash(rel))
			return nil
		})
		if walkErr != nil {
			// Best effort: enumeration proceeds with what was collected.
			s.logger.ErrorContext(ctx, "local enumeration failed",
				"dir", searchPath,
				"error", walkErr,
			)
		}

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

// Get reads the raw bytes at key. Keys that do not resolve under the root
// fall back to a standalone path lookup: inputs may reference files not yet
// copied into the pipeline's working storage. A key that resolves neither
// way returns (nil, nil).
func (s *FileStorage) Get(ctx context.Context, key string) ([]byte, error) {
	filePath := JoinPath(s.root, key)

	if ok, err := fileExists(filePath); err != nil {
		return nil, err
	} else if ok {
		return os.ReadFile(filePath)
	}

	if ok, err := fileExists(key); err != nil {
		return nil, err
	} else if ok {
		return os.ReadFile(key)
	}

	return nil, nil
}

// GetString reads the value at key and decodes it with the per-call
// encoding override or the store default.
func (s *FileStorage) GetString(ctx context.Context, key string, optFns ...CallOption) (string, error) {
	o := NewCallOptions(optFns...)

	data, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if data == nil {
		return "", nil
	}
	return textenc.Decode(data, s.callEncoding(o))
}

// GetText reads the document at key and extracts its plain text based on
// the file extension. With WithRemote the document is fetched from the
// network share; a remote fetch failure is fatal for the call and never
// retried. Unsupported extensions yield ("", nil).
func (s *FileStorage) GetText(ctx context.Context, key string, optFns ...CallOption) (string, error) {
	o := NewCallOptions(optFns...)
	remote := o.Remote != nil

	var (
		data []byte
		err  error
	)
	if remote {
		data, err = s.client.Fetch(ctx, *o.Remote, key)
	} else {
		data, err = s.Get(ctx, key)
	}
	if err != nil {
		s.logger.LogGetText(ctx, key, remote, 0, err)
		return "", err
	}
	if data == nil {
		return "", nil
	}

	text, err := extract.Text(KeyExt(key), data)
	s.logger.LogGetText(ctx, key, remote, len(text), err)
	return text, err
}

// Set writes value to key under the root, creating missing parent
// directories.
func (s *FileStorage) Set(ctx context.Context, key string, value []byte) error {
	filePath := JoinPath(s.root, key)
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		s.logger.LogSet(ctx, key, len(value), err)
		return fmt.Errorf("create parent of %s: %w", key, err)
	}

	err := os.WriteFile(filePath, value, 0o644)
	s.logger.LogSet(ctx, key, len(value), err)
	return err
}

// SetString encodes value with the per-call encoding override or the store
// default and writes it to key.
func (s *FileStorage) SetString(ctx context.Context, key, value string, optFns ...CallOption) error {
	o := NewCallOptions(optFns...)

	data, err := textenc.Encode(value, s.callEncoding(o))
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}

// Has reports whether key exists under the store root.
func (s *FileStorage) Has(ctx context.Context, key string) (bool, error) {
	return fileExists(JoinPath(s.root, key))
}

// Delete removes the entry at key if present; deleting an absent key is a
// no-op.
func (s *FileStorage) Delete(ctx context.Context, key string) error {
	filePath := JoinPath(s.root, key)
	ok, err := fileExists(filePath)
	if err != nil || !ok {
		return err
	}
	return os.Remove(filePath)
}

// Clear removes every entry directly under the root, recursively for
// directories. Irreversible.
func (s *FileStorage) Clear(ctx context.Context) error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		s.logger.LogClear(ctx, s.root, err)
		return err
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(s.root, entry.Name())); err != nil {
			s.logger.LogClear(ctx, s.root, err)
			return err
		}
	}
	s.logger.LogClear(ctx, s.root, nil)
	return nil
}

// Child returns a FileStorage rooted at root/name, sharing the parent's
// encoding, logger and share client. An empty name returns the receiver.
func (s *FileStorage) Child(name string) Storage {
	if name == "" {
		return s
	}
	child := &FileStorage{
		root:     filepath.Join(s.root, name),
		encoding: s.encoding,
		logger:   s.logger,
		client:   s.client,
	}
	if err := os.MkdirAll(child.root, 0o755); err != nil {
		s.logger.Warn("create child root failed",
			"root", child.root,
			"error", err,
		)
	}
	return child
}

func (s *FileStorage) callEncoding(o CallOptions) string {
	if o.Encoding != "" {
		return o.Encoding
	}
	return s.encoding
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
