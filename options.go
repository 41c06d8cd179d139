package docstore

import (
	"github.com/hupe1980/docstore/smb"
)

type options struct {
	encoding string
	logger   *Logger
	client   *smb.Client
}

// Option configures storage constructor behavior.
type Option func(*options)

// WithDefaultEncoding sets the store's default text encoding, used by
// GetString/SetString when no per-call override is given. Names are resolved
// against the IANA character set registry; the default is UTF-8.
func WithDefaultEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// WithLogger configures structured logging for storage operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithShareClient sets the remote share client used for Find/GetText calls
// that carry credentials. Without this option a default client is used.
func WithShareClient(client *smb.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		encoding: DefaultEncoding,
		logger:   NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.client == nil {
		o.client = smb.NewClient(smb.WithLogger(o.logger.Logger))
	}
	return o
}

// DefaultEncoding is the text encoding used when neither the store nor the
// call specifies one.
const DefaultEncoding = "utf-8"

// CallOptions are the resolved per-call options of one Find/Get/Set call.
// Storage implementations outside this package resolve them via
// NewCallOptions.
type CallOptions struct {
	// BaseDir scopes Find to a subdirectory.
	BaseDir string
	// Filter drops candidate files for which it returns false.
	Filter func(name string) bool
	// MaxCount stops enumeration after that many yielded items; <= 0
	// means unlimited.
	MaxCount int
	// Progress receives a snapshot after each handled item, yielded and
	// filtered alike.
	Progress ProgressFunc
	// Remote routes Find/GetText to the network share when non-nil.
	Remote *smb.Credentials
	// Encoding overrides the store's default text encoding.
	Encoding string
}

// CallOption configures a single Find/Get/Set call.
type CallOption func(*CallOptions)

// NewCallOptions resolves a set of CallOption functions.
func NewCallOptions(optFns ...CallOption) CallOptions {
	var o CallOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// WithBaseDir scopes Find to a subdirectory of the store root (or of the
// remote directory when combined with WithRemote).
func WithBaseDir(dir string) CallOption {
	return func(o *CallOptions) {
		o.BaseDir = dir
	}
}

// WithFilter drops candidate files for which fn returns false. Filtered
// items are counted in the progress status but never yielded.
func WithFilter(fn func(name string) bool) CallOption {
	return func(o *CallOptions) {
		o.Filter = fn
	}
}

// WithMaxCount stops enumeration after n items have been yielded.
// Values <= 0 mean unlimited.
func WithMaxCount(n int) CallOption {
	return func(o *CallOptions) {
		o.MaxCount = n
	}
}

// WithProgress reports a Progress snapshot after each handled item.
func WithProgress(fn ProgressFunc) CallOption {
	return func(o *CallOptions) {
		o.Progress = fn
	}
}

// WithRemote routes the call to the network share identified by creds
// instead of local storage. Credentials are used for this call only and are
// never persisted.
func WithRemote(creds smb.Credentials) CallOption {
	return func(o *CallOptions) {
		o.Remote = &creds
	}
}

// WithEncoding overrides the store's default text encoding for this call.
func WithEncoding(name string) CallOption {
	return func(o *CallOptions) {
		o.Encoding = name
	}
}
