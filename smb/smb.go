package smb

import (
	"context"
	"iter"
	"log/slog"
	"net"
	"os"
	"path"
	"strconv"

	"github.com/hirochachacha/go-smb2"
)

const (
	// DefaultServer is the well-known share host used when credentials do
	// not name a file server.
	DefaultServer = "10.2.230.40"

	// DefaultShare is the share name documents are retrieved from.
	DefaultShare = "anthra"

	// Port is the direct-TCP SMB port.
	Port = 445
)

// Patterns are the glob patterns enumerated by Find, one listing per
// pattern. The patterns are disjoint by extension, so overlapping results do
// not occur in practice; duplicates across patterns are not actively
// removed.
var Patterns = []string{
	"*.docx", "*.pdf", "*.xlsx", "*.xlsm", "*.pptx",
	"*.txt", "*.html", "*.md", "*.csv",
}

// Credentials identify one remote share call. They are supplied per call
// and never persisted or cached by the client.
type Credentials struct {
	User     string
	Password string
	// Share is the share name; DefaultShare when empty.
	Share string
	// Server is the file server address; DefaultServer when empty.
	Server string
	// Dir is the directory within the share to enumerate or fetch from.
	Dir string
}

func (c Credentials) server() string {
	if c.Server == "" {
		return DefaultServer
	}
	return c.Server
}

func (c Credentials) share() string {
	if c.Share == "" {
		return DefaultShare
	}
	return c.Share
}

func (c Credentials) dir() string {
	if c.Dir == "" {
		return "."
	}
	return c.Dir
}

// Session is one authenticated connection to a share. A session serves
// exactly one enumeration or one retrieval and is closed before the call
// returns.
type Session interface {
	// ReadDir lists the entries of a directory within the share.
	ReadDir(dirname string) ([]os.FileInfo, error)
	// ReadFile reads a named file's full contents into memory.
	ReadFile(name string) ([]byte, error)
	// Close releases the session on both success and error paths.
	Close() error
}

// DialFunc establishes a Session. It exists as a seam for tests; the
// default dials an NTLMv2 session over direct TCP.
type DialFunc func(ctx context.Context, creds Credentials) (Session, error)

// Client enumerates and retrieves files from a network share. Clients hold
// no connection state; every call opens and closes its own session, so a
// single Client is safe for concurrent use.
type Client struct {
	dial   DialFunc
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for contained enumeration faults.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	}
}

// WithDialFunc replaces session establishment, e.g. with a fake for tests.
func WithDialFunc(dial DialFunc) Option {
	return func(c *Client) {
		if dial != nil {
			c.dial = dial
		}
	}
}

// NewClient creates a share client.
func NewClient(optFns ...Option) *Client {
	c := &Client{
		dial:   dialSession,
		logger: slog.Default(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(c)
		}
	}
	return c
}

// FindOptions configure one enumeration.
type FindOptions struct {
	// Filter drops names for which it returns false; dropped names are
	// counted as filtered, not yielded.
	Filter func(name string) bool
	// MaxCount stops enumeration after that many yielded names; <= 0
	// means unlimited.
	MaxCount int
	// OnProgress is invoked after each handled name, yielded and
	// filtered alike, with the running counts and the discovered total.
	OnProgress func(loaded, filtered, total int)
}

// Find enumerates files in the credentials' directory, one listing per
// pattern in Patterns, and returns them as a lazy, finite, non-restartable
// sequence.
//
// Listing faults for a single pattern are logged and enumeration continues
// with the remaining patterns; only session establishment failures surface,
// as a single *ErrConnect element. The session is closed once the sequence
// ends, including when the consumer breaks early.
func (c *Client) Find(ctx context.Context, creds Credentials, opts FindOptions) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		sess, err := c.dial(ctx, creds)
		if err != nil {
			yield("", &ErrConnect{Server: creds.server(), cause: err})
			return
		}
		defer sess.Close()

		var names []string
		for _, pattern := range Patterns {
			infos, err := sess.ReadDir(creds.dir())
			if err != nil {
				c.logger.ErrorContext(ctx, "share listing failed",
					"dir", creds.dir(),
					"pattern", pattern,
					"error", err,
				)
				continue
			}
			for _, info := range infos {
				if info.IsDir() {
					continue
				}
				if ok, _ := path.Match(pattern, info.Name()); ok {
					names = append(names, info.Name())
				}
			}
		}

		total := len(names)
		loaded, filtered := 0, 0
		for _, name := range names {
			if opts.Filter != nil && !opts.Filter(name) {
				filtered++
				if opts.OnProgress != nil {
					opts.OnProgress(loaded, filtered, total)
				}
				continue
			}
			if !yield(name, nil) {
				return
			}
			loaded++
			if opts.OnProgress != nil {
				opts.OnProgress(loaded, filtered, total)
			}
			if opts.MaxCount > 0 && loaded >= opts.MaxCount {
				return
			}
		}
	}
}

// Fetch retrieves one named file from the credentials' directory into
// memory. Retrieval failures are fatal for the call; there is no retry and
// no partial result.
func (c *Client) Fetch(ctx context.Context, creds Credentials, key string) ([]byte, error) {
	sess, err := c.dial(ctx, creds)
	if err != nil {
		return nil, &ErrConnect{Server: creds.server(), cause: err}
	}
	defer sess.Close()

	target := path.Join(creds.Dir, key)
	data, err := sess.ReadFile(target)
	if err != nil {
		return nil, &ErrRetrieve{Path: target, cause: err}
	}
	return data, nil
}

type smbSession struct {
	conn  net.Conn
	sess  *smb2.Session
	share *smb2.Share
}

func (s *smbSession) ReadDir(dirname string) ([]os.FileInfo, error) {
	return s.share.ReadDir(dirname)
}

func (s *smbSession) ReadFile(name string) ([]byte, error) {
	return s.share.ReadFile(name)
}

func (s *smbSession) Close() error {
	umountErr := s.share.Umount()
	logoffErr := s.sess.Logoff()
	closeErr := s.conn.Close()
	if umountErr != nil {
		return umountErr
	}
	if logoffErr != nil {
		return logoffErr
	}
	return closeErr
}

func dialSession(ctx context.Context, creds Credentials) (Session, error) {
	var nd net.Dialer
	conn, err := nd.DialContext(ctx, "tcp", net.JoinHostPort(creds.server(), strconv.Itoa(Port)))
	if err != nil {
		return nil, err
	}

	workstation, _ := os.Hostname()
	dialer := &smb2.Dialer{
		Initiator: &smb2.NTLMInitiator{
			User:        creds.User,
			Password:    creds.Password,
			Workstation: workstation,
		},
	}

	sess, err := dialer.DialContext(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	share, err := sess.Mount(creds.share())
	if err != nil {
		sess.Logoff()
		conn.Close()
		return nil, err
	}

	return &smbSession{conn: conn, sess: sess, share: share.WithContext(ctx)}, nil
}
