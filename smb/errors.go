package smb

import "fmt"

// ErrConnect indicates that an NTLMv2 session could not be established.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrConnect struct {
	Server string
	cause  error
}

func (e *ErrConnect) Error() string {
	return fmt.Sprintf("smb: connect %s: %v", e.Server, e.cause)
}

func (e *ErrConnect) Unwrap() error { return e.cause }

// ErrRetrieve indicates that a remote file could not be fetched. Retrieval
// failures are never retried at this layer.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrRetrieve struct {
	Path  string
	cause error
}

func (e *ErrRetrieve) Error() string {
	return fmt.Sprintf("smb: retrieve %s: %v", e.Path, e.cause)
}

func (e *ErrRetrieve) Unwrap() error { return e.cause }
