package iostub

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// ErrorKind classifies a simulated stream failure.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindTimedOut
	KindUnexpectedEOF
	KindClosedPipe
	KindConnectionReset
	KindPermissionDenied
)

var kindNames = [...]string{
	KindOther:            "other",
	KindTimedOut:         "timed out",
	KindUnexpectedEOF:    "unexpected eof",
	KindClosedPipe:       "closed pipe",
	KindConnectionReset:  "connection reset",
	KindPermissionDenied: "permission denied",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// sentinel returns the standard library error a kind stands for, or nil.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindTimedOut:
		return os.ErrDeadlineExceeded
	case KindUnexpectedEOF:
		return io.ErrUnexpectedEOF
	case KindClosedPipe:
		return io.ErrClosedPipe
	case KindConnectionReset:
		return syscall.ECONNRESET
	case KindPermissionDenied:
		return fs.ErrPermission
	default:
		return nil
	}
}

// StreamError is a failure descriptor made of a kind and a message.
// Read returns it exactly as it was pushed.
type StreamError struct {
	Kind ErrorKind
	Msg  string
}

// NewError returns a StreamError for use with PushReadError.
func NewError(kind ErrorKind, msg string) *StreamError {
	return &StreamError{Kind: kind, Msg: msg}
}

func (e *StreamError) Error() string {
	if e.Msg == "" {
		return "iostub: " + e.Kind.String()
	}
	return "iostub: " + e.Kind.String() + ": " + e.Msg
}

// Unwrap exposes the standard library error matching the kind, so
// errors.Is(err, io.ErrUnexpectedEOF) and friends hold.
func (e *StreamError) Unwrap() error {
	return e.Kind.sentinel()
}

// Timeout reports whether the error simulates a deadline being exceeded.
func (e *StreamError) Timeout() bool {
	return e.Kind == KindTimedOut
}

// KindOf returns the kind of the first StreamError in err's chain,
// or KindOther if there is none.
func KindOf(err error) ErrorKind {
	var se *StreamError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindOther
}
