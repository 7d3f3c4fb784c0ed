package iostub

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	_ io.Reader   = (*Stub)(nil)
	_ io.WriterTo = (*Stub)(nil)
)

// stubState is shared by a Stub and all of its clones.
type stubState struct {
	queue     *readQueue
	log       zerolog.Logger
	endOfData error
	mu        sync.Mutex
}

// Stub is a handle to a queue of pending read outcomes. Handles returned by
// Clone share the queue with the Stub they were cloned from, so a push through
// one handle is observed by reads through any other.
//
// Calls on handles sharing a queue are linearized by a mutex. The stub models
// a single ordered stream, so concurrent readers interleave outcomes rather
// than reading in parallel.
type Stub struct {
	st *stubState
}

// New returns a Stub with an empty queue.
func New(opts ...Option) *Stub {
	st := defaultState()
	for _, opt := range opts {
		opt(st)
	}
	return &Stub{st: st}
}

// Clone returns a new handle sharing the same queue.
func (s *Stub) Clone() *Stub {
	return &Stub{st: s.st}
}

// PushRead queues a copy of p to be returned by subsequent reads.
// p may be empty, in which case the matching read returns (0, nil).
func (s *Stub) PushRead(p []byte) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	s.st.queue.pushData(p)
	s.st.log.Debug().
		Int("size", len(p)).
		Int("pending", s.st.queue.len()).
		Msg("push read")
}

// PushReadError queues err to be returned, unchanged, by one read.
// It panics if err is nil.
func (s *Stub) PushReadError(err error) {
	if err == nil {
		panic("iostub: PushReadError called with nil error")
	}
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	s.st.queue.pushErr(err)
	s.st.log.Debug().
		AnErr("error", err).
		Int("pending", s.st.queue.len()).
		Msg("push error")
}

// Read implements io.Reader.
//
// With an empty queue Read returns 0 and the end-of-data error (io.EOF unless
// changed with WithEndOfData). Otherwise it consumes the front outcome: a
// failure is returned as is, and a chunk is copied into p. Bytes that do not
// fit in p stay queued ahead of everything else.
func (s *Stub) Read(p []byte) (int, error) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	if s.st.queue.len() == 0 {
		s.st.log.Debug().Msg("end of data")
		return 0, s.st.endOfData
	}

	n, err := s.st.queue.read(p)
	if err != nil {
		s.st.log.Debug().Err(err).Msg("read error")
		return 0, err
	}

	s.st.log.Debug().
		Int("n", n).
		Int("remaining", s.st.queue.len()).
		Msg("read")
	return n, nil
}

// WriteTo implements io.WriterTo by reading from the stub and writing to w
// until the queue is empty or a queued failure is reached. Data queued after
// a failure stays pending.
func (s *Stub) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 32*1024)
	var total int64
	for s.Len() > 0 {
		n, rErr := s.Read(buf)
		if n > 0 {
			wn, wErr := w.Write(buf[:n])
			if wn < 0 || wn > n {
				wn = 0
				if wErr == nil {
					wErr = io.ErrShortWrite
				}
			}
			total += int64(wn)
			if wErr != nil {
				return total, wErr
			}
			if wn != n {
				return total, io.ErrShortWrite
			}
		}
		if rErr != nil {
			if rErr == io.EOF || rErr == s.st.endOfData {
				return total, nil
			}
			return total, rErr
		}
	}
	return total, nil
}

// Len returns the number of pending outcomes. A partially read chunk counts as one.
func (s *Stub) Len() int {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.queue.len()
}

// Buffered returns the number of data bytes still queued.
func (s *Stub) Buffered() int {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return s.st.queue.buffered()
}
