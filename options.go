package iostub

import (
	"io"

	"github.com/rs/zerolog"
)

// Option configures a Stub. Options are applied by New and shared by every clone.
type Option func(*stubState)

// WithLogger traces pushes and reads at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(s *stubState) {
		s.log = l.With().Str("component", "iostub").Logger()
	}
}

// WithEndOfData sets the error Read returns when the queue is empty.
// The default is io.EOF. Passing nil makes an empty queue read as (0, nil),
// which consumers that loop until an error, such as io.ReadAll, never leave.
func WithEndOfData(err error) Option {
	return func(s *stubState) {
		s.endOfData = err
	}
}

func defaultState() *stubState {
	return &stubState{
		queue:     newReadQueue(),
		log:       zerolog.Nop(),
		endOfData: io.EOF,
	}
}
