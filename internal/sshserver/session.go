package sshserver

import (
	"errors"
	"sync"

	"github.com/gliderlabs/ssh"
)

// ErrReadInterrupted is returned by Session.Read when the read interrupt fires.
var ErrReadInterrupted = errors.New("read interrupted")

type readResult struct {
	data []byte
	err  error
}

// Session is an ssh.Session whose reads can be interrupted. Use WrapSession
// to create one.
//
// At most one goroutine reads from the underlying channel. A read cut short
// by the interrupt stays in flight and the next Read collects its bytes, so
// no keypress is lost between two readers.
type Session struct {
	ssh.Session

	mu        sync.Mutex
	interrupt <-chan struct{}
	inflight  chan readResult
	pending   []byte
	pendErr   error
}

// WrapSession wraps s.
func WrapSession(s ssh.Session) *Session {
	return &Session{Session: s}
}

// SetReadInterrupt registers a channel that, once closed, makes blocked and
// future reads return ErrReadInterrupted. Nil clears the interrupt.
func (s *Session) SetReadInterrupt(ch <-chan struct{}) {
	s.mu.Lock()
	s.interrupt = ch
	s.mu.Unlock()
}

// Read implements io.Reader.
func (s *Session) Read(p []byte) (int, error) {
	s.mu.Lock()
	if len(s.pending) > 0 {
		n := copy(p, s.pending)
		s.pending = s.pending[n:]
		var err error
		if len(s.pending) == 0 {
			err, s.pending, s.pendErr = s.pendErr, nil, nil
		}
		s.mu.Unlock()
		return n, err
	}
	inflight, interrupt := s.inflight, s.interrupt
	s.inflight = nil
	s.mu.Unlock()

	if inflight == nil {
		if interrupt == nil {
			return s.Session.Read(p)
		}
		select {
		case <-interrupt:
			return 0, ErrReadInterrupted
		default:
		}
		// The goroutine may outlive this call, so it reads into its own buffer.
		buf := make([]byte, len(p))
		inflight = make(chan readResult, 1)
		go func() {
			n, err := s.Session.Read(buf)
			inflight <- readResult{data: buf[:n], err: err}
		}()
	}

	select {
	case res := <-inflight:
		return s.deliver(p, res)
	case <-interrupt:
		s.mu.Lock()
		s.inflight = inflight
		s.mu.Unlock()
		return 0, ErrReadInterrupted
	}
}

func (s *Session) deliver(p []byte, res readResult) (int, error) {
	n := copy(p, res.data)
	if n < len(res.data) {
		s.mu.Lock()
		s.pending = res.data[n:]
		s.pendErr = res.err
		s.mu.Unlock()
		return n, nil
	}
	return n, res.err
}
