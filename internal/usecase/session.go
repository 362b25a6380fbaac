package usecase

import (
	"context"
	"sync"
	"time"

	"voicereport/internal/domain"
	"voicereport/internal/ports"
)

// session is one capture-to-report cycle. Its buffer is only touched under the
// controller lock; the handle and timer are guarded by the session's own mutex.
type session struct {
	id     uint64
	ctx    context.Context
	cancel context.CancelFunc
	buffer *chunkBuffer
	done   chan struct{}

	mu        sync.Mutex
	handle    ports.CaptureHandle
	encoding  domain.Encoding
	startedAt time.Time
	timer     *time.Timer
	released  bool
	finished  bool
}

func newSession(ctx context.Context, id uint64) *session {
	sessionCtx, cancel := context.WithCancel(ctx)
	return &session{
		id:     id,
		ctx:    sessionCtx,
		cancel: cancel,
		buffer: newChunkBuffer(),
		done:   make(chan struct{}),
	}
}

func (s *session) attach(handle ports.CaptureHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handle = handle
}

func (s *session) captureHandle() ports.CaptureHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle
}

func (s *session) began(enc domain.Encoding, at time.Time, timer *time.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.encoding = enc
	s.startedAt = at
	s.timer = timer
}

func (s *session) recording() (domain.Encoding, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.encoding, s.startedAt
}

func (s *session) stopTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// release frees the capture handle at most once. Before a handle is attached it does nothing.
func (s *session) release() error {
	s.mu.Lock()
	if s.released || s.handle == nil {
		s.mu.Unlock()
		return nil
	}
	s.released = true
	handle := s.handle
	s.mu.Unlock()
	return handle.Release()
}

func (s *session) finish() {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	s.finished = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.cancel()
	close(s.done)
}
