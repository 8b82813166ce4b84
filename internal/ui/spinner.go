package ui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var frames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner renders an animated progress line, typically on stderr, while a
// comparison runs.
type Spinner struct {
	w       io.Writer
	mu      sync.Mutex
	msg     string
	started time.Time
	done    chan struct{}
	stopped chan struct{}
}

// NewSpinner creates a spinner that draws to w, usually stderr.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w}
}

// Start begins the animation with msg. Calling Start on a running spinner only updates msg.
func (s *Spinner) Start(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msg = msg
	if s.done != nil {
		return
	}
	s.started = time.Now()
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})
	go s.run(s.done, s.stopped)
}

// Update changes the message while running. It is safe to call from any goroutine.
func (s *Spinner) Update(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	done, stopped := s.done, s.stopped
	s.done, s.stopped = nil, nil
	s.mu.Unlock()

	if done == nil {
		return
	}
	close(done)
	<-stopped
	fmt.Fprint(s.w, "\r\033[K")
}

func (s *Spinner) run(done, stopped chan struct{}) {
	defer close(stopped)
	tick := time.NewTicker(80 * time.Millisecond)
	defer tick.Stop()

	for i := 0; ; i++ {
		select {
		case <-done:
			return
		case <-tick.C:
			s.mu.Lock()
			msg, elapsed := s.msg, time.Since(s.started).Truncate(100*time.Millisecond)
			s.mu.Unlock()
			fmt.Fprintf(s.w, "\r\033[K%c %s (%s)", frames[i%len(frames)], msg, elapsed)
		}
	}
}
