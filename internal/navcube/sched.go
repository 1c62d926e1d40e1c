package navcube

import (
	"sync"
	"time"
)

// DefaultInterval is the tick period of a started widget.
const DefaultInterval = time.Second / 60

// Scheduler runs fn repeatedly. The returned cancel function stops further
// calls; once it returns, fn is not running and will not run again.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TickerScheduler drives fn from a time.Ticker on its own goroutine.
type TickerScheduler struct{}

// Every implements Scheduler.
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// A cancel racing with the tick wins
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-exited
		})
	}
}

// FrameScheduler runs jobs from the host's main loop: the host calls Advance
// once per frame and due jobs run on the caller's goroutine.
type FrameScheduler struct {
	mu   sync.Mutex
	jobs map[int]*frameJob
	next int
}

type frameJob struct {
	interval time.Duration
	due      time.Time
	fn       func()
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{jobs: make(map[int]*frameJob)}
}

// Every implements Scheduler. The job first runs on the next Advance.
func (s *FrameScheduler) Every(interval time.Duration, fn func()) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.jobs[id] = &frameJob{interval: interval, fn: fn}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.jobs, id)
		s.mu.Unlock()
	}
}

// Advance runs every job due at now and returns how many ran. Missed periods
// are not replayed.
func (s *FrameScheduler) Advance(now time.Time) int {
	s.mu.Lock()
	var due []func()
	for _, j := range s.jobs {
		if !j.due.IsZero() && now.Before(j.due) {
			continue
		}
		j.due = now.Add(j.interval)
		due = append(due, j.fn)
	}
	s.mu.Unlock()

	for _, fn := range due {
		fn()
	}
	return len(due)
}

// Len returns the number of registered jobs.
func (s *FrameScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}
