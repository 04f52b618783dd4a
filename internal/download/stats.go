package download

import (
	"sync/atomic"
	"time"
)

// Stats tracks request counters for the health endpoint.
type Stats struct {
	started   atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	startedAt time.Time
}

func NewStats() *Stats {
	return &Stats{startedAt: time.Now()}
}

func (s *Stats) Started()   { s.started.Add(1) }
func (s *Stats) Completed() { s.completed.Add(1) }
func (s *Stats) Failed()    { s.failed.Add(1) }

type Snapshot struct {
	Active    int64         `json:"active"`
	Completed int64         `json:"completed"`
	Failed    int64         `json:"failed"`
	Uptime    time.Duration `json:"-"`
}

func (s *Stats) Snapshot() Snapshot {
	started := s.started.Load()
	completed := s.completed.Load()
	failed := s.failed.Load()

	return Snapshot{
		Active:    started - completed - failed,
		Completed: completed,
		Failed:    failed,
		Uptime:    time.Since(s.startedAt),
	}
}
