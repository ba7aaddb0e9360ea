package pipeline

import "sync"

// RunStats tracks aggregate counters across the bot's lifetime. Requests run
// concurrently, so access is synchronized.
type RunStats struct {
	mu        sync.Mutex
	processed int
	failed    int
	static    int
	animated  int
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Processed int
	Failed    int
	Static    int
	Animated  int
}

func (s *RunStats) record(kind string, failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed++
	if failed {
		s.failed++
		return
	}
	switch kind {
	case "static":
		s.static++
	case "animated":
		s.animated++
	}
}

// Snapshot returns a copy of the current counters.
func (s *RunStats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Processed: s.processed,
		Failed:    s.failed,
		Static:    s.static,
		Animated:  s.animated,
	}
}
