package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated            uint64
	UserCacheHits           uint64
	UserCacheMisses         uint64
	ExercisesAdded          uint64
	LogQueries              uint64
	LogQueryDurationCount   uint64
	LogQueryDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersCreated            uint64
	userCacheHits           uint64
	userCacheMisses         uint64
	exercisesAdded          uint64
	logQueries              uint64
	logQueryDurationCount   uint64
	logQueryDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:            atomic.LoadUint64(&m.usersCreated),
		UserCacheHits:           atomic.LoadUint64(&m.userCacheHits),
		UserCacheMisses:         atomic.LoadUint64(&m.userCacheMisses),
		ExercisesAdded:          atomic.LoadUint64(&m.exercisesAdded),
		LogQueries:              atomic.LoadUint64(&m.logQueries),
		LogQueryDurationCount:   atomic.LoadUint64(&m.logQueryDurationCount),
		LogQueryDurationTotalNs: atomic.LoadInt64(&m.logQueryDurationTotalNs),
	}
}

// IncUserCreated increments the users created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncUserCacheHit increments the user cache hit counter.
func (m *InMemoryRecorder) IncUserCacheHit() {
	atomic.AddUint64(&m.userCacheHits, 1)
}

// IncUserCacheMiss increments the user cache miss counter.
func (m *InMemoryRecorder) IncUserCacheMiss() {
	atomic.AddUint64(&m.userCacheMisses, 1)
}

// IncExerciseAdded increments the exercises added counter.
func (m *InMemoryRecorder) IncExerciseAdded() {
	atomic.AddUint64(&m.exercisesAdded, 1)
}

// IncLogQuery increments the log query counter.
func (m *InMemoryRecorder) IncLogQuery() {
	atomic.AddUint64(&m.logQueries, 1)
}

// ObserveLogQueryDuration records log query duration.
func (m *InMemoryRecorder) ObserveLogQueryDuration(duration time.Duration) {
	atomic.AddUint64(&m.logQueryDurationCount, 1)
	atomic.AddInt64(&m.logQueryDurationTotalNs, duration.Nanoseconds())
}
