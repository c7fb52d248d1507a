package store

import (
	"context"
	"time"

	"github.com/maxaizer/job-hunter/internal/domain/models"
)

// snapshot carries the last refresh between CLI runs. It is separate from the client state keys
// and may be missing or outdated at any time.
type snapshot struct {
	Jobs        []models.Job      `json:"jobs"`
	Matches     []models.JobMatch `json:"matches"`
	SourceStats map[string]int    `json:"sourceStats"`
	TakenAt     time.Time         `json:"takenAt"`
}

func (s *Store) SaveSnapshot(ctx context.Context) error {
	return s.save(ctx, SnapshotKey, snapshot{
		Jobs:        s.engine.Jobs(),
		Matches:     s.engine.Matches(),
		SourceStats: s.SourceStats(),
		TakenAt:     time.Now().UTC(),
	})
}

// LoadSnapshot reports when the restored snapshot was taken, or the zero time if there was none.
func (s *Store) LoadSnapshot(ctx context.Context) time.Time {
	var snap snapshot
	if !s.load(ctx, SnapshotKey, &snap) {
		return time.Time{}
	}

	s.engine.Restore(snap.Jobs, snap.Matches)
	s.mu.Lock()
	if snap.SourceStats != nil {
		s.sourceStats = snap.SourceStats
	}
	s.mu.Unlock()
	return snap.TakenAt
}
