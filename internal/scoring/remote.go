package scoring

import (
	"context"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/pkg/errors"
)

type matchFunction interface {
	MatchJobs(ctx context.Context, resume models.Resume, jobs []models.Job) ([]models.JobMatch, error)
}

// RemoteScorer delegates to the hosted match-jobs function.
type RemoteScorer struct {
	client matchFunction
}

func NewRemoteScorer(client matchFunction) *RemoteScorer {
	return &RemoteScorer{client: client}
}

func (s *RemoteScorer) Score(ctx context.Context, resume *models.Resume, jobs []models.Job) ([]models.JobMatch, error) {
	if resume == nil {
		return nil, ErrNoResume
	}
	if len(jobs) == 0 {
		return []models.JobMatch{}, nil
	}

	matches, err := s.client.MatchJobs(ctx, *resume, jobs)
	if err != nil {
		return nil, errors.Wrap(err, "remote scoring failed")
	}
	return matches, nil
}
