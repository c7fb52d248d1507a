package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxaizer/job-hunter/internal/clients/functions"
	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/maxaizer/job-hunter/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyResumeText = errors.New("resume text is empty")
	ErrResumeNotParsed = errors.New("failed to parse resume")
)

type resumeParser interface {
	ParseResume(ctx context.Context, resumeText string) (*functions.ParseResponse, error)
}

type ResumeService struct {
	parser resumeParser
}

func NewResumeService(parser resumeParser) *ResumeService {
	return &ResumeService{parser: parser}
}

// Parse turns raw resume text into a Resume with a fresh id.
func (s *ResumeService) Parse(ctx context.Context, text string) (*models.Resume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResumeText
	}

	response, err := s.parser.ParseResume(ctx, text)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeParse).Errorf("parse-resume call failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrResumeNotParsed, err)
	}

	if !response.Success || response.Resume == nil {
		reason := response.Error
		if reason == "" {
			reason = "no resume returned"
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeParse).Errorf("parse-resume rejected input: %s", reason)
		return nil, errors.Wrap(ErrResumeNotParsed, reason)
	}

	resume := models.NewResume(*response.Resume, text)
	log.Infof("parsed resume %s with %d skills", resume.ID, len(resume.Skills))
	return &resume, nil
}
