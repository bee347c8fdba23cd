package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/hoos-helper/advisor-api/pkg/errors"
	"github.com/hoos-helper/advisor-api/pkg/jobs"
)

// Scrape job types.
const (
	JobScrapeCourses   = "scrape_courses"
	JobScrapeClubs     = "scrape_clubs"
	JobScrapeDocuments = "scrape_documents"
)

type jobQueue interface {
	Enqueue(job jobs.Job) error
}

// Scraper runs one ETL pass against an external site.
type Scraper interface {
	Run(ctx context.Context) error
}

type cacheInvalidator interface {
	Delete(ctx context.Context, keys ...string) error
}

// ScrapeService enqueues background scrape jobs; the HTTP boundary
// returns immediately while workers do the fetching.
type ScrapeService struct {
	queue  jobQueue
	logger *zap.Logger
}

// NewScrapeService constructs a ScrapeService.
func NewScrapeService(queue jobQueue, logger *zap.Logger) *ScrapeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScrapeService{queue: queue, logger: logger}
}

// Trigger enqueues one scrape job and returns its ID.
func (s *ScrapeService) Trigger(jobType string) (string, error) {
	switch jobType {
	case JobScrapeCourses, JobScrapeClubs, JobScrapeDocuments:
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown scrape job type %q", jobType))
	}
	if s.queue == nil {
		return "", appErrors.Clone(appErrors.ErrUnavailable, "scraping is not enabled")
	}

	job := jobs.Job{ID: uuid.NewString(), Type: jobType}
	if err := s.queue.Enqueue(job); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue scrape job")
	}

	s.logger.Sugar().Infow("scrape job enqueued", "job_id", job.ID, "type", jobType)
	return job.ID, nil
}

// ScrapeDispatcher routes queue jobs to the matching scraper.
type ScrapeDispatcher struct {
	courses   Scraper
	clubs     Scraper
	documents Scraper
	cache     cacheInvalidator
	logger    *zap.Logger
}

// NewScrapeDispatcher constructs a dispatcher; individual scrapers may
// be nil when their target is not configured, and cache may be nil
// when no snapshot cache is in play.
func NewScrapeDispatcher(courses, clubs, documents Scraper, cache cacheInvalidator, logger *zap.Logger) *ScrapeDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScrapeDispatcher{courses: courses, clubs: clubs, documents: documents, cache: cache, logger: logger}
}

// Handle implements the queue handler contract.
func (d *ScrapeDispatcher) Handle(ctx context.Context, job jobs.Job) error {
	var scraper Scraper
	switch job.Type {
	case JobScrapeCourses:
		scraper = d.courses
	case JobScrapeClubs:
		scraper = d.clubs
	case JobScrapeDocuments:
		scraper = d.documents
	default:
		d.logger.Sugar().Warnw("dropping unknown scrape job", "job_id", job.ID, "type", job.Type)
		return nil
	}

	if scraper == nil {
		d.logger.Sugar().Warnw("scraper not configured", "job_id", job.ID, "type", job.Type)
		return nil
	}

	if err := scraper.Run(ctx); err != nil {
		return fmt.Errorf("run %s: %w", job.Type, err)
	}

	// A refreshed catalog invalidates the cached snapshot.
	if job.Type == JobScrapeCourses && d.cache != nil {
		if err := d.cache.Delete(ctx, catalogCacheKey); err != nil {
			d.logger.Sugar().Warnw("failed to invalidate catalog cache", "error", err)
		}
	}

	d.logger.Sugar().Infow("scrape job completed", "job_id", job.ID, "type", job.Type)
	return nil
}
