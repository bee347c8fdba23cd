package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hoos-helper/advisor-api/internal/models"
	"github.com/hoos-helper/advisor-api/internal/planner"
	appErrors "github.com/hoos-helper/advisor-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error)
	ListAll(ctx context.Context) ([]models.Course, error)
}

type catalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

const catalogCacheKey = "catalog:courses"

// CatalogService serves course listings and supplies the prerequisite
// graph and credit values to plan validation. When the database is
// unavailable it falls back to the seeded catalog so the API degrades
// instead of failing.
type CatalogService struct {
	repo         courseRepository
	cache        catalogCache
	cacheTTL     time.Duration
	seedFallback bool
	logger       *zap.Logger
}

// NewCatalogService constructs a CatalogService. repo and cache may be
// nil; a nil repo forces the seeded catalog.
func NewCatalogService(repo courseRepository, cache catalogCache, cacheTTL time.Duration, seedFallback bool, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &CatalogService{repo: repo, cache: cache, cacheTTL: cacheTTL, seedFallback: seedFallback, logger: logger}
}

// List returns catalog courses with pagination metadata.
func (s *CatalogService) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, *models.Pagination, error) {
	if s.repo == nil {
		courses := filterSeedCourses(filter)
		pagination := &models.Pagination{Page: 1, PageSize: len(courses), TotalCount: len(courses)}
		return courses, pagination, nil
	}

	courses, total, err := s.repo.List(ctx, filter)
	if err != nil {
		if s.seedFallback {
			s.logger.Warn("course list query failed, serving seeded catalog", zap.Error(err))
			seeded := filterSeedCourses(filter)
			pagination := &models.Pagination{Page: 1, PageSize: len(seeded), TotalCount: len(seeded)}
			return seeded, pagination, nil
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: total}
	return courses, pagination, nil
}

// Snapshot returns the prerequisite graph and per-course credit values
// for the whole catalog. Results are cached; on any failure the seeded
// catalog backs the snapshot so validation never sees an empty graph.
func (s *CatalogService) Snapshot(ctx context.Context) (planner.Graph, map[string]int) {
	courses := s.allCourses(ctx)

	credits := make(map[string]int, len(courses))
	for _, course := range courses {
		if course.Credits > 0 {
			credits[course.Code] = course.Credits
		}
	}

	return planner.GraphFromCourses(courses), credits
}

func (s *CatalogService) allCourses(ctx context.Context) []models.Course {
	if s.repo == nil {
		return seedCourses()
	}

	if s.cache != nil {
		var cached []models.Course
		if err := s.cache.Get(ctx, catalogCacheKey, &cached); err == nil && len(cached) > 0 {
			return cached
		}
	}

	courses, err := s.repo.ListAll(ctx)
	if err != nil || len(courses) == 0 {
		if err != nil {
			s.logger.Warn("catalog snapshot query failed, serving seeded catalog", zap.Error(err))
		}
		return seedCourses()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogCacheKey, courses, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache catalog snapshot", zap.Error(err))
		}
	}

	return courses
}

func filterSeedCourses(filter models.CourseFilter) []models.Course {
	courses := seedCourses()
	filtered := make([]models.Course, 0, len(courses))

	search := strings.ToLower(filter.Search)
	for _, course := range courses {
		if search != "" &&
			!strings.Contains(strings.ToLower(course.Code), search) &&
			!strings.Contains(strings.ToLower(course.Title), search) {
			continue
		}
		if filter.Department != "" && course.Department != filter.Department {
			continue
		}
		if filter.Level > 0 && course.Level != filter.Level {
			continue
		}
		filtered = append(filtered, course)
	}

	return filtered
}
