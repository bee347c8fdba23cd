package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hoos-helper/advisor-api/internal/models"
	appErrors "github.com/hoos-helper/advisor-api/pkg/errors"
)

type clubRepository interface {
	List(ctx context.Context, filter models.ClubFilter) ([]models.Club, int, error)
	ListAll(ctx context.Context) ([]models.Club, error)
}

const maxRecommendedClubs = 6

// ClubService serves the student organization directory and
// interest-based recommendations.
type ClubService struct {
	repo         clubRepository
	seedFallback bool
	logger       *zap.Logger
}

// NewClubService constructs a ClubService. A nil repo serves the
// seeded directory.
func NewClubService(repo clubRepository, seedFallback bool, logger *zap.Logger) *ClubService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClubService{repo: repo, seedFallback: seedFallback, logger: logger}
}

// List returns clubs with pagination metadata.
func (s *ClubService) List(ctx context.Context, filter models.ClubFilter) ([]models.Club, *models.Pagination, error) {
	if s.repo == nil {
		clubs := filterSeedClubs(filter)
		pagination := &models.Pagination{Page: 1, PageSize: len(clubs), TotalCount: len(clubs)}
		return clubs, pagination, nil
	}

	clubs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		if s.seedFallback {
			s.logger.Warn("club list query failed, serving seeded directory", zap.Error(err))
			seeded := filterSeedClubs(filter)
			pagination := &models.Pagination{Page: 1, PageSize: len(seeded), TotalCount: len(seeded)}
			return seeded, pagination, nil
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list clubs")
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
	return clubs, pagination, nil
}

// Recommended returns up to six clubs whose tags overlap the supplied
// interest keywords. Without interests it returns the first six clubs.
func (s *ClubService) Recommended(ctx context.Context, interests string) ([]models.Club, error) {
	clubs, err := s.allClubs(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(interests) == "" {
		return capClubs(clubs), nil
	}

	keywords := strings.Fields(strings.ToLower(interests))
	var recommended []models.Club
	for _, club := range clubs {
		if matchesInterests(club, keywords) {
			recommended = append(recommended, club)
		}
	}

	return capClubs(recommended), nil
}

func (s *ClubService) allClubs(ctx context.Context) ([]models.Club, error) {
	if s.repo == nil {
		return seedClubs(), nil
	}

	clubs, err := s.repo.ListAll(ctx)
	if err != nil {
		if s.seedFallback {
			s.logger.Warn("club directory query failed, serving seeded directory", zap.Error(err))
			return seedClubs(), nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load clubs")
	}

	return clubs, nil
}

func matchesInterests(club models.Club, keywords []string) bool {
	for _, keyword := range keywords {
		for _, tag := range club.Tags {
			if strings.Contains(strings.ToLower(tag), keyword) {
				return true
			}
		}
	}
	return false
}

func capClubs(clubs []models.Club) []models.Club {
	if len(clubs) > maxRecommendedClubs {
		return clubs[:maxRecommendedClubs]
	}
	return clubs
}

func filterSeedClubs(filter models.ClubFilter) []models.Club {
	clubs := seedClubs()
	filtered := make([]models.Club, 0, len(clubs))

	search := strings.ToLower(filter.Search)
	for _, club := range clubs {
		if search != "" &&
			!strings.Contains(strings.ToLower(club.Name), search) &&
			!strings.Contains(strings.ToLower(club.Description), search) {
			continue
		}
		if filter.Category != "" && club.Category != filter.Category {
			continue
		}
		filtered = append(filtered, club)
	}

	return filtered
}
