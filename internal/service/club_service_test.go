package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoos-helper/advisor-api/internal/models"
)

type clubRepoMock struct {
	clubs []models.Club
	total int
	err   error
}

func (m *clubRepoMock) List(ctx context.Context, filter models.ClubFilter) ([]models.Club, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.clubs, m.total, nil
}

func (m *clubRepoMock) ListAll(ctx context.Context) ([]models.Club, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.clubs, nil
}

func TestClubServiceListSeededWithoutRepo(t *testing.T) {
	svc := NewClubService(nil, true, nil)

	clubs, pagination, err := svc.List(context.Background(), models.ClubFilter{Category: "Academic"})

	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "UVA Computer Science Society", clubs[0].Name)
	assert.Equal(t, 2, pagination.TotalCount)
}

func TestClubServiceRecommendedMatchesInterests(t *testing.T) {
	svc := NewClubService(nil, true, nil)

	clubs, err := svc.Recommended(context.Background(), "data science")

	require.NoError(t, err)
	require.NotEmpty(t, clubs)
	names := make([]string, 0, len(clubs))
	for _, club := range clubs {
		names = append(names, club.Name)
	}
	assert.Contains(t, names, "Data Science Club")
}

func TestClubServiceRecommendedWithoutInterests(t *testing.T) {
	svc := NewClubService(nil, true, nil)

	clubs, err := svc.Recommended(context.Background(), "   ")

	require.NoError(t, err)
	assert.Len(t, clubs, maxRecommendedClubs)
}

func TestClubServiceRecommendedCapsResults(t *testing.T) {
	many := make([]models.Club, 10)
	for i := range many {
		many[i] = models.Club{Name: "Club", Tags: []string{"Technology"}}
	}
	repo := &clubRepoMock{clubs: many}
	svc := NewClubService(repo, false, nil)

	clubs, err := svc.Recommended(context.Background(), "technology")

	require.NoError(t, err)
	assert.Len(t, clubs, maxRecommendedClubs)
}

func TestClubServiceRecommendedFallsBackOnError(t *testing.T) {
	repo := &clubRepoMock{err: errors.New("connection refused")}
	svc := NewClubService(repo, true, nil)

	clubs, err := svc.Recommended(context.Background(), "hackathons")

	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Hoos Hacking", clubs[0].Name)
}
