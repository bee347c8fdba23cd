package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoos-helper/advisor-api/internal/models"
)

func clubRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "category", "tags", "email", "website", "created_at", "updated_at"}).
		AddRow("1", "Data Science Club", "Learn data science and analytics", "Academic", pq.StringArray{"Technology", "Data Science"}, "", "", time.Now(), time.Now())
}

func TestClubRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClubRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, category, tags, email, website, created_at, updated_at FROM clubs WHERE 1=1 AND (LOWER(name) LIKE $1 OR LOWER(description) LIKE $1) AND category = $2 ORDER BY name ASC LIMIT 20 OFFSET 0")).
		WithArgs("%data%", "Academic").
		WillReturnRows(clubRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM clubs WHERE 1=1 AND (LOWER(name) LIKE $1 OR LOWER(description) LIKE $1) AND category = $2")).
		WithArgs("%data%", "Academic").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	clubs, total, err := repo.List(context.Background(), models.ClubFilter{Search: "Data", Category: "Academic"})
	require.NoError(t, err)
	assert.Len(t, clubs, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Data Science Club", clubs[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClubRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, category, tags, email, website, created_at, updated_at FROM clubs ORDER BY name ASC")).
		WillReturnRows(clubRows())

	clubs, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, clubs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClubRepository(db)

	mock.ExpectExec("INSERT INTO clubs").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	club := &models.Club{Name: "Hoos Hacking", Description: "Hackathons", Category: "Tech"}
	err := repo.Upsert(context.Background(), club)
	require.NoError(t, err)
	assert.NotEmpty(t, club.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
