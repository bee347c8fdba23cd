package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoos-helper/advisor-api/internal/models"
)

func TestDocumentRepositorySearch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDocumentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "source", "content", "created_at", "updated_at", "rank"}).
		AddRow("1", "Registration Deadlines", "https://registrar.virginia.edu/deadlines", "Add/drop closes two weeks in.", time.Now(), time.Now(), 0.42)
	mock.ExpectQuery("SELECT id, title, source, content, created_at, updated_at").
		WithArgs("add drop deadline", 4).
		WillReturnRows(rows)

	matches, err := repo.Search(context.Background(), "add drop deadline", 4)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Registration Deadlines", matches[0].Title)
	assert.InDelta(t, 0.42, matches[0].Rank, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepositorySearchDefaultsK(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDocumentRepository(db)

	mock.ExpectQuery("SELECT id, title, source, content, created_at, updated_at").
		WithArgs("housing", 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "source", "content", "created_at", "updated_at", "rank"}))

	matches, err := repo.Search(context.Background(), "housing", 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDocumentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rag_documents")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	doc := &models.Document{Title: "Advising FAQ", Source: "https://advising.virginia.edu/faq", Content: "Sample content"}
	err := repo.Upsert(context.Background(), doc)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
