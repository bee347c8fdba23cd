package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hoos-helper/advisor-api/internal/models"
)

// DocumentRepository stores scraped reference pages and serves the
// retrieval side of advising chat via Postgres full-text search.
type DocumentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository creates a new repository instance.
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Search returns the k most relevant documents for the query, ranked
// by ts_rank over the indexed content.
func (r *DocumentRepository) Search(ctx context.Context, query string, k int) ([]models.DocumentMatch, error) {
	if k <= 0 {
		k = 4
	}

	const sqlQuery = `SELECT id, title, source, content, created_at, updated_at,
        ts_rank(search_vector, plainto_tsquery('english', $1)) AS rank
        FROM rag_documents
        WHERE search_vector @@ plainto_tsquery('english', $1)
        ORDER BY rank DESC
        LIMIT $2`

	var matches []models.DocumentMatch
	if err := r.db.SelectContext(ctx, &matches, sqlQuery, query, k); err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	return matches, nil
}

// Upsert inserts or refreshes a scraped document keyed by source URL.
func (r *DocumentRepository) Upsert(ctx context.Context, doc *models.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	const query = `INSERT INTO rag_documents (id, title, source, content, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (source) DO UPDATE SET
            title = EXCLUDED.title,
            content = EXCLUDED.content,
            updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query,
		doc.ID,
		doc.Title,
		doc.Source,
		doc.Content,
		doc.CreatedAt,
		doc.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert document %s: %w", doc.Source, err)
	}

	return nil
}
