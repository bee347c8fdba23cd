package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hoos-helper/advisor-api/internal/models"
)

// ClubRepository handles persistence for student organizations.
type ClubRepository struct {
	db *sqlx.DB
}

// NewClubRepository creates a new repository instance.
func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

const clubColumns = "id, name, description, category, tags, email, website, created_at, updated_at"

// List returns clubs matching filters with pagination metadata.
func (r *ClubRepository) List(ctx context.Context, filter models.ClubFilter) ([]models.Club, int, error) {
	base := "FROM clubs WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(name) LIKE $%d OR LOWER(description) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, filter.Category)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	allowedSorts := map[string]bool{
		"name":       true,
		"category":   true,
		"created_at": true,
	}
	if !allowedSorts[sortBy] {
		sortBy = "name"
	}

	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s %s LIMIT %d OFFSET %d", clubColumns, base, sortBy, order, size, offset)
	var clubs []models.Club
	if err := r.db.SelectContext(ctx, &clubs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list clubs: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count clubs: %w", err)
	}

	return clubs, total, nil
}

// ListAll returns every club, used by interest-based recommendation.
func (r *ClubRepository) ListAll(ctx context.Context) ([]models.Club, error) {
	query := fmt.Sprintf("SELECT %s FROM clubs ORDER BY name ASC", clubColumns)
	var clubs []models.Club
	if err := r.db.SelectContext(ctx, &clubs, query); err != nil {
		return nil, fmt.Errorf("list all clubs: %w", err)
	}
	return clubs, nil
}

// Upsert inserts or refreshes a scraped club keyed by name.
func (r *ClubRepository) Upsert(ctx context.Context, club *models.Club) error {
	if club.ID == "" {
		club.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if club.CreatedAt.IsZero() {
		club.CreatedAt = now
	}
	club.UpdatedAt = now

	const query = `INSERT INTO clubs (id, name, description, category, tags, email, website, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (name) DO UPDATE SET
            description = EXCLUDED.description,
            category = EXCLUDED.category,
            tags = EXCLUDED.tags,
            email = EXCLUDED.email,
            website = EXCLUDED.website,
            updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query,
		club.ID,
		club.Name,
		club.Description,
		club.Category,
		pq.Array([]string(club.Tags)),
		club.Email,
		club.Website,
		club.CreatedAt,
		club.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upsert club %s: %w", club.Name, err)
	}

	return nil
}
