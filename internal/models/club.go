package models

import (
	"time"

	"github.com/lib/pq"
)

// Club models one student organization.
type Club struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Description string         `db:"description" json:"description"`
	Category    string         `db:"category" json:"category"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	Email       string         `db:"email" json:"email,omitempty"`
	Website     string         `db:"website" json:"website,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// ClubFilter defines filters supported by the club list endpoint.
type ClubFilter struct {
	Search    string
	Category  string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
