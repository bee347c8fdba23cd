package models

import (
	"time"

	"github.com/lib/pq"
)

// Course models one catalog entry. Code is the opaque identifier used
// throughout planning (e.g. "CS 2100"); equality is exact-string.
type Course struct {
	ID            string         `db:"id" json:"id"`
	Code          string         `db:"code" json:"courseCode"`
	Title         string         `db:"title" json:"title"`
	Description   string         `db:"description" json:"description,omitempty"`
	Credits       int            `db:"credits" json:"credits"`
	Department    string         `db:"department" json:"department"`
	Level         int            `db:"level" json:"level"`
	Prerequisites pq.StringArray `db:"prerequisites" json:"prerequisites"`
	Semesters     pq.StringArray `db:"semesters" json:"semesters,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// CourseFilter defines filters supported by the course list endpoint.
type CourseFilter struct {
	Search     string
	Department string
	Level      int
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
