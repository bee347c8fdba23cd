package models

import "time"

// Document is one scraped reference page used by advising retrieval.
type Document struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Source    string    `db:"source" json:"source"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DocumentMatch pairs a document with its retrieval relevance score.
type DocumentMatch struct {
	Document
	Rank float64 `db:"rank" json:"rank"`
}
