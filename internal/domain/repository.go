// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Repository holds the fields of a single repository returned by the search API.
// It is the core domain entity of the stars tool.
type Repository struct {
	Name        string    `json:"name"`
	Owner       string    `json:"owner"`
	FullName    string    `json:"full_name"`
	Stars       int       `json:"star_count"`
	Language    string    `json:"language"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
