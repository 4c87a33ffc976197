package entity

import "time"

// DesignIdea artículo de inspiración (blog de ideas de diseño).
type DesignIdea struct {
	ID         string
	Title      string
	Slug       string
	Summary    string
	Content    string
	CoverImage string
	Images     []string
	Category   string
	Tags       []string
	AuthorID   string
	Published  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PortfolioProject proyecto realizado que se muestra en el portafolio.
type PortfolioProject struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Client      string
	Location    string
	Category    string
	Tags        []string
	Images      []string
	Featured    bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
