package dto

import "time"

// CreateDesignIdeaRequest alta de idea de diseño (borrador salvo published=true).
type CreateDesignIdeaRequest struct {
	Title      string   `json:"title" validate:"required,min=3,max=200"`
	Summary    string   `json:"summary" validate:"max=500"`
	Content    string   `json:"content" validate:"required,min=10"`
	CoverImage string   `json:"coverImage" validate:"omitempty,url"`
	Images     []string `json:"images" validate:"max=30,dive,url"`
	Category   string   `json:"category" validate:"required,max=100"`
	Tags       []string `json:"tags" validate:"max=20,dive,min=1,max=50"`
	Published  bool     `json:"published"`
}

// UpdateDesignIdeaRequest PATCH.
type UpdateDesignIdeaRequest struct {
	Title      *string   `json:"title" validate:"omitempty,min=3,max=200"`
	Summary    *string   `json:"summary" validate:"omitempty,max=500"`
	Content    *string   `json:"content" validate:"omitempty,min=10"`
	CoverImage *string   `json:"coverImage" validate:"omitempty,url"`
	Images     *[]string `json:"images" validate:"omitempty,max=30,dive,url"`
	Category   *string   `json:"category" validate:"omitempty,max=100"`
	Tags       *[]string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
	Published  *bool     `json:"published"`
}

// DesignIdeaResponse salida de idea de diseño.
type DesignIdeaResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Summary    string    `json:"summary,omitempty"`
	Content    string    `json:"content"`
	CoverImage string    `json:"coverImage,omitempty"`
	Images     []string  `json:"images"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	AuthorID   string    `json:"authorId"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreatePortfolioRequest alta de proyecto del portafolio.
type CreatePortfolioRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Description string     `json:"description" validate:"required,min=10,max=5000"`
	Client      string     `json:"client" validate:"max=200"`
	Location    string     `json:"location" validate:"max=200"`
	Category    string     `json:"category" validate:"required,max=100"`
	Tags        []string   `json:"tags" validate:"max=20,dive,min=1,max=50"`
	Images      []string   `json:"images" validate:"required,min=1,max=30,dive,url"`
	Featured    bool       `json:"featured"`
	CompletedAt *time.Time `json:"completedAt"`
}

// UpdatePortfolioRequest PATCH; completedAt: null lo elimina.
type UpdatePortfolioRequest struct {
	Title       *string             `json:"title" validate:"omitempty,min=3,max=200"`
	Description *string             `json:"description" validate:"omitempty,min=10,max=5000"`
	Client      *string             `json:"client" validate:"omitempty,max=200"`
	Location    *string             `json:"location" validate:"omitempty,max=200"`
	Category    *string             `json:"category" validate:"omitempty,max=100"`
	Tags        *[]string           `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
	Images      *[]string           `json:"images" validate:"omitempty,min=1,max=30,dive,url"`
	Featured    *bool               `json:"featured"`
	CompletedAt Nullable[time.Time] `json:"completedAt"`
}

// ContentListQuery filtros comunes de ideas de diseño y portafolio.
type ContentListQuery struct {
	PageQuery
	Category string `query:"category" validate:"max=100"`
	Tag      string `query:"tag" validate:"max=50"`
	Search   string `query:"search" validate:"max=100"`
	Featured string `query:"featured" validate:"omitempty,oneof=true false"`
}

// PortfolioResponse salida de proyecto.
type PortfolioResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Client      string     `json:"client,omitempty"`
	Location    string     `json:"location,omitempty"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Images      []string   `json:"images"`
	Featured    bool       `json:"featured"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// UploadResponse URL pública y clave del objeto subido.
type UploadResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
