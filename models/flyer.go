package models

import "time"

// Flyer is a publishable catalog document: cover image, category, brand
// and an ordered set of products. The backend owns it; the gateway only
// relays and rewrites image paths.
type Flyer struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	CoverImage    string     `json:"coverImage"`
	Category      Reference  `json:"category"`
	Brand         Reference  `json:"brand"`
	IsActive      bool       `json:"isActive"`
	IsPublished   bool       `json:"isPublished"`
	TotalProducts int        `json:"totalProducts"`
	PublishDate   *time.Time `json:"publishDate,omitempty"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Canonical upstream payloads. Lists arrive as {data: {flyers: [...], pagination}},
// single entities as {data: {flyer: {...}}}.
type FlyerListData struct {
	Flyers     []Flyer     `json:"flyers"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type FlyerData struct {
	Flyer Flyer `json:"flyer"`
}

type CreateFlyerRequest struct {
	Title       string  `json:"title" binding:"required" example:"Summer catalog"`
	Description string  `json:"description"`
	CoverImage  string  `json:"coverImage"`
	Category    string  `json:"category" binding:"required"`
	Brand       string  `json:"brand" binding:"required"`
	PublishDate *string `json:"publishDate,omitempty"`
	ExpiryDate  *string `json:"expiryDate,omitempty"`
}

type UpdateFlyerRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverImage  *string `json:"coverImage"`
	Category    *string `json:"category"`
	Brand       *string `json:"brand"`
	PublishDate *string `json:"publishDate"`
	ExpiryDate  *string `json:"expiryDate"`
}

// Toggle bodies use pointers so an explicit false still binds.
type TogglePublishRequest struct {
	IsPublished *bool `json:"isPublished" binding:"required"`
}

type ToggleActivateRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
