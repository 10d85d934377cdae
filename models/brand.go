package models

import "time"

type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	Website     string    `json:"website,omitempty"`
	Country     string    `json:"country,omitempty"`
	Founded     *int      `json:"founded,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BrandListData struct {
	Brands     []Brand     `json:"brands"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type BrandData struct {
	Brand Brand `json:"brand"`
}

type CountriesData struct {
	Countries []string `json:"countries"`
}

type CreateBrandRequest struct {
	Name        string `json:"name" binding:"required" example:"Acme"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Website     string `json:"website"`
	Country     string `json:"country"`
	Founded     *int   `json:"founded"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Website     *string `json:"website"`
	Country     *string `json:"country"`
	Founded     *int    `json:"founded"`
}
