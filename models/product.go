package models

import "time"

// Product is one page of a flyer. PageNumber defines presentation order;
// Shifra is the merchant-facing product code.
type Product struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Details        string         `json:"details,omitempty"`
	Price          float64        `json:"price"`
	Quantity       int            `json:"quantity"`
	Image          string         `json:"image"`
	Shifra         string         `json:"shifra"`
	Category       Reference      `json:"category"`
	Brand          Reference      `json:"brand"`
	ProductFlyer   string         `json:"productFlyer,omitempty"`
	PageNumber     int            `json:"pageNumber,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type ProductListData struct {
	Products   []Product   `json:"products"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type ProductData struct {
	Product Product `json:"product"`
}

type CreateProductRequest struct {
	Name           string         `json:"name" binding:"required"`
	Details        string         `json:"details" binding:"required"`
	Price          float64        `json:"price" binding:"min=0"`
	Category       string         `json:"category" binding:"required"`
	Brand          string         `json:"brand"`
	Quantity       int            `json:"quantity" binding:"min=0"`
	Shifra         string         `json:"shifra" binding:"required"`
	Image          string         `json:"image"`
	ProductFlyer   string         `json:"productFlyer"`
	PageNumber     *int           `json:"pageNumber" binding:"omitempty,min=1"`
	Tags           []string       `json:"tags"`
	Specifications map[string]any `json:"specifications"`
}

type UpdateProductRequest struct {
	Name           *string        `json:"name"`
	Details        *string        `json:"details"`
	Price          *float64       `json:"price" binding:"omitempty,min=0"`
	Category       *string        `json:"category"`
	Brand          *string        `json:"brand"`
	Quantity       *int           `json:"quantity" binding:"omitempty,min=0"`
	Shifra         *string        `json:"shifra"`
	Image          *string        `json:"image"`
	ProductFlyer   *string        `json:"productFlyer"`
	PageNumber     *int           `json:"pageNumber" binding:"omitempty,min=1"`
	Tags           []string       `json:"tags"`
	Specifications map[string]any `json:"specifications"`
}

type UpdateQuantityRequest struct {
	Quantity  *int   `json:"quantity" binding:"required,min=0"`
	Operation string `json:"operation" binding:"required,oneof=add subtract set" example:"set"`
}
