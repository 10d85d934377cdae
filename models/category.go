package models

import "time"

// Category is a reference entity used for filtering and association.
// Only categories may self-reference a parent.
type Category struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Icon           string     `json:"icon,omitempty"`
	Color          string     `json:"color,omitempty"`
	ParentCategory *Reference `json:"parentCategory,omitempty"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// CategoryNode is a category with its children, as the tree endpoint
// returns them.
type CategoryNode struct {
	Category
	Children []CategoryNode `json:"children,omitempty"`
}

type CategoryListData struct {
	Categories []Category  `json:"categories"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type CategoryTreeData struct {
	Categories []CategoryNode `json:"categories"`
}

type CategoryData struct {
	Category Category `json:"category"`
}

type CreateCategoryRequest struct {
	Name           string `json:"name" binding:"required" example:"Electronics"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	Color          string `json:"color"`
	ParentCategory string `json:"parentCategory"`
}

type UpdateCategoryRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Icon           *string `json:"icon"`
	Color          *string `json:"color"`
	ParentCategory *string `json:"parentCategory"`
}
