package domain

// Category is global lookup data; transactions reference it by id.
type Category struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type CategoryRepository interface {
	FindAll() ([]Category, error)
	FindByID(categoryID string) (*Category, error)
}
