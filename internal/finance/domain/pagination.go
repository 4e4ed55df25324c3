package domain

// PaginationParams bound a transaction listing. Page and Size are 1-based.
type PaginationParams struct {
	Page int
	Size int
}

// PagedResult carries one page of transactions plus counts computed against
// the filtered set.
type PagedResult struct {
	Items []Transaction `json:"items"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Size  int           `json:"size"`
	Total int           `json:"total"`
}

// TotalPages is ceil(total/size).
func TotalPages(total, size int) int {
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}
