package utils

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

type PaginationMeta struct {
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
}

// Paginate clamps page and limit and returns the offset and the effective
// page size. Both values are guaranteed to be >= 1, so a division by the
// returned limit is always safe.
func Paginate(page, limit int) (skip, safeLimit int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	safeLimit = limit
	if safeLimit > MaxLimit {
		safeLimit = MaxLimit
	}
	skip = (page - 1) * safeLimit
	return skip, safeLimit
}

func BuildPaginationMeta(totalItems, currentPage, itemsPerPage int) PaginationMeta {
	return PaginationMeta{
		TotalPages:   int(math.Ceil(float64(totalItems) / float64(itemsPerPage))),
		CurrentPage:  currentPage,
		ItemsPerPage: itemsPerPage,
		TotalItems:   totalItems,
	}
}
