package service

import (
	"literinth-be/internal/repository/specification"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// Catalog sort keys accepted by the public listing.
const (
	SortRecent    = "recent"
	SortPopular   = "popular"
	SortDownloads = "downloads"
	SortLikes     = "likes"
)

// normalizePage clamps the requested window: pages start at 1 and the
// page size is capped at maxPerPage.
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// totalPages is ceil(total / perPage); zero rows means zero pages.
func totalPages(total int64, perPage int) int {
	if total <= 0 {
		return 0
	}
	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}

// sortSpecification maps a catalog sort key to its ordering; unknown
// keys fall back to newest-first.
func sortSpecification(sort string) specification.Specification {
	switch sort {
	case SortPopular:
		return specification.OrderBy{Field: "schematics.views", Desc: true}
	case SortDownloads:
		return specification.OrderBy{Field: "schematics.downloads", Desc: true}
	case SortLikes:
		return specification.OrderByLikeCount{Desc: true}
	default:
		return specification.OrderBy{Field: "schematics.created_at", Desc: true}
	}
}
