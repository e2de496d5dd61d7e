package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"literinth-be/internal/repository/specification"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, perPage     int
		wantPage, wantPer int
	}{
		{0, 0, 1, defaultPerPage},
		{-3, -1, 1, defaultPerPage},
		{1, 20, 1, 20},
		{5, 100, 5, 100},
		{2, 500, 2, maxPerPage},
	}

	for _, c := range cases {
		page, perPage := normalizePage(c.page, c.perPage)
		assert.Equal(t, c.wantPage, page)
		assert.Equal(t, c.wantPer, perPage)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 20))
	assert.Equal(t, 1, totalPages(1, 20))
	assert.Equal(t, 1, totalPages(20, 20))
	assert.Equal(t, 2, totalPages(21, 20))
	assert.Equal(t, 5, totalPages(100, 20))
}

func TestSortSpecificationMapping(t *testing.T) {
	assert.Equal(t, specification.OrderBy{Field: "schematics.views", Desc: true}, sortSpecification(SortPopular))
	assert.Equal(t, specification.OrderBy{Field: "schematics.downloads", Desc: true}, sortSpecification(SortDownloads))
	assert.Equal(t, specification.OrderByLikeCount{Desc: true}, sortSpecification(SortLikes))
	assert.Equal(t, specification.OrderBy{Field: "schematics.created_at", Desc: true}, sortSpecification(SortRecent))
	assert.Equal(t, specification.OrderBy{Field: "schematics.created_at", Desc: true}, sortSpecification("bogus"))
}
