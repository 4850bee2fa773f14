package utils

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{name: "defaults for zero values", page: 0, limit: 0, wantSkip: 0, wantLimit: 20},
		{name: "negative page clamped", page: -3, limit: 10, wantSkip: 0, wantLimit: 10},
		{name: "limit above max clamped", page: 1, limit: 500, wantSkip: 0, wantLimit: 100},
		{name: "skip uses clamped limit", page: 3, limit: 500, wantSkip: 200, wantLimit: 100},
		{name: "plain second page", page: 2, limit: 20, wantSkip: 20, wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, safeLimit := Paginate(tt.page, tt.limit)
			if skip != tt.wantSkip || safeLimit != tt.wantLimit {
				t.Errorf("Paginate(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, skip, safeLimit, tt.wantSkip, tt.wantLimit)
			}
		})
	}
}

func TestBuildPaginationMeta(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		page       int
		perPage    int
		wantPages  int
	}{
		{name: "exact division", totalItems: 40, page: 1, perPage: 20, wantPages: 2},
		{name: "partial last page", totalItems: 41, page: 1, perPage: 20, wantPages: 3},
		{name: "no items", totalItems: 0, page: 1, perPage: 20, wantPages: 0},
		{name: "single item", totalItems: 1, page: 1, perPage: 100, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := BuildPaginationMeta(tt.totalItems, tt.page, tt.perPage)
			if meta.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if meta.TotalItems != tt.totalItems || meta.CurrentPage != tt.page || meta.ItemsPerPage != tt.perPage {
				t.Errorf("meta = %+v, want totals/page/perPage echoed back", meta)
			}
		})
	}
}
