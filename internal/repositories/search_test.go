package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, 10, 0},
		{"negative page", -3, 5, 1, 5, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"limit capped", 1, 500, 1, 100, 0},
		{"deep page", 7, 20, 7, 20, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := clampPagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestFounderSortExpr(t *testing.T) {
	assert.Equal(t, "funding_amount DESC", founderSortExpr("funding"))
	assert.Equal(t, "employee_count DESC", founderSortExpr("employees"))
	assert.Equal(t, "created_at DESC", founderSortExpr("recent"))
	assert.Equal(t, "created_at DESC", founderSortExpr(""))
	// Unknown presets never reach ORDER BY as-is.
	assert.Equal(t, "created_at DESC", founderSortExpr("funding_amount; DROP TABLE founders"))
}

func TestDeveloperSortExpr(t *testing.T) {
	assert.Equal(t, "years_of_experience DESC", developerSortExpr("experience"))
	assert.Equal(t, "name ASC", developerSortExpr("name"))
	assert.Equal(t, "created_at DESC", developerSortExpr(""))
	assert.Equal(t, "created_at DESC", developerSortExpr("anything-else"))
}

func TestReceivedSortExpr(t *testing.T) {
	assert.Equal(t, "created_at ASC", receivedSortExpr("oldest"))
	assert.Equal(t, "position ASC", receivedSortExpr("position"))
	assert.Equal(t, "created_at DESC", receivedSortExpr("recent"))
	assert.Equal(t, "created_at DESC", receivedSortExpr(""))
}
