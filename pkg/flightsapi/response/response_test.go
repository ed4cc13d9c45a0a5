package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"empty", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single item", 1, 10, 1},
		{"page size one", 5, 1, 5},
		{"invalid page size", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestPageLinks(t *testing.T) {
	prev, next := PageLinks("flights", 2, 5, 10)
	assert.Equal(t, "flights?page=1&pageSize=10", prev)
	assert.Equal(t, "flights?page=3&pageSize=10", next)

	prev, next = PageLinks("flights", 1, 5, 10)
	assert.Empty(t, prev, "first page has no previous link")
	assert.Equal(t, "flights?page=2&pageSize=10", next)

	prev, next = PageLinks("flights", 5, 5, 10)
	assert.Equal(t, "flights?page=4&pageSize=10", prev)
	assert.Empty(t, next, "last page has no next link")

	prev, next = PageLinks("flights", 1, 1, 10)
	assert.Empty(t, prev)
	assert.Empty(t, next)
}

func TestNewError(t *testing.T) {
	req := RequestInfo{Path: "/api/v1/flights", Method: "GET"}
	errResp := NewError("boom", http.StatusBadRequest, "details", req)

	assert.Equal(t, "boom", errResp.ErrMessage)
	assert.Equal(t, http.StatusBadRequest, errResp.Code)
	assert.Equal(t, "/api/v1/flights", errResp.Path)
	assert.Equal(t, "GET", errResp.Method)
	assert.NotEmpty(t, errResp.TimeStamp)
}

func TestSingleItem(t *testing.T) {
	env := SingleItem("record")
	assert.Equal(t, 1, env.Total)
	assert.Equal(t, 1, env.TotalPages)
	assert.Empty(t, env.PrevPage)
	assert.Empty(t, env.NextPage)
	assert.Len(t, env.Data, 1)
}
