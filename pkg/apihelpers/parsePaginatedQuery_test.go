package apihelpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/surveys?"+rawQuery, nil)
	return c
}

func TestParsePaginatedQueryFromCtx(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		query, err := ParsePaginatedQueryFromCtx(newTestContext(""))
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if query.Page != 1 || query.Limit != 10 {
			t.Errorf("expected page 1 limit 10, but got page %d limit %d", query.Page, query.Limit)
		}
		if len(query.Filter) != 0 {
			t.Errorf("expected empty filter, but got %v", query.Filter)
		}
	})

	t.Run("page and limit", func(t *testing.T) {
		query, err := ParsePaginatedQueryFromCtx(newTestContext("page=3&limit=25"))
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if query.Page != 3 || query.Limit != 25 {
			t.Errorf("expected page 3 limit 25, but got page %d limit %d", query.Page, query.Limit)
		}
	})

	t.Run("medium filter matches the stored array field", func(t *testing.T) {
		query, err := ParsePaginatedQueryFromCtx(newTestContext("medium=Hindi"))
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if query.Filter["availableMediums"] != "Hindi" {
			t.Errorf("expected filter on availableMediums, but got %v", query.Filter)
		}
		if _, ok := query.Filter["medium"]; ok {
			t.Error("filter must not target a medium field, surveys have none")
		}
	})

	t.Run("publish status filter", func(t *testing.T) {
		query, err := ParsePaginatedQueryFromCtx(newTestContext("publishStatus=PUBLISHED"))
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if query.Filter["publish.status"] != "PUBLISHED" {
			t.Errorf("expected filter on publish.status, but got %v", query.Filter)
		}
	})

	t.Run("invalid page", func(t *testing.T) {
		if _, err := ParsePaginatedQueryFromCtx(newTestContext("page=abc")); err == nil {
			t.Error("expected an error for a non numeric page")
		}
	})
}
