package apihelpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type PaginatedQuery struct {
	Page   int64
	Limit  int64
	Filter bson.M
}

// ParsePaginatedQueryFromCtx reads page and limit query parameters and builds
// an optional filter for survey listings (medium and publish status).
func ParsePaginatedQueryFromCtx(c *gin.Context) (*PaginatedQuery, error) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil {
		return nil, err
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if medium := c.DefaultQuery("medium", ""); medium != "" {
		// surveys store their languages as the availableMediums array
		filter["availableMediums"] = medium
	}
	if status := c.DefaultQuery("publishStatus", ""); status != "" {
		filter["publish.status"] = status
	}

	return &PaginatedQuery{
		Page:   page,
		Limit:  limit,
		Filter: filter,
	}, nil
}
