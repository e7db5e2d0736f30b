package api

import (
	"errors"
	"strconv"

	"lendhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// errIdentityMissing is raised when a handler runs without the identity
// middleware having resolved the caller.
var errIdentityMissing = errors.New("caller identity not resolved")

// parsePage reads the from/size query pair. "from" is a row offset that must
// land on a page boundary-compatible index, so it is converted to a page
// index here.
func parsePage(c *gin.Context) (queries.Page, error) {
	fromStr := c.DefaultQuery("from", "0")
	sizeStr := c.DefaultQuery("size", "10")

	from, err := strconv.Atoi(fromStr)
	if err != nil || from < 0 {
		return queries.Page{}, errors.New("from must be a non-negative integer")
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		return queries.Page{}, errors.New("size must be a positive integer")
	}
	return queries.NewPage(from/size, size), nil
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return id, nil
}
